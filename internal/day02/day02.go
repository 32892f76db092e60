// Package day02 checks games of cubes drawn from a bag against a fixed
// supply (part 1) and finds the smallest supply each game needs (part 2).
package day02

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 2,
		Title:  "Cube Conundrum",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			games, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Part1(games)), nil
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			games, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Part2(games)), nil
		},
	})
}

// Set counts cubes per colour in one draw.
type Set struct {
	Red, Green, Blue int
}

// Game is one line: its id and every draw.
type Game struct {
	ID    int
	Draws []Set
}

// Parse reads lines of the form "Game 1: 3 blue, 4 red; 1 red, 2 green".
func Parse(in string) ([]Game, error) {
	lines := puzzle.Lines(in)
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := parseGame(line)
		if err != nil {
			return nil, puzzle.BadInput(i+1, "%v", err)
		}
		games = append(games, g)
	}

	return games, nil
}

func parseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, fmt.Errorf("missing ': ' in %q", line)
	}
	id, err := strconv.Atoi(strings.TrimPrefix(head, "Game "))
	if err != nil {
		return Game{}, fmt.Errorf("bad game id %q", head)
	}
	g := Game{ID: id}
	for _, draw := range strings.Split(body, "; ") {
		var s Set
		for _, item := range strings.Split(draw, ", ") {
			var n int
			var colour string
			if _, err := fmt.Sscanf(item, "%d %s", &n, &colour); err != nil {
				return Game{}, fmt.Errorf("bad cube count %q", item)
			}
			switch colour {
			case "red":
				s.Red += n
			case "green":
				s.Green += n
			case "blue":
				s.Blue += n
			default:
				return Game{}, fmt.Errorf("unknown colour %q", colour)
			}
		}
		g.Draws = append(g.Draws, s)
	}

	return g, nil
}

// Max returns the per-colour maximum over all draws of g.
func (g Game) Max() Set {
	var m Set
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}

	return m
}

// Supply is the bag content part 1 checks against.
var Supply = Set{Red: 12, Green: 13, Blue: 14}

// Part1 sums the ids of games possible with Supply.
func Part1(games []Game) int64 {
	var sum int64
	for _, g := range games {
		m := g.Max()
		if m.Red <= Supply.Red && m.Green <= Supply.Green && m.Blue <= Supply.Blue {
			sum += int64(g.ID)
		}
	}

	return sum
}

// Part2 sums the power (product of maxima) of every game.
func Part2(games []Game) int64 {
	var sum int64
	for _, g := range games {
		m := g.Max()
		sum += int64(m.Red) * int64(m.Green) * int64(m.Blue)
	}

	return sum
}
