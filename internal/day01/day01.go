// Package day01 recovers calibration values from lines of text: the first
// and last digit of each line form a two-digit number, and the answer is
// their sum. Part 2 also reads spelled-out digits.
package day01

import (
	"context"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 1,
		Title:  "Trebuchet?!",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			v, err := Sum(puzzle.Lines(in), false)
			return puzzle.Answer(v), err
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			v, err := Sum(puzzle.Lines(in), true)
			return puzzle.Answer(v), err
		},
	})
}

var words = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at s[i], if any. Spelled digits count
// only when spelled is set; overlapping words such as "eightwo" yield both.
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for d, w := range words {
		if strings.HasPrefix(s[i:], w) {
			return d, true
		}
	}

	return 0, false
}

// Calibration returns first*10+last for line.
func Calibration(line string, spelled bool) (int, bool) {
	first, last, found := 0, 0, false
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, spelled)
		if !ok {
			continue
		}
		if !found {
			first, found = d, true
		}
		last = d
	}

	return first*10 + last, found
}

// Sum adds the calibration values of lines. A line without any digit is an
// error.
func Sum(lines []string, spelled bool) (int64, error) {
	var sum int64
	for i, l := range lines {
		v, ok := Calibration(l, spelled)
		if !ok {
			return 0, puzzle.BadInput(i+1, "no digit in %q", l)
		}
		sum += int64(v)
	}

	return sum, nil
}
