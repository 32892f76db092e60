// Package day07 ranks Camel Cards hands and sums bid × rank. In part 2 'J'
// is a joker: it joins whichever card makes the strongest type but is the
// weakest card when breaking ties.
package day07

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 7,
		Title:  "Camel Cards",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			hands, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Winnings(hands, false)), nil
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			hands, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(Winnings(hands, true)), nil
		},
	})
}

// Type is the strength class of a hand, weakest first.
type Type int

const (
	HighCard Type = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

const (
	order       = "23456789TJQKA"
	jokerOrder  = "J23456789TQKA"
	handSize    = 5
	jokerSymbol = 'J'
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int64
}

// Parse reads "CARDS BID" lines.
func Parse(in string) ([]Hand, error) {
	lines := puzzle.Lines(in)
	hands := make([]Hand, 0, len(lines))
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) != 2 || len(f[0]) != handSize {
			return nil, puzzle.BadInput(i+1, "want 'CARDS BID', got %q", l)
		}
		for _, c := range f[0] {
			if !strings.ContainsRune(order, c) {
				return nil, puzzle.BadInput(i+1, "unknown card %q", c)
			}
		}
		bid, err := strconv.ParseInt(f[1], 10, 64)
		if err != nil {
			return nil, puzzle.BadInput(i+1, "bad bid %q", f[1])
		}
		hands = append(hands, Hand{Cards: f[0], Bid: bid})
	}

	return hands, nil
}

// Classify returns the type of cards, treating 'J' as a joker when jokers
// is set.
func Classify(cards string, jokers bool) Type {
	counts := make(map[rune]int, handSize)
	j := 0
	for _, c := range cards {
		if jokers && c == jokerSymbol {
			j++
			continue
		}
		counts[c]++
	}
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if len(sizes) == 0 {
		sizes = []int{0} // all jokers
	}
	sizes[0] += j

	switch {
	case sizes[0] == 5:
		return FiveOfAKind
	case sizes[0] == 4:
		return FourOfAKind
	case sizes[0] == 3 && sizes[1] == 2:
		return FullHouse
	case sizes[0] == 3:
		return ThreeOfAKind
	case sizes[0] == 2 && sizes[1] == 2:
		return TwoPair
	case sizes[0] == 2:
		return OnePair
	}

	return HighCard
}

// Less orders a before b by type, then card by card.
func Less(a, b string, jokers bool) bool {
	ta, tb := Classify(a, jokers), Classify(b, jokers)
	if ta != tb {
		return ta < tb
	}
	ord := order
	if jokers {
		ord = jokerOrder
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return strings.IndexByte(ord, a[i]) < strings.IndexByte(ord, b[i])
		}
	}

	return false
}

// Winnings sorts hands weakest first and sums bid × rank.
func Winnings(hands []Hand, jokers bool) int64 {
	sorted := append([]Hand(nil), hands...)
	sort.SliceStable(sorted, func(i, j int) bool { return Less(sorted[i].Cards, sorted[j].Cards, jokers) })
	var sum int64
	for i, h := range sorted {
		sum += int64(i+1) * h.Bid
	}

	return sum
}
