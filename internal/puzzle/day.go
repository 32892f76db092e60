// Package puzzle holds what every day package shares: the Day registry, the
// Answer type, input loading and a few parsing and number helpers.
//
// Day packages register themselves from init; the CLI blank-imports them and
// looks days up by number. Days never call each other.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

var (
	// ErrUnknownDay is returned by Lookup for a day nobody registered.
	ErrUnknownDay = errors.New("puzzle: unknown day")

	// ErrNoPart is returned by a part a day does not have.
	ErrNoPart = errors.New("puzzle: day has no such part")
)

// Answer is the numeric result of one part.
type Answer int64

func (a Answer) String() string { return strconv.FormatInt(int64(a), 10) }

// PartFunc solves one part for the given puzzle text.
type PartFunc func(ctx context.Context, input string) (Answer, error)

// Day describes one solved puzzle.
type Day struct {
	Number int
	Title  string
	Part1  PartFunc
	Part2  PartFunc
}

// Part returns part 1 or 2.
func (d Day) Part(n int) (PartFunc, error) {
	switch n {
	case 1:
		return d.Part1, nil
	case 2:
		return d.Part2, nil
	}

	return nil, fmt.Errorf("day %d part %d: %w", d.Number, n, ErrNoPart)
}

var (
	mu       sync.RWMutex
	registry = make(map[int]Day)
)

// Register adds d to the registry. It panics on an invalid day number, a
// missing part or a duplicate registration; all of these are programming
// errors caught at init.
func Register(d Day) {
	if d.Number < 1 || d.Number > 25 {
		panic(fmt.Sprintf("puzzle: invalid day number %d", d.Number))
	}
	if d.Part1 == nil || d.Part2 == nil {
		panic(fmt.Sprintf("puzzle: day %d registered without both parts", d.Number))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[d.Number]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.Number))
	}
	registry[d.Number] = d
}

// Lookup returns the registered day n.
func Lookup(n int) (Day, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := registry[n]
	if !ok {
		return Day{}, fmt.Errorf("day %d: %w", n, ErrUnknownDay)
	}

	return d, nil
}

// Days returns all registered days ordered by number.
func Days() []Day {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Day, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out
}

// NoPart is a PartFunc for days without a second puzzle.
func NoPart(context.Context, string) (Answer, error) {
	return 0, ErrNoPart
}
