// Package day05 pushes seeds through the almanac's chain of range maps and
// reports the lowest resulting location. In part 2 the seed list is read as
// (start, length) pairs; every pair is handled by its own worker and the
// per-range minima are reduced at the end.
package day05

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 5,
		Title:  "If You Give A Seed A Fertilizer",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			a, err := Parse(in)
			if err != nil {
				return 0, err
			}
			return puzzle.Answer(a.Part1()), nil
		},
		Part2: func(ctx context.Context, in string) (puzzle.Answer, error) {
			a, err := Parse(in)
			if err != nil {
				return 0, err
			}
			v, err := a.Part2(ctx, puzzle.Workers(ctx))
			return puzzle.Answer(v), err
		},
	})
}

// Rule maps [Src, Src+Len) onto [Dst, Dst+Len).
type Rule struct {
	Dst, Src, Len int64
}

// Map is one almanac section; values no rule covers map to themselves.
type Map struct {
	Name  string
	Rules []Rule // sorted by Src
}

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int64
}

// Almanac is the parsed puzzle.
type Almanac struct {
	Seeds []int64
	Maps  []Map
}

// Parse reads the "seeds:" line followed by blank-line separated maps.
func Parse(in string) (*Almanac, error) {
	blocks := puzzle.Blocks(in)
	if len(blocks) < 2 {
		return nil, puzzle.BadInput(1, "want a seeds line and at least one map")
	}
	seedLine, ok := strings.CutPrefix(blocks[0][0], "seeds:")
	if !ok || len(blocks[0]) != 1 {
		return nil, puzzle.BadInput(1, "want a single 'seeds:' line")
	}
	seeds, err := puzzle.Ints(seedLine)
	if err != nil {
		return nil, puzzle.BadInput(1, "%v", err)
	}
	a := &Almanac{Seeds: seeds}

	line := len(blocks[0]) + 2
	for _, b := range blocks[1:] {
		name, ok := strings.CutSuffix(b[0], " map:")
		if !ok {
			return nil, puzzle.BadInput(line, "want '<name> map:' header, got %q", b[0])
		}
		m := Map{Name: name}
		for i, l := range b[1:] {
			nums, err := puzzle.Ints(l)
			if err != nil || len(nums) != 3 || nums[2] < 0 {
				return nil, puzzle.BadInput(line+1+i, "want 'dst src len', got %q", l)
			}
			m.Rules = append(m.Rules, Rule{Dst: nums[0], Src: nums[1], Len: nums[2]})
		}
		sort.Slice(m.Rules, func(i, j int) bool { return m.Rules[i].Src < m.Rules[j].Src })
		a.Maps = append(a.Maps, m)
		line += len(b) + 1
	}

	return a, nil
}

// Apply maps a single value.
func (m Map) Apply(v int64) int64 {
	for _, r := range m.Rules {
		if v >= r.Src && v < r.Src+r.Len {
			return r.Dst + (v - r.Src)
		}
	}

	return v
}

// ApplyRange maps every value of iv, splitting it where rules start and
// end. The output intervals cover exactly the images of iv.
func (m Map) ApplyRange(iv Interval) []Interval {
	var out []Interval
	cur := iv.Start
	for _, r := range m.Rules {
		if cur >= iv.End {
			break
		}
		rEnd := r.Src + r.Len
		if rEnd <= cur || r.Src >= iv.End {
			continue
		}
		// gap before the rule maps to itself
		if cur < r.Src {
			out = append(out, Interval{cur, r.Src})
			cur = r.Src
		}
		end := min(rEnd, iv.End)
		shift := r.Dst - r.Src
		out = append(out, Interval{cur + shift, end + shift})
		cur = end
	}
	if cur < iv.End {
		out = append(out, Interval{cur, iv.End})
	}

	return out
}

// Location runs seed through every map.
func (a *Almanac) Location(seed int64) int64 {
	for _, m := range a.Maps {
		seed = m.Apply(seed)
	}

	return seed
}

// MinLocation returns the lowest location of any seed in iv.
func (a *Almanac) MinLocation(iv Interval) int64 {
	cur := []Interval{iv}
	for _, m := range a.Maps {
		var next []Interval
		for _, c := range cur {
			next = append(next, m.ApplyRange(c)...)
		}
		cur = next
	}
	best := int64(math.MaxInt64)
	for _, c := range cur {
		best = min(best, c.Start)
	}

	return best
}

// Part1 returns the lowest location of the listed seeds.
func (a *Almanac) Part1() int64 {
	best := int64(math.MaxInt64)
	for _, s := range a.Seeds {
		best = min(best, a.Location(s))
	}

	return best
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of seed values (%d)", puzzle.ErrBadInput, len(a.Seeds))
	}
	out := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}

	return out, nil
}

// Part2 returns the lowest location over all seed ranges, using at most
// workers goroutines. Empty ranges are skipped; if every range is empty the
// result is math.MaxInt64.
func (a *Almanac) Part2(ctx context.Context, workers int) (int64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return a.parallelMin(ctx, ranges, workers, a.MinLocation)
}

// BruteMin evaluates every seed of every range one by one. It gives the
// same answer as Part2 and exists to cross-check it on small inputs.
func (a *Almanac) BruteMin(ctx context.Context, workers int) (int64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return a.parallelMin(ctx, ranges, workers, func(iv Interval) int64 {
		best := int64(math.MaxInt64)
		for s := iv.Start; s < iv.End; s++ {
			best = min(best, a.Location(s))
		}
		return best
	})
}

// parallelMin evaluates f on each range in an errgroup limited to workers
// goroutines and reduces the results to their minimum.
func (a *Almanac) parallelMin(ctx context.Context, ranges []Interval, workers int, f func(Interval) int64) (int64, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]int64, len(ranges))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, iv := range ranges {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = math.MaxInt64
			if iv.End > iv.Start {
				results[i] = f(iv)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	best := int64(math.MaxInt64)
	for _, r := range results {
		best = min(best, r)
	}

	return best, nil
}
