// Package day12 counts the ways damaged-spring records can be filled in to
// match their group lengths.
//
// Complexity: O(len(springs) * len(groups)) per record with memoisation.
package day12

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// Folds is how many copies part 2 unfolds each record into.
const Folds = 5

func init() {
	puzzle.Register(puzzle.Day{
		Number: 12,
		Title:  "Hot Springs",
		Part1: func(_ context.Context, in string) (puzzle.Answer, error) {
			return solve(in, 1)
		},
		Part2: func(_ context.Context, in string) (puzzle.Answer, error) {
			return solve(in, Folds)
		},
	})
}

func solve(in string, folds int) (puzzle.Answer, error) {
	recs, err := Parse(in)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, r := range recs {
		sum += r.Unfold(folds).Arrangements()
	}

	return puzzle.Answer(sum), nil
}

// Record is one row: springs over "#.?" and contiguous damaged group sizes.
type Record struct {
	Springs string
	Groups  []int
}

// Parse reads lines such as "???.### 1,1,3".
func Parse(in string) ([]Record, error) {
	lines := puzzle.Lines(in)
	out := make([]Record, 0, len(lines))
	for i, l := range lines {
		springs, groups, ok := strings.Cut(strings.TrimSpace(l), " ")
		if !ok {
			return nil, puzzle.BadInput(i+1, "missing group list")
		}
		if strings.Trim(springs, "#.?") != "" {
			return nil, puzzle.BadInput(i+1, "bad spring in %q", springs)
		}
		rec := Record{Springs: springs}
		for _, f := range strings.Split(groups, ",") {
			n, err := strconv.Atoi(f)
			if err != nil || n <= 0 {
				return nil, puzzle.BadInput(i+1, "bad group %q", f)
			}
			rec.Groups = append(rec.Groups, n)
		}
		out = append(out, rec)
	}

	return out, nil
}

// Unfold repeats the springs n times joined by '?' and the groups n times.
func (r Record) Unfold(n int) Record {
	if n <= 1 {
		return r
	}
	springs := make([]string, n)
	groups := make([]int, 0, len(r.Groups)*n)
	for i := range springs {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}

	return Record{Springs: strings.Join(springs, "?"), Groups: groups}
}

// Arrangements returns how many substitutions of '?' satisfy the groups.
func (r Record) Arrangements() int64 {
	c := counter{
		s:    r.Springs,
		g:    r.Groups,
		memo: make(map[[2]int]int64),
	}
	// run[i] is how far the stretch of non-'.' cells starting at i extends.
	c.run = make([]int, len(c.s)+1)
	for i := len(c.s) - 1; i >= 0; i-- {
		if c.s[i] != '.' {
			c.run[i] = c.run[i+1] + 1
		}
	}

	return c.count(0, 0)
}

type counter struct {
	s    string
	g    []int
	run  []int
	memo map[[2]int]int64
}

// count returns the arrangements of s[i:] matching g[j:].
func (c *counter) count(i, j int) int64 {
	if j == len(c.g) {
		if strings.IndexByte(c.s[min(i, len(c.s)):], '#') >= 0 {
			return 0
		}
		return 1
	}
	if i >= len(c.s) {
		return 0
	}
	key := [2]int{i, j}
	if v, ok := c.memo[key]; ok {
		return v
	}

	var n int64
	// 1) Treat s[i] as operational.
	if c.s[i] != '#' {
		n += c.count(i+1, j)
	}
	// 2) Start group j at i; it must fit and be followed by a non-'#'.
	if size := c.g[j]; c.run[i] >= size {
		end := i + size
		switch {
		case end == len(c.s):
			n += c.count(end, j+1)
		case c.s[end] != '#':
			n += c.count(end+1, j+1)
		}
	}
	c.memo[key] = n

	return n
}
