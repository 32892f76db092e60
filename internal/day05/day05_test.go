package day05_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/aoc2023/internal/day05"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSample(t *testing.T) {
	a, err := day05.Parse(sample)
	require.NoError(t, err)
	require.Len(t, a.Maps, 7)
	assert.Equal(t, "seed-to-soil", a.Maps[0].Name)

	assert.Equal(t, int64(82), a.Location(79))
	assert.Equal(t, int64(35), a.Part1())

	for _, workers := range []int{0, 1, 4} {
		got, err := a.Part2(context.Background(), workers)
		require.NoError(t, err)
		assert.Equal(t, int64(46), got, "workers=%d", workers)
	}

	brute, err := a.BruteMin(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(46), brute)
}

func TestApplyRange_Splits(t *testing.T) {
	m := day05.Map{Rules: []day05.Rule{{Dst: 100, Src: 10, Len: 5}}}
	got := m.ApplyRange(day05.Interval{Start: 5, End: 20})
	assert.Equal(t, []day05.Interval{{5, 10}, {100, 105}, {15, 20}}, got)

	// fully inside, fully outside
	assert.Equal(t, []day05.Interval{{101, 103}}, m.ApplyRange(day05.Interval{Start: 11, End: 13}))
	assert.Equal(t, []day05.Interval{{0, 3}}, m.ApplyRange(day05.Interval{Start: 0, End: 3}))
}

func TestPart2_Cancelled(t *testing.T) {
	a, err := day05.Parse(sample)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.Part2(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegisteredPart2UsesWorkersFromContext(t *testing.T) {
	d, err := puzzle.Lookup(5)
	require.NoError(t, err)
	got, err := d.Part2(puzzle.WithWorkers(context.Background(), 3), sample)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer(46), got)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"no maps":    "seeds: 1 2",
		"bad header": "seeds: 1 2\n\nsoil:\n1 2 3",
		"short rule": "seeds: 1 2\n\na map:\n1 2",
		"bad seeds":  "seeds: x\n\na map:\n1 2 3",
		"no seeds":   "foo\n\na map:\n1 2 3",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := day05.Parse(in)
			assert.ErrorIs(t, err, puzzle.ErrBadInput)
		})
	}

	a, err := day05.Parse("seeds: 1 2 3\n\na map:\n1 2 3")
	require.NoError(t, err)
	_, err = a.Part2(context.Background(), 1)
	assert.ErrorIs(t, err, puzzle.ErrBadInput)
}
