package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

var (
	inputPath string
	part      int
)

// runCmd solves one or more days
var runCmd = &cobra.Command{
	Use:   "run DAY [DAY...]",
	Short: "Solve the given days",
	Long: `Solve the given days and print their answers.

--input may contain a %02d verb that expands to the day number, which is
how several days are run from their own files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDays,
}

func init() {
	runCmd.Flags().StringVarP(&inputPath, "input", "i", puzzle.DefaultInput, "Puzzle input file")
	runCmd.Flags().IntVarP(&part, "part", "p", 0, "Part to solve (0 = both)")
}

func runDays(cmd *cobra.Command, args []string) error {
	if part < 0 || part > 2 {
		return fmt.Errorf("--part must be 0, 1 or 2, got %d", part)
	}
	days := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("day %q: not a number", a)
		}
		days[i] = n
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	ctx := puzzle.WithWorkers(cmd.Context(), workerCount(cmd, cfg))
	cfg.InputDir = inputPath
	out := cmd.OutOrStdout()
	for _, n := range days {
		if len(days) > 1 {
			fmt.Fprintf(out, "day %02d\n", n)
		}
		if err := solveDay(ctx, out, n, cfg.InputPath(n), part); err != nil {
			logger.Error("Day failed", zap.Int("day", n), zap.Error(err))
			return err
		}
	}

	return nil
}

// solveDay reads the input of day n and prints the requested parts.
func solveDay(ctx context.Context, out io.Writer, n int, path string, which int) error {
	answers, err := solve(ctx, n, path, which)
	for _, a := range answers {
		if a.skipped {
			continue
		}
		fmt.Fprintf(out, "part%d: %s\n", a.part, a.value)
	}

	return err
}

type result struct {
	part    int
	value   puzzle.Answer
	skipped bool
}

// solve runs day n on the file at path. Parts a day does not have are
// reported as skipped. Results computed before a failing part are returned
// alongside the error.
func solve(ctx context.Context, n int, path string, which int) ([]result, error) {
	day, err := puzzle.Lookup(n)
	if err != nil {
		return nil, err
	}
	input, err := puzzle.ReadInput(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Solving", zap.Int("day", n), zap.String("title", day.Title), zap.String("input", path))

	parts := []int{1, 2}
	if which != 0 {
		parts = []int{which}
	}
	var out []result
	for _, p := range parts {
		fn, err := day.Part(p)
		if err != nil {
			return out, err
		}
		start := time.Now()
		v, err := fn(ctx, input)
		switch {
		case errors.Is(err, puzzle.ErrNoPart):
			logger.Debug("No such part", zap.Int("day", n), zap.Int("part", p))
			out = append(out, result{part: p, skipped: true})
			continue
		case err != nil:
			return out, fmt.Errorf("day %d part %d: %w", n, p, err)
		}
		logger.Debug("Solved",
			zap.Int("day", n),
			zap.Int("part", p),
			zap.Duration("elapsed", time.Since(start)))
		out = append(out, result{part: p, value: v})
	}

	return out, nil
}
