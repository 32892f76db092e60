package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// errCheckFailed is returned when at least one answer differs.
var errCheckFailed = errors.New("check: answers differ from the expected ones")

// checkCmd compares answers with the ones recorded in the config file
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify answers against the config file",
	Long: `Run every day listed under "answers" in the config file on its input
and compare each part with the recorded value.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	ctx := puzzle.WithWorkers(cmd.Context(), workerCount(cmd, cfg))

	days := make([]int, 0, len(cfg.Answers))
	for d := range cfg.Answers {
		days = append(days, d)
	}
	sort.Ints(days)

	out := cmd.OutOrStdout()
	failed := 0
	for _, d := range days {
		want := cfg.Answers[d]
		results, err := solve(ctx, d, cfg.InputPath(d), 0)
		if err != nil {
			logger.Error("Day failed", zap.Int("day", d), zap.Error(err))
			fmt.Fprintf(out, "day %02d: error: %v\n", d, err)
			failed++
			continue
		}
		for _, r := range results {
			expected := want.Part1
			if r.part == 2 {
				expected = want.Part2
			}
			switch {
			case r.skipped || expected == nil:
				continue
			case int64(r.value) == *expected:
				fmt.Fprintf(out, "day %02d part%d: %s ok\n", d, r.part, r.value)
			default:
				fmt.Fprintf(out, "day %02d part%d: %s, want %d\n", d, r.part, r.value, *expected)
				failed++
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w (%d failures)", errCheckFailed, failed)
	}

	return nil
}
