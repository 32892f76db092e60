// Command aoc2023 runs the Advent of Code 2023 solvers.
//
//	aoc2023 run 5                   # reads input.txt, prints part1/part2
//	aoc2023 run 5 --part 2 --workers 4
//	aoc2023 run 1 2 3 --input inputs/day%02d.txt
//	aoc2023 list
//	aoc2023 check --config aoc.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/logging"
)

var (
	// Global flags
	verbose    bool
	workers    int
	configPath string

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aoc2023",
	Short: "Advent of Code 2023 solvers",
	Long: `aoc2023 solves the Advent of Code 2023 puzzles for days 1-18 and 23-25.

Each day reads its puzzle input, prints "part1: N" and "part2: N" on stdout
and exits non-zero with a description when the input is missing or malformed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "Workers for parallel days (default: config, then GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "aoc.yaml", "Config file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}

// workerCount prefers an explicit --workers over the config file.
func workerCount(cmd *cobra.Command, cfg config.Config) int {
	if cmd.Flags().Changed("workers") {
		return workers
	}
	return cfg.Workers
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
