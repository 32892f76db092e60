package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// listCmd prints the registered days
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the solved days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range puzzle.Days() {
			fmt.Fprintf(cmd.OutOrStdout(), "%02d  %s\n", d.Number, d.Title)
		}
		return nil
	},
}
