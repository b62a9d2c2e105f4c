// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pocketmod/internal/journal"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion runs",
	Long: `History lists recent conversions recorded in the run journal: when they
ran, what went in, and where the output went.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of runs to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	j, err := journal.Open(journalPath())
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-30s  %-30s  %5s  %6s\n",
		"When", "Input", "Output", "Pages", "Sheets")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-20s  %-30s  %-30s  %5d  %6d\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			truncate(r.Input, 30), truncate(r.Output, 30), r.Pages, r.Sheets)
	}
	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
