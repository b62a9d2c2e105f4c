// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pocketmod/internal/ingest"
	"github.com/pdiddy/pocketmod/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.pdf|directory>",
	Short: "Show page counts, dimensions, and resulting sheet count",
	Long: `Inspect reports, per input file, the page count, the first page's
dimensions and orientation, and the total number of output sheets the
concatenated sequence would need.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "emit the report as JSON")

	rootCmd.AddCommand(inspectCmd)
}

// inspectReport is the per-source summary inspect prints.
type inspectReport struct {
	File        string  `json:"file"`
	Pages       int     `json:"pages"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Orientation string  `json:"orientation"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	sources, err := ingest.Collect(args[0], os.Stderr)
	if err != nil {
		return err
	}

	reports := make([]inspectReport, len(sources))
	total := 0
	for i, src := range sources {
		orientation := "portrait"
		if src.Landscape() {
			orientation = "landscape"
		}
		reports[i] = inspectReport{
			File:        src.Path,
			Pages:       src.PageCount(),
			Width:       src.Widths[0],
			Height:      src.Heights[0],
			Orientation: orientation,
		}
		total += src.PageCount()
	}
	sheets := (total + types.SlotsPerSheet - 1) / types.SlotsPerSheet

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Sources []inspectReport `json:"sources"`
			Pages   int             `json:"pages"`
			Sheets  int             `json:"sheets"`
		}{reports, total, sheets})
	}

	fmt.Fprintf(os.Stdout, "%-40s  %6s  %9s  %11s\n", "File", "Pages", "Size (pt)", "Orientation")
	for _, r := range reports {
		name := r.File
		if len(name) > 40 {
			name = "..." + name[len(name)-37:]
		}
		fmt.Fprintf(os.Stdout, "%-40s  %6d  %4.0fx%-4.0f  %11s\n",
			name, r.Pages, r.Width, r.Height, r.Orientation)
	}
	fmt.Fprintf(os.Stdout, "\n%d pages -> %d sheet(s)\n", total, sheets)
	return nil
}
