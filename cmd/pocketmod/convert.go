// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pocketmod/internal/ingest"
	"github.com/pdiddy/pocketmod/internal/journal"
	"github.com/pdiddy/pocketmod/internal/layout"
	"github.com/pdiddy/pocketmod/internal/render"
	"github.com/pdiddy/pocketmod/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.pdf|directory>",
	Short: "Convert PDFs into a PocketMod booklet PDF",
	Long: `Convert lays the input pages out onto 8-panel sheets and writes the
result as a single PDF in the working directory. A directory input is
treated as one concatenated page sequence, in directory-listing order.

Page counts that are not a multiple of 8 leave the excess panels of the
final sheet blank.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output file (default: pocketmod_<timestamp>.pdf)")
	convertCmd.Flags().Bool("force", false, "overwrite the output file if it exists")
	convertCmd.Flags().Bool("no-journal", false, "do not record this run in the history journal")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	started := time.Now()

	output, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")
	noJournal, _ := cmd.Flags().GetBool("no-journal")

	if output == "" {
		output = fmt.Sprintf("pocketmod_%s.pdf", started.Format("20060102150405"))
	}
	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("output file %s already exists (use --force to overwrite)", output)
	}

	sources, err := ingest.Collect(args[0], os.Stderr)
	if err != nil {
		return err
	}
	pages := ingest.Concatenate(sources)
	if len(pages) == 0 {
		return fmt.Errorf("%s contains no pages", args[0])
	}

	geom := types.GeometryFor(pages[0].Width, pages[0].Height)
	plan := layout.NewPlanner(geom).Plan(pages)

	if err := render.New().RenderFile(plan, output); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "converted: %s -> %s (%d file(s), %d pages, %d sheets)\n",
		args[0], output, len(sources), len(pages), len(plan.Sheets))

	if !noJournal && !viper.GetBool("journal.disabled") {
		recordRun(types.RunRecord{
			StartedAt: started,
			Input:     args[0],
			Output:    output,
			Files:     len(sources),
			Pages:     len(pages),
			Sheets:    len(plan.Sheets),
		})
	}
	return nil
}

// recordRun appends the run to the history journal. Journal trouble is a
// warning, never a conversion failure.
func recordRun(run types.RunRecord) {
	j, err := journal.Open(journalPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}
	defer j.Close()

	if err := j.Record(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}

func journalPath() string {
	if p := viper.GetString("journal.path"); p != "" {
		return p
	}
	return journal.DefaultPath()
}
