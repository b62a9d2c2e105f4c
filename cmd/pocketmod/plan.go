// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pocketmod/internal/ingest"
	"github.com/pdiddy/pocketmod/internal/layout"
	"github.com/pdiddy/pocketmod/pkg/types"
)

var planCmd = &cobra.Command{
	Use:   "plan <input.pdf|directory>",
	Short: "Compute the layout plan without rendering",
	Long: `Plan runs the layout computation and emits the resulting plan as YAML:
sheet geometry plus, per sheet, every slot's region, rotation, and bound
source page. Useful for checking placements before printing, or for
feeding an external renderer.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringP("output", "o", "", "write the plan to a file instead of stdout")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	sources, err := ingest.Collect(args[0], os.Stderr)
	if err != nil {
		return err
	}
	pages := ingest.Concatenate(sources)

	var plan types.Plan
	if len(pages) > 0 {
		geom := types.GeometryFor(pages[0].Width, pages[0].Height)
		plan = layout.NewPlanner(geom).Plan(pages)
	}

	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(os.Stdout, "plan written to %s (%d sheets)\n", output, len(plan.Sheets))
	return nil
}
