package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mr1hm/go-impact-sim/internal/render"
	"github.com/mr1hm/go-impact-sim/internal/scenario"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		keys []string
		full bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate preset impact scenarios",
		Long: "batch runs the named presets (all of them by default) through the\n" +
			"impact engine concurrently and prints one line per scenario.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd.Context(), keys, full)
		},
	}

	cmd.Flags().StringSliceVar(&keys, "preset", nil, "preset keys to run (default: all)")
	cmd.Flags().BoolVar(&full, "full", false, "print the full report for each scenario")

	return cmd
}

func (a *app) runBatch(ctx context.Context, keys []string, full bool) error {
	var selected []scenario.Preset
	if len(keys) == 0 {
		selected = scenario.Presets()
	} else {
		for _, k := range keys {
			p, ok := scenario.Find(strings.ToLower(strings.TrimSpace(k)))
			if !ok {
				return fmt.Errorf("unknown preset %q (available: %s)", k, strings.Join(presetKeys(), ", "))
			}
			selected = append(selected, p)
		}
	}

	runner := scenario.NewRunner(a.materials, a.cfg.Worker.Count, a.cfg.Worker.BufferSize)
	outcomes := runner.Run(ctx, selected)

	for _, o := range outcomes {
		if o.Err != nil {
			return fmt.Errorf("preset %s: %w", o.Preset.Key, o.Err)
		}

		if full {
			profile, _ := a.materials.Profile(o.Preset.Material)
			fmt.Println(render.Styles.Title.Render("### " + o.Preset.Title + " ###"))
			fmt.Println(render.Summary(profile.Name, o.Result))
			fmt.Println(render.Comparisons(o.Result))
			continue
		}

		fmt.Printf("%-30s %14.2f Mt  crater %8.2f km  %s\n",
			o.Preset.Title,
			o.Result.EnergyMegatons,
			o.Result.Crater.DiameterKm,
			strings.ToUpper(string(o.Result.Assessment.Severity)))
	}

	return nil
}

func presetKeys() []string {
	all := scenario.Presets()
	keys := make([]string, 0, len(all))
	for _, p := range all {
		keys = append(keys, p.Key)
	}
	return keys
}
