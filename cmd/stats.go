package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/devlens/devsurvey/internal/render"
	"github.com/devlens/devsurvey/internal/report"
)

var (
	statsSurvey string
	statsCOL    string
	statsOnly   []string
	statsOutput string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the derived tables behind the charts as JSON",
	Long: `Computes the same aggregates the charts draw from and writes them as
indented JSON, without rendering anything.

Examples:
  # Every table to stdout
  devsurvey stats

  # One table to a file
  devsurvey stats --only top-affordable-countries --output tables.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("stats"); err != nil {
			return err
		}

		surveyPath := cfg.Survey.Path
		if statsSurvey != "" {
			surveyPath = statsSurvey
		}
		refPath := cfg.Survey.CostOfLivingPath
		if statsCOL != "" {
			refPath = statsCOL
		}

		d, err := prepareData(ctx, surveyPath, refPath)
		if err != nil {
			return eris.Wrap(err, "stats")
		}

		engine := report.NewEngine(report.NewRegistry(), "", render.DefaultStyle())
		tables, err := engine.Tables(ctx, d, statsOnly)
		if err != nil {
			return eris.Wrap(err, "stats")
		}

		w := os.Stdout
		if statsOutput != "" {
			f, err := os.Create(statsOutput)
			if err != nil {
				return eris.Wrap(err, "stats: create output file")
			}
			defer f.Close() //nolint:errcheck
			w = f
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(tables), "stats: encode tables")
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsSurvey, "survey", "", "survey CSV path (default: config survey.path)")
	statsCmd.Flags().StringVar(&statsCOL, "cost-of-living", "", "cost-of-living CSV path (default: config survey.cost_of_living_path)")
	statsCmd.Flags().StringSliceVar(&statsOnly, "only", nil, "restrict to specific chart names (repeatable)")
	statsCmd.Flags().StringVar(&statsOutput, "output", "", "write JSON to file (default: stdout)")
	rootCmd.AddCommand(statsCmd)
}
