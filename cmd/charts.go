package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/devlens/devsurvey/internal/render"
	"github.com/devlens/devsurvey/internal/report"
	"github.com/devlens/devsurvey/internal/store"
)

var (
	chartsSurvey  string
	chartsCOL     string
	chartsOut     string
	chartsOnly    []string
	chartsNoStore bool
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render the survey chart battery to PNG files",
	Long: `Loads the survey, cleans it, and renders every chart into the output
directory. Charts that need the cost-of-living reference are skipped when
that file is absent, and a single failing chart never aborts the run.

Examples:
  # Full battery with configured paths
  devsurvey charts

  # A subset into a custom directory
  devsurvey charts --only top-languages --only age-distribution --out /tmp/figs`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("charts"); err != nil {
			return err
		}

		surveyPath := cfg.Survey.Path
		if chartsSurvey != "" {
			surveyPath = chartsSurvey
		}
		refPath := cfg.Survey.CostOfLivingPath
		if chartsCOL != "" {
			refPath = chartsCOL
		}
		outDir := cfg.Output.Dir
		if chartsOut != "" {
			outDir = chartsOut
		}

		started := time.Now().UTC()
		d, err := prepareData(ctx, surveyPath, refPath)
		if err != nil {
			return eris.Wrap(err, "charts")
		}

		engine := report.NewEngine(report.NewRegistry(), outDir, render.DefaultStyle())
		sum, err := engine.Run(ctx, d, report.RunOpts{Charts: chartsOnly})
		if err != nil {
			return eris.Wrap(err, "charts")
		}

		if !chartsNoStore {
			recordRun(ctx, engine, d, sum, started)
		}
		return nil
	},
}

// recordRun persists the run summary and derived tables. Storage problems
// are logged, never fatal: the charts on disk are the primary output.
func recordRun(ctx context.Context, engine *report.Engine, d *report.Data, sum *report.Summary, started time.Time) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		zap.L().Error("charts: open store", zap.Error(err))
		return
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		zap.L().Error("charts: migrate store", zap.Error(err))
		return
	}

	rec := &store.RunRecord{
		ID:        sum.RunID.String(),
		Rendered:  sum.Rendered,
		Skipped:   sum.Skipped,
		Failed:    sum.Failed,
		Files:     sum.Files,
		StartedAt: started,
		Elapsed:   sum.Elapsed,
	}
	if err := st.SaveRun(ctx, rec); err != nil {
		zap.L().Error("charts: save run", zap.Error(err))
		return
	}

	tables, err := engine.Tables(ctx, d, chartsOnly)
	if err != nil {
		zap.L().Error("charts: build tables", zap.Error(err))
		return
	}
	if err := st.SaveTables(ctx, rec.ID, tables); err != nil {
		zap.L().Error("charts: save tables", zap.Error(err))
		return
	}

	zap.L().Info("charts: run recorded",
		zap.String("run_id", rec.ID),
		zap.Int("tables", len(tables)),
	)
}

func init() {
	chartsCmd.Flags().StringVar(&chartsSurvey, "survey", "", "survey CSV path (default: config survey.path)")
	chartsCmd.Flags().StringVar(&chartsCOL, "cost-of-living", "", "cost-of-living CSV path (default: config survey.cost_of_living_path)")
	chartsCmd.Flags().StringVar(&chartsOut, "out", "", "output directory (default: config output.dir)")
	chartsCmd.Flags().StringSliceVar(&chartsOnly, "only", nil, "restrict to specific chart names (repeatable)")
	chartsCmd.Flags().BoolVar(&chartsNoStore, "no-store", false, "skip recording the run in the store")
	rootCmd.AddCommand(chartsCmd)
}
