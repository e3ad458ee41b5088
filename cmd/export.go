package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/devlens/devsurvey/internal/store"
)

var (
	exportRunID string
	exportXLSX  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a recorded run's derived tables to an Excel workbook",
	Long: `Reads the derived tables of a recorded run from the store and writes
them as one worksheet per table. Without --run, the most recent run is
exported.

Examples:
  devsurvey export --xlsx survey-report.xlsx
  devsurvey export --run 2f1c... --xlsx old-run.xlsx`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("export"); err != nil {
			return err
		}

		st, err := store.NewSQLite(cfg.Store.Path)
		if err != nil {
			return eris.Wrap(err, "export: open store")
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "export: migrate store")
		}

		runID := exportRunID
		if runID == "" {
			runs, err := st.ListRuns(ctx, 1)
			if err != nil {
				return eris.Wrap(err, "export: list runs")
			}
			if len(runs) == 0 {
				return eris.New("export: no recorded runs, run `devsurvey charts` first")
			}
			runID = runs[0].ID
		}

		tables, err := st.Tables(ctx, runID)
		if err != nil {
			return eris.Wrap(err, "export")
		}
		if len(tables) == 0 {
			return eris.Errorf("export: run %s has no derived tables", runID)
		}

		if err := store.WriteWorkbook(exportXLSX, tables); err != nil {
			return eris.Wrap(err, "export")
		}

		zap.L().Info("export: workbook written",
			zap.String("run_id", runID),
			zap.Int("tables", len(tables)),
			zap.String("path", exportXLSX),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportRunID, "run", "", "run id to export (default: most recent)")
	exportCmd.Flags().StringVar(&exportXLSX, "xlsx", "devsurvey.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}
