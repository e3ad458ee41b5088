// Package store persists run summaries and the derived tables behind each
// chart, so past analysis runs stay queryable and exportable.
package store

import (
	"context"
	"time"

	"github.com/devlens/devsurvey/internal/report"
)

// RunRecord is one recorded engine run.
type RunRecord struct {
	ID        string        `json:"id"`
	Rendered  int           `json:"rendered"`
	Skipped   int           `json:"skipped"`
	Failed    int           `json:"failed"`
	Files     []string      `json:"files,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Store is the persistence interface for runs and derived tables.
type Store interface {
	Migrate(ctx context.Context) error

	SaveRun(ctx context.Context, run *RunRecord) error
	GetRun(ctx context.Context, runID string) (*RunRecord, error)
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)

	SaveTables(ctx context.Context, runID string, tables []*report.Table) error
	Tables(ctx context.Context, runID string) ([]*report.Table, error)

	Close() error
}
