package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlens/devsurvey/internal/report"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func testRun() *RunRecord {
	return &RunRecord{
		ID:        uuid.New().String(),
		Rendered:  21,
		Skipped:   2,
		Failed:    0,
		Files:     []string{"figures/01_age_distribution.png"},
		StartedAt: time.Now().UTC().Truncate(time.Second),
		Elapsed:   1500 * time.Millisecond,
	}
}

func TestSQLiteRunRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := testRun()
	require.NoError(t, s.SaveRun(ctx, run))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, 21, got.Rendered)
	assert.Equal(t, 2, got.Skipped)
	assert.Equal(t, run.Files, got.Files)
	assert.Equal(t, run.Elapsed, got.Elapsed)
}

func TestSQLiteGetRunNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetRun(context.Background(), "missing")
	assert.Error(t, err)
}

func TestSQLiteListRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := testRun()
	first.StartedAt = time.Now().UTC().Add(-time.Hour)
	second := testRun()
	require.NoError(t, s.SaveRun(ctx, first))
	require.NoError(t, s.SaveRun(ctx, second))

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID) // newest first

	limited, err := s.ListRuns(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteTablesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := testRun()
	require.NoError(t, s.SaveRun(ctx, run))

	tables := []*report.Table{
		{
			Name:    "top-languages",
			Columns: []string{"Programming Language", "Count"},
			Rows:    [][]any{{"Go", 4}, {"Python", 5}},
		},
		{
			Name:    "age-distribution",
			Columns: []string{"Age Range", "Count"},
			Rows:    [][]any{{"18-24", 2}},
		},
	}
	require.NoError(t, s.SaveTables(ctx, run.ID, tables))

	got, err := s.Tables(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "top-languages", got[0].Name)
	assert.Equal(t, []string{"Programming Language", "Count"}, got[0].Columns)
	// JSON round-trips numbers as float64
	assert.Equal(t, []any{"Go", float64(4)}, got[0].Rows[0])

	none, err := s.Tables(ctx, "missing-run")
	require.NoError(t, err)
	assert.Empty(t, none)
}
