package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/devlens/devsurvey/internal/report"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	rendered   INTEGER NOT NULL DEFAULT 0,
	skipped    INTEGER NOT NULL DEFAULT 0,
	failed     INTEGER NOT NULL DEFAULT 0,
	files      TEXT,
	started_at DATETIME NOT NULL,
	elapsed_ms INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS derived_tables (
	id         TEXT PRIMARY KEY,
	run_id     TEXT NOT NULL REFERENCES runs(id),
	name       TEXT NOT NULL,
	payload    TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
CREATE INDEX IF NOT EXISTS idx_derived_tables_run_id ON derived_tables(run_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run *RunRecord) error {
	filesJSON, err := json.Marshal(run.Files)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal run files")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, rendered, skipped, failed, files, started_at, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Rendered, run.Skipped, run.Failed, string(filesJSON),
		run.StartedAt.UTC(), run.Elapsed.Milliseconds(),
	)
	return eris.Wrapf(err, "sqlite: insert run %s", run.ID)
}

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, rendered, skipped, failed, files, started_at, elapsed_ms
		 FROM runs WHERE id = ?`,
		runID,
	)
	return scanRun(row)
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, rendered, skipped, failed, files, started_at, elapsed_ms
		 FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}

func (s *SQLiteStore) SaveTables(ctx context.Context, runID string, tables []*report.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin save tables")
	}
	defer tx.Rollback()

	for _, t := range tables {
		payload, err := json.Marshal(t)
		if err != nil {
			return eris.Wrapf(err, "sqlite: marshal table %s", t.Name)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO derived_tables (id, run_id, name, payload) VALUES (?, ?, ?, ?)`,
			uuid.New().String(), runID, t.Name, string(payload),
		); err != nil {
			return eris.Wrapf(err, "sqlite: insert table %s", t.Name)
		}
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit save tables")
}

func (s *SQLiteStore) Tables(ctx context.Context, runID string) ([]*report.Table, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM derived_tables WHERE run_id = ? ORDER BY rowid`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: tables for run %s", runID)
	}
	defer rows.Close()

	var tables []*report.Table
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan table payload")
		}
		var t report.Table
		if err := json.Unmarshal([]byte(payload), &t); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal table payload")
		}
		tables = append(tables, &t)
	}
	return tables, eris.Wrap(rows.Err(), "sqlite: tables iterate")
}

// helpers

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (*RunRecord, error) {
	var r RunRecord
	var filesJSON sql.NullString
	var elapsedMS int64

	err := row.Scan(&r.ID, &r.Rendered, &r.Skipped, &r.Failed, &filesJSON, &r.StartedAt, &elapsedMS)
	if err == sql.ErrNoRows {
		return nil, eris.New("run not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan run")
	}

	if filesJSON.Valid && filesJSON.String != "" {
		if err := json.Unmarshal([]byte(filesJSON.String), &r.Files); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal run files")
		}
	}
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	return &r, nil
}
