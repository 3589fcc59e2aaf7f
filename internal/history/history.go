// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of tagging runs in a local SQLite
// database so past audits can be listed and compared.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubaudit/pkg/types"
)

const dbFile = "pubaudit.db"

// Run is one recorded tagging run.
type Run struct {
	ID         int64     `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	RosterPath string    `json:"roster_path"`
	PubsPath   string    `json:"pubs_path"`
	OutputPath string    `json:"output_path"`
	RosterSize int       `json:"roster_size"`
	Rows       int       `json:"rows"`
	Lead       int       `json:"lead"`
	Coauthor   int       `json:"coauthor"`
	Unmatched  int       `json:"unmatched"`
}

// Store manages the run-history SQLite database.
type Store struct {
	db      *sql.DB
	maxRuns int
}

// NewStore opens or creates the history database at
// historyDir/pubaudit.db, creating the schema if needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.HistoryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxRuns := cfg.MaxRuns
	if maxRuns <= 0 {
		maxRuns = 20
	}

	s := &Store{db: db, maxRuns: maxRuns}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		roster_path TEXT,
		pubs_path TEXT,
		output_path TEXT,
		roster_size INTEGER,
		rows INTEGER,
		lead INTEGER,
		coauthor INTEGER,
		unmatched INTEGER
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts a run and returns its assigned ID.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	startedAt := run.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, roster_path, pubs_path, output_path,
			roster_size, rows, lead, coauthor, unmatched)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		startedAt.UTC().Format(time.RFC3339Nano),
		run.RosterPath, run.PubsPath, run.OutputPath,
		run.RosterSize, run.Rows, run.Lead, run.Coauthor, run.Unmatched,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent runs, newest first. A non-positive limit
// uses the store default.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxRuns
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, roster_path, pubs_path, output_path,
			roster_size, rows, lead, coauthor, unmatched
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		if err := rows.Scan(&r.ID, &startedAt, &r.RosterPath, &r.PubsPath, &r.OutputPath,
			&r.RosterSize, &r.Rows, &r.Lead, &r.Coauthor, &r.Unmatched); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
