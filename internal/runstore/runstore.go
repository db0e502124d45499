// Package runstore persists completed integration runs to a SQLite file so
// estimates can be compared across invocations.
package runstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded integration run.
type Run struct {
	ID        string
	Method    string
	Samples   int
	Estimate  float64
	AbsError  float64
	CreatedAt time.Time
}

// Store wraps the runs database.
type Store struct {
	*sql.DB
}

// Open opens the store at path, creating the file if needed, and applies
// any pending schema migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run store: %w", err)
	}
	s := &Store{db}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// RecordRun inserts the run, assigning a fresh ID when the caller left it
// empty, and returns the ID under which the run was stored.
func (s *Store) RecordRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.Exec(
		`INSERT INTO runs (id, method, samples, estimate, abs_error) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Method, r.Samples, r.Estimate, r.AbsError,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}
	return r.ID, nil
}

// ListRuns returns up to limit stored runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	rows, err := s.Query(
		`SELECT id, method, samples, estimate, abs_error, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.Method, &r.Samples, &r.Estimate, &r.AbsError, &created); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.CreatedAt, err = parseCreatedAt(created)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return runs, nil
}

// parseCreatedAt decodes the created_at column. The driver hands
// CURRENT_TIMESTAMP back as RFC3339 text; the plain SQLite datetime form
// is accepted too for rows written by other tools.
func parseCreatedAt(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse created_at %q: %w", s, err)
	}
	return t.UTC(), nil
}
