// Package analytics persists tool-call, error, and session activity to a
// local SQLite database. It is a logging collaborator only: the dispatch
// path treats it as fire-and-forget and never depends on its contents.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite analytics database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// New opens (or creates) the analytics database at path. Parent directories
// are created as needed; the schema is applied idempotently.
func New(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL keeps writers from blocking the dashboard reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &Store{db: db, logger: logger.With("component", "analytics")}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	s.logger.Info("Analytics store initialized", slog.String("path", path))
	return s, nil
}

func (s *Store) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tool_calls (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			domain TEXT NOT NULL,
			tool TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			success INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tool_calls_created
			ON tool_calls(created_at);

		CREATE INDEX IF NOT EXISTS idx_tool_calls_domain
			ON tool_calls(domain, created_at);

		CREATE TABLE IF NOT EXISTS errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			domain TEXT NOT NULL,
			tool TEXT NOT NULL,
			code TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_errors_created
			ON errors(created_at);

		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			opened_at DATETIME NOT NULL,
			closed_at DATETIME
		);

		CREATE INDEX IF NOT EXISTS idx_sessions_opened
			ON sessions(opened_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordToolCall logs one dispatch outcome. Failures are logged and
// swallowed; analytics must never fail a tool call.
func (s *Store) RecordToolCall(ctx context.Context, domain, tool string, duration time.Duration, success bool) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tool_calls (domain, tool, duration_ms, success, created_at) VALUES (?, ?, ?, ?, ?)`,
		domain, tool, duration.Milliseconds(), boolToInt(success), time.Now().UTC())
	if err != nil {
		s.logger.Warn("Failed to record tool call", slog.String("tool", tool), slog.Any("error", err))
	}
}

// RecordError logs one classified failure.
func (s *Store) RecordError(ctx context.Context, domain, tool, code, message string) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO errors (domain, tool, code, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		domain, tool, code, message, time.Now().UTC())
	if err != nil {
		s.logger.Warn("Failed to record error", slog.String("tool", tool), slog.Any("error", err))
	}
}

// OpenSession records the start of a transport session.
func (s *Store) OpenSession(ctx context.Context, id string) {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO sessions (id, opened_at) VALUES (?, ?)`,
		id, time.Now().UTC())
	if err != nil {
		s.logger.Warn("Failed to record session open", slog.String("session_id", id), slog.Any("error", err))
	}
}

// CloseSession records the end of a transport session.
func (s *Store) CloseSession(ctx context.Context, id string) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET closed_at = ? WHERE id = ? AND closed_at IS NULL`,
		time.Now().UTC(), id)
	if err != nil {
		s.logger.Warn("Failed to record session close", slog.String("session_id", id), slog.Any("error", err))
	}
}

// UpsertUser records a dashboard user by email, returning its ID.
func (s *Store) UpsertUser(ctx context.Context, id, email string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(email) DO NOTHING`,
		id, email, time.Now().UTC())
	return err
}

// ToolUsage is one row of the dashboard usage table.
type ToolUsage struct {
	Domain string `json:"domain"`
	Tool   string `json:"tool"`
	Calls  int    `json:"calls"`
	Errors int    `json:"errors"`
}

// ErrorCount is one row of the dashboard error table.
type ErrorCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// Totals summarises a reporting window.
type Totals struct {
	TotalCalls   int     `json:"totalCalls"`
	TotalErrors  int     `json:"totalErrors"`
	SuccessRate  float64 `json:"successRate"`
	ActiveTools  int     `json:"activeTools"`
	SessionCount int     `json:"sessionCount"`
}

// Summary is the dashboard analytics payload.
type Summary struct {
	ToolUsage []ToolUsage  `json:"toolUsage"`
	Errors    []ErrorCount `json:"errors"`
	Summary   Totals       `json:"summary"`
}

// Summarize aggregates the last N days of activity.
func (s *Store) Summarize(ctx context.Context, days int) (*Summary, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	out := &Summary{ToolUsage: []ToolUsage{}, Errors: []ErrorCount{}}

	rows, err := s.db.QueryContext(ctx,
		`SELECT domain, tool, COUNT(*), SUM(1 - success)
		 FROM tool_calls WHERE created_at >= ?
		 GROUP BY domain, tool ORDER BY COUNT(*) DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("querying tool usage: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var u ToolUsage
		if err := rows.Scan(&u.Domain, &u.Tool, &u.Calls, &u.Errors); err != nil {
			return nil, fmt.Errorf("scanning tool usage: %w", err)
		}
		out.ToolUsage = append(out.ToolUsage, u)
		out.Summary.TotalCalls += u.Calls
		out.Summary.TotalErrors += u.Errors
		out.Summary.ActiveTools++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	errRows, err := s.db.QueryContext(ctx,
		`SELECT code, COUNT(*) FROM errors WHERE created_at >= ?
		 GROUP BY code ORDER BY COUNT(*) DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("querying errors: %w", err)
	}
	defer errRows.Close()
	for errRows.Next() {
		var e ErrorCount
		if err := errRows.Scan(&e.Code, &e.Count); err != nil {
			return nil, fmt.Errorf("scanning errors: %w", err)
		}
		out.Errors = append(out.Errors, e)
	}
	if err := errRows.Err(); err != nil {
		return nil, err
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE opened_at >= ?`, since).
		Scan(&out.Summary.SessionCount); err != nil {
		return nil, fmt.Errorf("counting sessions: %w", err)
	}

	if out.Summary.TotalCalls > 0 {
		out.Summary.SuccessRate = float64(out.Summary.TotalCalls-out.Summary.TotalErrors) / float64(out.Summary.TotalCalls)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
