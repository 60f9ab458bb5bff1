// CLAUDE:SUMMARY SQLite-backed tool-call log for operator visibility; recording failures never propagate.
// Package calllog records every tool invocation in a local SQLite database.
//
// The log exists for operator visibility only: it is optional, and a
// failing log store never blocks or fails a tool call.
package calllog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/hazyhaar/docsrv/idgen"
	"github.com/hazyhaar/docsrv/kit"
)

// Schema is the call log schema, applied idempotently at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS tool_calls (
    id          TEXT PRIMARY KEY,
    tool        TEXT NOT NULL,
    session_id  TEXT NOT NULL DEFAULT '',
    status      TEXT NOT NULL,
    error_text  TEXT NOT NULL DEFAULT '',
    duration_ms INTEGER NOT NULL,
    called_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tool_calls_time ON tool_calls(called_at DESC);
`

// Entry is one recorded tool invocation.
type Entry struct {
	ID         string
	Tool       string
	SessionID  string
	Status     string // "ok" or "error"
	ErrorText  string
	DurationMs int64
	CalledAt   int64 // unix millis
}

// Store writes and reads tool-call entries.
type Store struct {
	db    *sql.DB
	newID idgen.Generator
}

// NewStore creates a Store on an open database.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:    db,
		newID: idgen.Prefixed("call_", idgen.Default),
	}
}

// Init applies the schema.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("calllog schema: %w", err)
	}
	return nil
}

// Record inserts an entry, assigning its ID.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = s.newID()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tool_calls (id, tool, session_id, status, error_text, duration_ms, called_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Tool, e.SessionID, e.Status, e.ErrorText, e.DurationMs, e.CalledAt,
	)
	return err
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tool, session_id, status, error_text, duration_ms, called_at
		FROM tool_calls ORDER BY called_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Tool, &e.SessionID, &e.Status,
			&e.ErrorText, &e.DurationMs, &e.CalledAt); err != nil {
			return nil, fmt.Errorf("scan tool call: %w", err)
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

// Middleware returns a kit.Middleware that records every endpoint
// invocation. Recording errors are logged and swallowed so observability
// never degrades the tool itself.
func Middleware(store *Store, logger *slog.Logger) kit.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, req any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			entry := &Entry{
				Tool:       kit.GetToolName(ctx),
				SessionID:  kit.GetSessionID(ctx),
				Status:     "ok",
				DurationMs: time.Since(start).Milliseconds(),
				CalledAt:   time.Now().UnixMilli(),
			}
			if err != nil {
				entry.Status = "error"
				entry.ErrorText = err.Error()
			}
			if recErr := store.Record(ctx, entry); recErr != nil {
				logger.Warn("calllog: record failed", "error", recErr)
			}
			return resp, err
		}
	}
}
