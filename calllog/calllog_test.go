package calllog

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/hazyhaar/docsrv/kit"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.TempDir()+"/calls.db")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := NewStore(db)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	// WHAT: Recorded entries come back newest first with IDs assigned.
	store := setupStore(t)
	ctx := context.Background()

	for i, tool := range []string{"read_documentation", "search_documentation"} {
		e := &Entry{Tool: tool, SessionID: "sess-1", Status: "ok", DurationMs: 5, CalledAt: int64(1000 + i)}
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("record: %v", err)
		}
		if e.ID == "" {
			t.Error("ID should be auto-generated")
		}
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("count: got %d", len(entries))
	}
	if entries[0].Tool != "search_documentation" {
		t.Errorf("order: got %q first", entries[0].Tool)
	}
}

func TestMiddleware_RecordsOutcome(t *testing.T) {
	// WHAT: The middleware records one entry per call, carrying the tool
	// name from the context and the error outcome.
	// WHY: The call log is the operator's only view into tool traffic.
	store := setupStore(t)
	ctx := kit.WithToolName(kit.WithSessionID(context.Background(), "sess-9"), "recommend")

	failing := func(_ context.Context, _ any) (any, error) {
		return nil, errors.New("upstream exploded")
	}
	mw := Middleware(store, nil)

	if _, err := mw(failing)(ctx, nil); err == nil {
		t.Fatal("endpoint error should propagate")
	}

	ok := func(_ context.Context, _ any) (any, error) { return "fine", nil }
	if _, err := mw(ok)(ctx, nil); err != nil {
		t.Fatalf("endpoint: %v", err)
	}

	entries, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("count: got %d", len(entries))
	}
	for _, e := range entries {
		if e.Tool != "recommend" {
			t.Errorf("tool: got %q", e.Tool)
		}
		if e.SessionID != "sess-9" {
			t.Errorf("session: got %q", e.SessionID)
		}
	}

	var sawError bool
	for _, e := range entries {
		if e.Status == "error" && e.ErrorText == "upstream exploded" {
			sawError = true
		}
	}
	if !sawError {
		t.Error("error outcome not recorded")
	}
}
