package deadletter

import (
	"context"
	"database/sql"
	"encoding/gob"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

type samplePayload struct {
	Msg string
	N   int
}

func init() {
	gob.Register(samplePayload{})
}

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}

	return store
}

func TestSQLiteStore_AppendList(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	failedAt := time.Now()
	recs := []Record{
		{Tag: "A", Payload: 123, FailedAt: failedAt},
		{Tag: "B", Payload: "hello", FailedAt: failedAt},
		{Tag: "C", Payload: samplePayload{Msg: "m", N: 7}, FailedAt: failedAt},
	}
	for _, rec := range recs {
		if err := store.Append(ctx, rec); err != nil {
			t.Fatalf("Append %q failed: %v", rec.Tag, err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}

	if got[0].Tag != "A" || got[0].Payload != 123 {
		t.Fatalf("unexpected record 0: %+v", got[0])
	}
	if got[1].Tag != "B" || got[1].Payload != "hello" {
		t.Fatalf("unexpected record 1: %+v", got[1])
	}
	p, ok := got[2].Payload.(samplePayload)
	if !ok {
		t.Fatalf("expected samplePayload, got %T", got[2].Payload)
	}
	if p.Msg != "m" || p.N != 7 {
		t.Fatalf("unexpected payload: %+v", p)
	}

	if !got[0].FailedAt.Equal(failedAt) {
		t.Fatalf("expected FailedAt %v, got %v", failedAt, got[0].FailedAt)
	}
	if got[0].ID == 0 || got[1].ID <= got[0].ID {
		t.Fatalf("expected increasing non-zero IDs, got %d then %d", got[0].ID, got[1].ID)
	}
}

func TestSQLiteStore_DefaultFailedAt(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	before := time.Now()
	if err := store.Append(ctx, Record{Tag: "A", Payload: 1}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].FailedAt.Before(before) {
		t.Fatalf("expected FailedAt to default to now, got %v", got[0].FailedAt)
	}
}

func TestSQLiteStore_PurgeLen(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Append(ctx, Record{Tag: "A", Payload: i}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	n, err := store.Len(ctx)
	if err != nil {
		t.Fatalf("Len failed: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected Len 5, got %d", n)
	}

	if err := store.Purge(ctx); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}

	n, err = store.Len(ctx)
	if err != nil {
		t.Fatalf("Len failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected Len 0 after Purge, got %d", n)
	}
}

func TestSQLiteStore_NilPayload(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, Record{Tag: "A"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Payload != nil {
		t.Fatalf("expected nil payload, got %v", got[0].Payload)
	}
}
