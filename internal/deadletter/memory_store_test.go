package deadletter

import (
	"context"
	"testing"
)

func TestMemoryStore_AppendListPurge(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, Record{Tag: "A", Payload: 1}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Append(ctx, Record{Tag: "B", Payload: "x"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	n, err := store.Len(ctx)
	if err != nil {
		t.Fatalf("Len failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected Len 2, got %d", n)
	}

	recs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Tag != "A" || recs[0].Payload != 1 {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Tag != "B" || recs[1].Payload != "x" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
	if recs[0].ID >= recs[1].ID {
		t.Fatalf("expected increasing IDs, got %d then %d", recs[0].ID, recs[1].ID)
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

func TestMemoryStore_ListCopies(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, Record{Tag: "A", Payload: 1}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	recs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	recs[0].Tag = "mutated"

	recs2, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if recs2[0].Tag != "A" {
		t.Fatalf("List result aliases internal state: %+v", recs2[0])
	}
}
