package streammux

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/petrijr/streammux/internal/deadletter"
)

// Re-export the dead-letter types so external callers never need to import
// internal packages.

type (
	// DeadLetter is one journaled send failure.
	DeadLetter = deadletter.Record

	// DeadLetterStore journals undelivered items.
	DeadLetterStore = deadletter.Store
)

// NewMemoryDeadLetterStore returns a DeadLetterStore backed by an in-memory
// slice. Non-durable; best for tests and development.
func NewMemoryDeadLetterStore() DeadLetterStore {
	return deadletter.NewMemoryStore()
}

// NewSQLiteDeadLetterStore returns a DeadLetterStore that persists
// undelivered items in a SQLite database, initializing the schema if needed.
// Payloads are gob-encoded; struct payloads must be registered with
// gob.Register.
//
// Typical usage:
//
//	db, _ := sql.Open("sqlite", "file:deadletters.db")
//	store, err := streammux.NewSQLiteDeadLetterStore(db)
//	h := streammux.NewDeadLetterHandler(store, nil)
func NewSQLiteDeadLetterStore(db *sql.DB) (DeadLetterStore, error) {
	return deadletter.NewSQLiteStore(db)
}

// NewDeadLetterHandler returns an ErrorHandler that journals each
// undelivered item in store instead of dropping it. Journal failures are
// logged through logger (slog.Default() if nil); the routing loop is never
// aborted.
func NewDeadLetterHandler(store DeadLetterStore, logger *slog.Logger) ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, serr *SendError) {
		rec := DeadLetter{
			Tag:      serr.Tag,
			Payload:  serr.Payload,
			FailedAt: time.Now(),
		}
		if err := store.Append(ctx, rec); err != nil {
			logger.ErrorContext(ctx, "dead_letter_append_failed",
				slog.String("tag", string(serr.Tag)),
				slog.Any("error", err),
			)
		}
	}
}

// ReplayDeadLetters reads every journaled item from store and returns them as
// a finite Source[Value], in journal order, ready to be fed back through a
// demultiplexer. The journal is left untouched; call store.Purge once the
// replay has been consumed successfully.
func ReplayDeadLetters(ctx context.Context, store DeadLetterStore) (Source[Value], error) {
	recs, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	vals := make([]Value, len(recs))
	for i, rec := range recs {
		vals[i] = Value{Tag: rec.Tag, Payload: rec.Payload}
	}
	return FromSlice(vals...), nil
}
