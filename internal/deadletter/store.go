// Package deadletter persists undelivered items so a send failure does not
// have to mean data loss. A dead-letter store is wired into a pipeline
// through the root package's NewDeadLetterHandler; journaled items can later
// be fed back through a demultiplexer via ReplayDeadLetters.
package deadletter

import (
	"context"
	"sync"
	"time"

	"github.com/petrijr/streammux/pkg/api"
)

// Record is one journaled send failure.
type Record struct {
	// ID is assigned by the store; zero until appended.
	ID int64

	// Tag identifies the route whose send failed.
	Tag api.Tag

	// Payload is the item that could not be delivered.
	Payload any

	// FailedAt is when the failure was observed.
	FailedAt time.Time
}

// Store journals undelivered items.
type Store interface {
	// Append adds a record to the journal.
	Append(ctx context.Context, rec Record) error

	// List returns all journaled records in append order.
	List(ctx context.Context) ([]Record, error)

	// Purge removes all journaled records.
	Purge(ctx context.Context) error

	// Len returns the number of journaled records.
	Len(ctx context.Context) (int, error)
}

// MemoryStore is a Store backed by an in-memory slice. It is safe for
// concurrent use and intended for tests and non-durable setups.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	recs   []Record
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory dead-letter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Append(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.nextID
	s.nextID++
	s.recs = append(s.recs, rec)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.recs))
	copy(out, s.recs)
	return out, nil
}

func (s *MemoryStore) Purge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = nil
	return nil
}

func (s *MemoryStore) Len(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.recs), nil
}
