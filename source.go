package streammux

import (
	"context"
	"sync"
)

// Source is a stream of items the engines (and Each) consume: pull the next
// item, suspending until one is available or the stream has permanently
// ended. Recv reports end of stream by returning an error, conventionally
// ErrEndOfStream; engines treat any Recv error as the end of the source.
//
// *Receiver[T] and *Outlet[T] implement Source[T].
type Source[T any] interface {
	Recv(ctx context.Context) (T, error)
}

// FromChan adapts a native Go channel into a Source. The source ends when ch
// is closed.
func FromChan[T any](ch <-chan T) Source[T] {
	return chanSource[T]{ch: ch}
}

type chanSource[T any] struct {
	ch <-chan T
}

func (s chanSource[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	select {
	case v, ok := <-s.ch:
		if !ok {
			return zero, ErrEndOfStream
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// FromSlice returns a finite Source yielding the given items in order.
// Useful for tests and for replaying captured data.
func FromSlice[T any](items ...T) Source[T] {
	return &sliceSource[T]{items: items}
}

type sliceSource[T any] struct {
	mu    sync.Mutex
	items []T
	next  int
}

func (s *sliceSource[T]) Recv(ctx context.Context) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if s.next >= len(s.items) {
		return zero, ErrEndOfStream
	}
	v := s.items[s.next]
	s.next++
	return v, nil
}
