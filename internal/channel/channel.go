// Package channel implements the unbounded multi-producer/single-consumer
// FIFO queue the routing engines are built on.
//
// A channel is created as a (Sender, Receiver) pair. The Sender side may be
// cloned; the Receiver observes end-of-stream once every Sender handle has
// been closed and the buffer is drained. Closing the Receiver makes all
// subsequent sends fail, which is how downstream consumers signal that they
// are gone.
package channel

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrEndOfStream is returned by Recv once all sender handles are closed
	// and every buffered item has been delivered.
	ErrEndOfStream = errors.New("channel: end of stream")

	// ErrReceiverClosed is returned by Send after the receiver has been
	// closed, and by Recv on a receiver the caller already closed.
	ErrReceiverClosed = errors.New("channel: receiver closed")
)

// core is the state shared by all sender handles and the receiver.
// buf and the counters are guarded by mu; wake carries at most one pending
// wakeup for the single receiver.
type core[T any] struct {
	mu      sync.Mutex
	buf     []T
	senders int
	rclosed bool
	wake    chan struct{}
}

// New creates an unbounded channel and returns its initial sender handle and
// its receiver handle. Additional producer handles are obtained via
// (*Sender).Clone.
func New[T any]() (*Sender[T], *Receiver[T]) {
	c := &core[T]{
		senders: 1,
		wake:    make(chan struct{}, 1),
	}
	return &Sender[T]{c: c}, &Receiver[T]{c: c}
}

// signal wakes the receiver if it is blocked. Non-blocking: a pending wakeup
// is enough, Recv re-checks the buffer before sleeping.
func (c *core[T]) signal() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Sender is a producer handle. Handles sharing one channel may send
// concurrently; each handle must be closed exactly once by its owner.
type Sender[T any] struct {
	c      *core[T]
	closed bool
}

// Send enqueues v. It never blocks: the buffer is unbounded. It returns
// ErrReceiverClosed once the consumer side has been closed, the only way a
// send can fail. Sending on a closed handle panics, mirroring the semantics
// of native Go channels.
func (s *Sender[T]) Send(v T) error {
	s.c.mu.Lock()
	if s.closed {
		s.c.mu.Unlock()
		panic("channel: send on closed sender")
	}
	if s.c.rclosed {
		s.c.mu.Unlock()
		return ErrReceiverClosed
	}
	s.c.buf = append(s.c.buf, v)
	s.c.mu.Unlock()

	s.c.signal()
	return nil
}

// Clone returns a new producer handle sharing this channel. The receiver will
// not observe end-of-stream until the clone is closed too.
func (s *Sender[T]) Clone() *Sender[T] {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if s.closed {
		panic("channel: clone of closed sender")
	}
	s.c.senders++
	return &Sender[T]{c: s.c}
}

// Close drops this producer handle. Once the last handle is closed the
// receiver drains the buffer and then observes end-of-stream. Closing an
// already-closed handle is a no-op.
func (s *Sender[T]) Close() {
	s.c.mu.Lock()
	if s.closed {
		s.c.mu.Unlock()
		return
	}
	s.closed = true
	s.c.senders--
	last := s.c.senders == 0
	s.c.mu.Unlock()

	if last {
		s.c.signal()
	}
}

// Receiver is the single consumer handle of a channel. It is not safe for
// concurrent use by multiple goroutines.
type Receiver[T any] struct {
	c *core[T]
}

// Recv returns the next buffered item, blocking until one is available. It
// returns ErrEndOfStream once all sender handles are closed and the buffer is
// drained, ctx.Err() if the context is done first, and ErrReceiverClosed if
// the caller already closed this receiver.
func (r *Receiver[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	for {
		r.c.mu.Lock()
		if r.c.rclosed {
			r.c.mu.Unlock()
			return zero, ErrReceiverClosed
		}
		if len(r.c.buf) > 0 {
			v := r.c.buf[0]
			r.c.buf = r.c.buf[1:]
			r.c.mu.Unlock()
			return v, nil
		}
		if r.c.senders == 0 {
			r.c.mu.Unlock()
			return zero, ErrEndOfStream
		}
		r.c.mu.Unlock()

		select {
		case <-r.c.wake:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// Close drops the consumer handle. Buffered items are discarded and every
// subsequent Send on the channel returns ErrReceiverClosed.
func (r *Receiver[T]) Close() {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	r.c.rclosed = true
	r.c.buf = nil
}

// Len returns the number of currently buffered items.
func (r *Receiver[T]) Len() int {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	return len(r.c.buf)
}
