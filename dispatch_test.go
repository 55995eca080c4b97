package streammux

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestDispatch_ConsumesAllStreams verifies that Dispatch runs one consumer
// per stream concurrently and returns once all streams are drained.
func TestDispatch_ConsumesAllStreams(t *testing.T) {
	t.Parallel()

	in := FromSlice(
		V("A", 1),
		V("B", "x"),
		V("A", 2),
		V("B", "y"),
	)

	a := NewOutlet[int]("A")
	b := NewOutlet[string]("B")
	Demux(in, Panicking(), a, b)

	var mu sync.Mutex
	var ints []int
	var strs []string

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Dispatch(ctx,
		Each(a, func(ctx context.Context, v int) error {
			mu.Lock()
			ints = append(ints, v)
			mu.Unlock()
			return nil
		}),
		Each(b, func(ctx context.Context, v string) error {
			mu.Lock()
			strs = append(strs, v)
			mu.Unlock()
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, ints)
	require.Equal(t, []string{"x", "y"}, strs)
}

// TestDispatch_FirstErrorPropagates verifies that a failing consumer's error
// is returned while the other consumers still run to completion.
func TestDispatch_FirstErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	var consumed int
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Dispatch(ctx,
		Each(FromSlice(1, 2, 3), func(ctx context.Context, v int) error {
			if v == 2 {
				return boom
			}
			return nil
		}),
		Each(FromSlice("a", "b"), func(ctx context.Context, v string) error {
			consumed++
			return nil
		}),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, consumed)
}

// TestEach_ContextCancellation verifies that a consumer built with Each
// returns the context error when cancelled mid-stream.
func TestEach_ContextCancellation(t *testing.T) {
	t.Parallel()

	_, src := NewChannel[int]() // never fed, never closed

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := Each(src, func(ctx context.Context, v int) error { return nil })(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
