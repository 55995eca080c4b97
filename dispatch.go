package streammux

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Consumer is one unit of consumer-side work: it drains some stream until it
// ends or an error occurs. Build one with Each, or supply your own.
type Consumer func(ctx context.Context) error

// Each returns a Consumer that pulls items from src and applies fn to each,
// in order, until src ends (nil result), fn fails, or ctx is done.
func Each[T any](src Source[T], fn func(ctx context.Context, item T) error) Consumer {
	return func(ctx context.Context) error {
		for {
			v, err := src.Recv(ctx)
			if err != nil {
				if errors.Is(err, ErrEndOfStream) {
					return nil
				}
				return err
			}
			if err := fn(ctx, v); err != nil {
				return err
			}
		}
	}
}

// Dispatch runs all consumers concurrently and waits for every one of them
// to finish, regardless of individual failures. It returns the first non-nil
// error, if any. It has no routing logic of its own and performs no retry.
//
// Typical usage, pairing one consumer per demultiplexer outlet:
//
//	err := streammux.Dispatch(ctx,
//	    streammux.Each(registrations, handleRegistration),
//	    streammux.Each(deletions, handleDeletion),
//	)
func Dispatch(ctx context.Context, consumers ...Consumer) error {
	var g errgroup.Group
	for _, c := range consumers {
		g.Go(func() error {
			return c(ctx)
		})
	}
	return g.Wait()
}
