package streammux

import (
	"context"

	"github.com/petrijr/streammux/internal/engine"
	"github.com/petrijr/streammux/pkg/api"
)

// Inlet is a multiplexer input binding: a typed source paired with the tag
// its items are wrapped under. Build one with NewInlet.
type Inlet interface {
	engineInlet() engine.Inlet
}

// NewInlet binds src to a variant tag for multiplexing. Every item received
// from src is wrapped as Value{Tag: tag, Payload: item} on the mux output.
func NewInlet[T any](tag Tag, src Source[T]) Inlet {
	return inlet[T]{tag: tag, src: src}
}

type inlet[T any] struct {
	tag Tag
	src Source[T]
}

func (in inlet[T]) engineInlet() engine.Inlet {
	return erasedInlet[T]{in: in}
}

// erasedInlet is the engine-facing, type-erased view of an inlet.
type erasedInlet[T any] struct {
	in inlet[T]
}

func (e erasedInlet[T]) Tag() api.Tag {
	return e.in.tag
}

func (e erasedInlet[T]) Next(ctx context.Context) (any, error) {
	v, err := e.in.src.Recv(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Mux starts a multiplexer: one background goroutine per inlet pulls items,
// wraps them under the inlet's tag, and sends them into the shared output.
// Inlet tags must be distinct and non-empty, or Mux panics.
//
// The returned receiver observes end-of-stream only once every inlet's
// source has ended: the output stays open as long as at least one input is
// active. Items from one inlet preserve their order; interleaving across
// inlets is unspecified.
//
// The result implements Source[Value], so it can feed a demultiplexer
// directly.
//
// Typical usage:
//
//	out := streammux.Mux(streammux.Ignoring(),
//	    streammux.NewInlet[int]("A", numbers),
//	    streammux.NewInlet[string]("C", messages),
//	)
func Mux(handler ErrorHandler, inlets ...Inlet) *Receiver[Value] {
	eis := make([]engine.Inlet, len(inlets))
	for i, in := range inlets {
		eis[i] = in.engineInlet()
	}
	return engine.Mux(handler, eis)
}
