package engine

import (
	"context"
	"fmt"

	"github.com/petrijr/streammux/internal/channel"
	"github.com/petrijr/streammux/pkg/api"
)

// Inlet is one multiplexer input: a typed source paired with the variant tag
// its items are wrapped under.
type Inlet interface {
	// Tag returns the variant tag items from this inlet are wrapped under.
	Tag() api.Tag

	// Next returns the next item, blocking until one is available. Any error
	// means the source has ended.
	Next(ctx context.Context) (any, error)
}

// Mux starts one goroutine per inlet, each wrapping items into tagged-union
// values and sending them through its own clone of the shared output sender.
// The returned receiver observes end-of-stream only once every inlet's source
// has ended: the output stays open as long as at least one input is active.
//
// Inlet tags must be distinct and non-empty. A nil handler behaves like
// api.Ignoring.
func Mux(handler api.ErrorHandler, inlets []Inlet) *channel.Receiver[api.Value] {
	if len(inlets) == 0 {
		panic("streammux: multiplexer needs at least one inlet")
	}
	if handler == nil {
		handler = api.Ignoring()
	}

	seen := make(map[api.Tag]struct{}, len(inlets))
	for _, in := range inlets {
		tag := in.Tag()
		if tag == "" {
			panic("streammux: inlet tag must not be empty")
		}
		if _, dup := seen[tag]; dup {
			panic(fmt.Sprintf("streammux: duplicate inlet tag %q", tag))
		}
		seen[tag] = struct{}{}
	}

	out, result := channel.New[api.Value]()
	for _, in := range inlets {
		go pump(in, out.Clone(), handler)
	}
	// Drop the original handle; only the per-inlet clones keep the output
	// open now.
	out.Close()

	return result
}

func pump(in Inlet, out *channel.Sender[api.Value], handler api.ErrorHandler) {
	defer out.Close()

	ctx := context.Background()
	tag := in.Tag()

	for {
		payload, err := in.Next(ctx)
		if err != nil {
			return
		}

		v := api.Value{Tag: tag, Payload: payload}
		if err := out.Send(v); err != nil {
			handler(ctx, &api.SendError{Tag: v.Tag, Payload: v.Payload})
		}
	}
}
