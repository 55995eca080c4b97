// Package engine contains the routing cores of streammux: the demultiplexer
// (one tagged-union source fanned out to one channel per variant) and the
// multiplexer (many typed sources merged into one tagged-union channel).
//
// The engine works with type-erased routes and inlets; the root streammux
// package layers the generic, type-safe API on top.
package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/petrijr/streammux/pkg/api"
)

// ValueSource is a stream of tagged-union values the demultiplexer drains.
type ValueSource interface {
	// Recv returns the next value, blocking until one is available. Any
	// error means the stream has ended.
	Recv(ctx context.Context) (api.Value, error)
}

// Route is one demultiplexer output: the producer side of a typed channel,
// keyed by its variant tag.
type Route interface {
	// Tag returns the variant tag this route accepts.
	Tag() api.Tag

	// Send unwraps the payload into the route's channel. It fails only when
	// the route's consumer handle has been closed.
	Send(payload any) error

	// Close drops the route's producer handle.
	Close()
}

// Demultiplexer owns the single background task that drains a ValueSource
// into its routes. It has no teardown API: completion is observed through the
// output handles reaching end-of-stream once the source is exhausted.
type Demultiplexer struct {
	discarded atomic.Uint64
}

// Demux builds the route table from routes (tags must be distinct and
// non-empty), starts the routing goroutine, and returns immediately.
//
// Items whose tag matches no route are discarded; onDiscard, if non-nil, is
// invoked for each such item. A nil handler behaves like api.Ignoring.
func Demux(src ValueSource, handler api.ErrorHandler, onDiscard func(api.Value), routes []Route) *Demultiplexer {
	if len(routes) == 0 {
		panic("streammux: demultiplexer needs at least one route")
	}
	if handler == nil {
		handler = api.Ignoring()
	}

	table := make(map[api.Tag]Route, len(routes))
	for _, r := range routes {
		tag := r.Tag()
		if tag == "" {
			panic("streammux: route tag must not be empty")
		}
		if _, dup := table[tag]; dup {
			panic(fmt.Sprintf("streammux: duplicate route tag %q", tag))
		}
		table[tag] = r
	}

	d := &Demultiplexer{}
	go d.run(src, handler, onDiscard, table, routes)
	return d
}

func (d *Demultiplexer) run(src ValueSource, handler api.ErrorHandler, onDiscard func(api.Value), table map[api.Tag]Route, routes []Route) {
	ctx := context.Background()

	for {
		v, err := src.Recv(ctx)
		if err != nil {
			break
		}

		route, ok := table[v.Tag]
		if !ok {
			d.discarded.Add(1)
			if onDiscard != nil {
				onDiscard(v)
			}
			continue
		}

		if err := route.Send(v.Payload); err != nil {
			// The handler runs to completion before the loop resumes; a
			// failed route never stops routing to the others.
			handler(ctx, &api.SendError{Tag: v.Tag, Payload: v.Payload})
		}
	}

	// All outputs close together: they end exactly when the one upstream
	// source is exhausted, each after draining its own backlog.
	for _, r := range routes {
		r.Close()
	}
}

// Discarded reports how many items were dropped because their tag matched no
// route.
func (d *Demultiplexer) Discarded() uint64 {
	return d.discarded.Load()
}
