package streammux

import (
	"context"
	"fmt"

	"github.com/petrijr/streammux/internal/channel"
	"github.com/petrijr/streammux/internal/engine"
	"github.com/petrijr/streammux/pkg/api"
)

// Route is a demultiplexer output binding. Outlets are the only
// implementation; the interface exists so Demux can take a mixed list of
// differently-typed outlets.
type Route interface {
	engineRoute() engine.Route
}

// Outlet couples a variant tag with a fresh typed channel. The engine owns
// the producer side; the caller consumes the receiver side through Recv and
// may abandon it with Close.
type Outlet[T any] struct {
	tag  Tag
	send *channel.Sender[T]
	recv *channel.Receiver[T]
}

// Ensure Outlet implements Route.
var _ Route = (*Outlet[int])(nil)

// NewOutlet allocates a channel pair for the given variant tag. Payloads
// routed to this outlet must be of type T; a mismatch is a programming error
// at the binding site and panics.
func NewOutlet[T any](tag Tag) *Outlet[T] {
	s, r := channel.New[T]()
	return &Outlet[T]{tag: tag, send: s, recv: r}
}

// Tag returns the variant tag this outlet is bound to.
func (o *Outlet[T]) Tag() Tag {
	return o.tag
}

// Recv returns the next item routed to this outlet, blocking until one is
// available. It returns ErrEndOfStream once the demultiplexer's source is
// exhausted and the outlet's backlog is drained.
func (o *Outlet[T]) Recv(ctx context.Context) (T, error) {
	return o.recv.Recv(ctx)
}

// Close drops the consumer handle. Subsequent items routed to this outlet
// fail to send and are passed to the demultiplexer's error handler.
func (o *Outlet[T]) Close() {
	o.recv.Close()
}

// Len returns the number of items currently buffered in this outlet.
func (o *Outlet[T]) Len() int {
	return o.recv.Len()
}

func (o *Outlet[T]) engineRoute() engine.Route {
	return outletRoute[T]{o: o}
}

// outletRoute is the engine-facing, type-erased view of an Outlet.
type outletRoute[T any] struct {
	o *Outlet[T]
}

func (r outletRoute[T]) Tag() api.Tag {
	return r.o.tag
}

func (r outletRoute[T]) Send(payload any) error {
	v, ok := payload.(T)
	if !ok {
		panic(fmt.Sprintf("streammux: tag %q: payload of type %T does not match outlet type %T", r.o.tag, payload, v))
	}
	return r.o.send.Send(v)
}

func (r outletRoute[T]) Close() {
	r.o.send.Close()
}

// Demux starts a demultiplexer: one background goroutine drains src and
// forwards each value's payload to the outlet bound to its tag. Values whose
// tag matches no outlet are silently discarded. Outlet tags must be distinct
// and non-empty, or Demux panics.
//
// The outlets are live immediately; Demux returns before any item has been
// read. When src ends, all outlets end together, each after draining its own
// backlog.
//
// Typical usage:
//
//	a := streammux.NewOutlet[int]("A")
//	b := streammux.NewOutlet[string]("B")
//	streammux.Demux(in, streammux.NewLoggingHandler(nil), a, b)
func Demux(src Source[Value], handler ErrorHandler, routes ...Route) *Demultiplexer {
	return DemuxWithDiscard(src, handler, nil, routes...)
}

// DemuxWithDiscard is Demux with an observation hook for discarded values:
// onDiscard is invoked, on the routing goroutine, for every value whose tag
// matches no outlet. The discard itself still happens: the hook observes,
// it does not re-route.
func DemuxWithDiscard(src Source[Value], handler ErrorHandler, onDiscard func(Value), routes ...Route) *Demultiplexer {
	ers := make([]engine.Route, len(routes))
	for i, r := range routes {
		ers[i] = r.engineRoute()
	}
	return engine.Demux(src, handler, onDiscard, ers)
}
