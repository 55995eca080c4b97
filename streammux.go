package streammux

import (
	"github.com/petrijr/streammux/internal/channel"
	"github.com/petrijr/streammux/internal/engine"
	"github.com/petrijr/streammux/pkg/api"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	Tag          = api.Tag
	Value        = api.Value
	SendError    = api.SendError
	ErrorHandler = api.ErrorHandler

	// Demultiplexer is the handle returned by Demux. It exposes only the
	// discard counter; completion is observed through the outlets.
	Demultiplexer = engine.Demultiplexer
)

// Sender and Receiver are the two ends of an unbounded channel as created by
// NewChannel. Most pipelines never touch them directly; Outlet and Mux own
// their channels. They are useful for feeding a demultiplexer by hand
// and for test doubles.
type (
	Sender[T any]   = channel.Sender[T]
	Receiver[T any] = channel.Receiver[T]
)

// Re-export common constructors and error-handler policies.

var (
	V                   = api.V
	Panicking           = api.Panicking
	Ignoring            = api.Ignoring
	NewLoggingHandler   = api.NewLoggingHandler
	NewCompositeHandler = api.NewCompositeHandler
)

// Re-export the channel sentinel errors.

var (
	ErrEndOfStream    = channel.ErrEndOfStream
	ErrReceiverClosed = channel.ErrReceiverClosed
)

// NewChannel creates an unbounded multi-producer/single-consumer channel and
// returns its initial sender handle and its receiver handle.
func NewChannel[T any]() (*Sender[T], *Receiver[T]) {
	return channel.New[T]()
}
