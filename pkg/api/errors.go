package api

import "fmt"

// SendError is the sole error kind the routing engines produce. It reports
// that an item could not be forwarded because the destination channel's
// consumer handle had already been closed, never a full buffer, since
// channels are unbounded.
//
// The undelivered payload is carried so a handler can journal or re-route it.
type SendError struct {
	// Tag identifies the route whose send failed.
	Tag Tag

	// Payload is the item that could not be delivered.
	Payload any
}

func (e *SendError) Error() string {
	return fmt.Sprintf("streammux: send on closed receiver: tag=%q payload=%v", e.Tag, e.Payload)
}
