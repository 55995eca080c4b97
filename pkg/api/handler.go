package api

import (
	"context"
	"log/slog"
)

// ErrorHandler is the policy invoked when a routing engine fails to deliver
// an item (see SendError). The task that hit the failure calls the handler
// inline and resumes its loop only after the handler returns; other tasks are
// unaffected.
//
// Implementations should be fast; heavy work should be done asynchronously so
// as not to delay routing.
type ErrorHandler func(ctx context.Context, err *SendError)

// Panicking returns an ErrorHandler that treats any send failure as fatal and
// panics with the SendError.
func Panicking() ErrorHandler {
	return func(ctx context.Context, err *SendError) {
		panic(err)
	}
}

// Ignoring returns an ErrorHandler that silently swallows send failures.
// The undelivered item is dropped and routing continues.
func Ignoring() ErrorHandler {
	return func(ctx context.Context, err *SendError) {}
}

// NewLoggingHandler returns an ErrorHandler that records each send failure
// through the given slog.Logger and continues. If logger is nil,
// slog.Default() is used.
func NewLoggingHandler(logger *slog.Logger) ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, err *SendError) {
		logger.ErrorContext(ctx, "send_failure",
			slog.String("tag", string(err.Tag)),
			slog.Any("payload", err.Payload),
		)
	}
}

// NewCompositeHandler returns an ErrorHandler that forwards each send failure
// to every non-nil handler in hs, in order. With zero usable handlers it
// behaves like Ignoring.
func NewCompositeHandler(hs ...ErrorHandler) ErrorHandler {
	filtered := make([]ErrorHandler, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return func(ctx context.Context, err *SendError) {
		for _, h := range filtered {
			h(ctx, err)
		}
	}
}
