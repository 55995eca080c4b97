// Package streammux routes streams of tagged-union values: it splits one
// stream into per-variant typed streams (demultiplexing) and merges several
// typed streams back into one tagged-union stream (multiplexing).
//
// It targets producer/consumer pipelines where a single upstream source
// carries several logically distinct event kinds that must be handled by
// independent, kind-specific consumers, and, conversely, where independent
// producers must be combined into one sink. It runs fully in-process on
// goroutines and unbounded channels, with no external infrastructure.
//
// # Core Concepts
//
// The streammux programming model is intentionally small:
//
//  1. Value
//  2. Outlet / Demux
//  3. Inlet / Mux
//  4. ErrorHandler
//  5. Dispatch
//
// # Value
//
// A Value is a tagged-union instance: a Tag naming the variant plus the
// payload that variant wraps. Variant identity is fixed at the call site that
// builds the pipeline; it is never discovered from arbitrary data at runtime.
//
// # Demultiplexing
//
// An Outlet couples a variant tag with a fresh typed channel. Demux consumes
// one Source of Values on a single background goroutine and forwards each
// payload to the outlet bound to its tag:
//
//	a := streammux.NewOutlet[int]("A")
//	b := streammux.NewOutlet[float64]("B")
//	c := streammux.NewOutlet[string]("C")
//
//	streammux.Demux(in, streammux.Panicking(), a, b, c)
//
//	v, err := a.Recv(ctx) // 123, then 811, then ErrEndOfStream
//
// Items bound to the same outlet preserve their source order. Items whose tag
// matches no outlet are silently discarded; see DemuxWithDiscard and
// (*Demultiplexer).Discarded to observe discards. When the source ends, every
// outlet ends too, all together, each after draining its own backlog.
//
// # Multiplexing
//
// An Inlet couples a typed Source with the tag its items are wrapped under.
// Mux runs one goroutine per inlet and merges everything into a single Value
// stream that stays open as long as at least one input is active:
//
//	out := streammux.Mux(streammux.Ignoring(),
//	    streammux.NewInlet[int]("A", streammux.FromSlice(123, 811)),
//	    streammux.NewInlet[string]("C", streammux.FromSlice("Hello", "ABC")),
//	)
//
// Items from one inlet preserve their order; interleaving across inlets is
// unspecified. The mux output is itself a Source[Value], so pipelines
// compose: a mux can feed a demux directly.
//
// # Error Handling
//
// Sending into an outlet or the mux output fails only when its consumer
// handle has already been closed; buffers are unbounded, so a send never
// fails for lack of space. Each failure is routed through the engine's
// ErrorHandler, inline on the task that hit it, and routing then continues.
// Built-in policies: Panicking, Ignoring, NewLoggingHandler (log/slog),
// NewCompositeHandler, and NewDeadLetterHandler, which journals undelivered
// items in a DeadLetterStore (in-memory or SQLite) for later replay.
//
// # Dispatch
//
// Dispatch is the convenience combinator for the consumer side: it runs one
// consumer function per stream concurrently and waits for all of them:
//
//	err := streammux.Dispatch(ctx,
//	    streammux.Each(a, handleA),
//	    streammux.Each(b, handleB),
//	    streammux.Each(c, handleC),
//	)
//
// # Summary
//
// streammux aims to feel like Go: engines are plain constructors that start
// their goroutines eagerly, completion is observed by streams reaching end of
// stream, and every instance is self-contained and independently testable
// with synthetic finite sources.
//
// For examples, see the /examples directory or the project README.
package streammux
