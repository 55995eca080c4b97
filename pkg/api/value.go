package api

// Tag names one variant of a tagged union. The set of tags a pipeline uses is
// fixed at the call site that constructs the engines; tags are never derived
// from the data itself.
type Tag string

// Value is a tagged-union value: exactly one variant tag plus the payload that
// variant wraps. Payloads are well-typed by construction; the routing engines
// never inspect them beyond unwrapping.
type Value struct {
	Tag     Tag
	Payload any
}

// V wraps a payload under the given tag.
//
// Typical usage:
//
//	in := streammux.FromSlice(
//	    api.V("A", 123),
//	    api.V("B", 24.241),
//	    api.V("C", "Hello"),
//	)
func V(tag Tag, payload any) Value {
	return Value{Tag: tag, Payload: payload}
}
