// Package api defines the core types of the streammux library: tagged-union
// values, send failures, and the pluggable error-handler policies invoked when
// a routed item can no longer be delivered.
//
// Most users should import the root streammux package, which re-exports
// everything here alongside the demultiplexer and multiplexer constructors.
package api
