// Package marshal holds the call-scoped conversion machinery of the
// marshaling surface: pinning of Go memory handed to native code, pooled
// scratch buffers, pointer arrays and text encoding.
//
// A [Scope] lives for exactly one native call. Everything it pins is
// unpinned, and every scratch buffer it took goes back to its [Pool], when
// [Scope.Release] runs.
package marshal
