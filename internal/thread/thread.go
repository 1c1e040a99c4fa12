// Package thread identifies the calling OS thread.
package thread

// ID returns the identifier of the calling OS thread, or 0 when the
// platform cannot report one. Callers should hold runtime.LockOSThread for
// the value to stay meaningful.
func ID() uint64 { return current() }

// Supported reports whether ID returns real thread identifiers.
func Supported() bool { return supported }
