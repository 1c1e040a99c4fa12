package glbind

import "unsafe"

// Func is an adapted native callable.
//
// args[i] points at the value of the i-th argument in declaration order;
// ret points at storage for the return value, or is nil for void entries.
// All pointed-to memory must stay valid until the call returns.
type Func func(ret unsafe.Pointer, args []unsafe.Pointer) error

// Adapter turns a resolved address into a callable with the entry's
// signature.
type Adapter interface {
	Adapt(spec *EntryPointSpec, addr uintptr) (Func, error)
}

// AdapterFunc adapts an ordinary function to the Adapter interface.
type AdapterFunc func(spec *EntryPointSpec, addr uintptr) (Func, error)

// Adapt calls f(spec, addr).
func (f AdapterFunc) Adapt(spec *EntryPointSpec, addr uintptr) (Func, error) {
	return f(spec, addr)
}
