//go:build (amd64 || arm64) && (windows || !cgo)

package glbind

import (
	"unsafe"

	"github.com/gogpu/glbind/internal/fficall"
)

// ffiAdapter calls through goffi. Entries with equal signatures share one
// prepared call interface from the process-wide cache.
type ffiAdapter struct {
	cache *fficall.Cache
}

func (a ffiAdapter) Adapt(spec *EntryPointSpec, addr uintptr) (Func, error) {
	cif, err := a.cache.Get(spec.Signature)
	if err != nil {
		return nil, err
	}
	return func(ret unsafe.Pointer, args []unsafe.Pointer) error {
		return fficall.Call(cif, addr, ret, args)
	}, nil
}

// DefaultAdapter returns the goffi-backed adapter.
func DefaultAdapter() (Adapter, error) {
	return ffiAdapter{cache: fficall.Shared()}, nil
}
