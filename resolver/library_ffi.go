//go:build (amd64 || arm64) && (windows || !cgo)

package resolver

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

func openLibrary(name string) (unsafe.Pointer, error) {
	return ffi.LoadLibrary(name)
}

func lookupSymbol(h unsafe.Pointer, name string) uintptr {
	p, err := ffi.GetSymbol(h, name)
	if err != nil {
		return 0
	}
	return uintptr(p)
}

func closeLibrary(h unsafe.Pointer) error {
	return ffi.FreeLibrary(h)
}
