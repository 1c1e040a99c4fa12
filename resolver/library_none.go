//go:build !((amd64 || arm64) && (windows || !cgo))

package resolver

import "unsafe"

func openLibrary(string) (unsafe.Pointer, error) { return nil, ErrUnsupported }

func lookupSymbol(unsafe.Pointer, string) uintptr { return 0 }

func closeLibrary(unsafe.Pointer) error { return nil }
