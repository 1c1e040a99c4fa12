// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build (amd64 || arm64) && (windows || !cgo)

package fficall

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"

	"github.com/gogpu/glbind/abi"
)

// ErrInvalidSignature is returned when a signature contains an unknown kind
// or a void argument.
var ErrInvalidSignature = errors.New("fficall: invalid signature")

// Descriptor returns the goffi type descriptor for a native kind.
func Descriptor(k abi.Kind) *types.TypeDescriptor {
	switch k {
	case abi.Void:
		return types.VoidTypeDescriptor
	case abi.Boolean, abi.Ubyte:
		return types.UInt8TypeDescriptor
	case abi.Byte:
		return types.SInt8TypeDescriptor
	case abi.Short:
		return types.SInt16TypeDescriptor
	case abi.Ushort:
		return types.UInt16TypeDescriptor
	case abi.Enum, abi.Bitfield, abi.Uint:
		return types.UInt32TypeDescriptor
	case abi.Int, abi.Sizei:
		return types.SInt32TypeDescriptor
	case abi.Float:
		return types.FloatTypeDescriptor
	case abi.Double:
		return types.DoubleTypeDescriptor
	case abi.Int64, abi.Intptr, abi.Sizeiptr:
		return types.SInt64TypeDescriptor
	case abi.Uint64:
		return types.UInt64TypeDescriptor
	case abi.Pointer, abi.Sync:
		return types.PointerTypeDescriptor
	default:
		return nil
	}
}

// Prepare builds a call interface for sig using the platform's default
// calling convention.
func Prepare(sig abi.Signature) (*types.CallInterface, error) {
	if !sig.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSignature, sig)
	}
	args := make([]*types.TypeDescriptor, len(sig.Args))
	for i, k := range sig.Args {
		args[i] = Descriptor(k)
	}
	cif := &types.CallInterface{}
	if err := ffi.PrepareCallInterface(cif, types.DefaultCall, Descriptor(sig.Return), args); err != nil {
		return nil, fmt.Errorf("fficall: prepare %s: %w", sig, err)
	}
	return cif, nil
}

// Call invokes the native function at fn through cif.
//
// ret must point at storage at least as wide as the return kind (nil for
// void). args[i] points at the value of the i-th argument. All pointed-to
// memory must stay valid until Call returns.
func Call(cif *types.CallInterface, fn uintptr, ret unsafe.Pointer, args []unsafe.Pointer) error {
	//nolint:govet // fn is a native code address obtained from the resolver
	return ffi.CallFunction(cif, unsafe.Pointer(fn), ret, args)
}
