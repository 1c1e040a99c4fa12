// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package fficall prepares goffi call interfaces for native signatures and
// performs calls through them.
//
// Preparing a call interface classifies every argument for the platform ABI,
// which is work worth doing once per distinct signature. OpenGL has a few
// thousand entry points but only a few hundred distinct shapes, so the
// [Cache] hands out one shared [types.CallInterface] per [abi.Signature].
//
// The package is built only where goffi can run: amd64 and arm64, with cgo
// disabled outside Windows.
package fficall
