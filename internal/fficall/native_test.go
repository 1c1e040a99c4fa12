// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build (amd64 || arm64) && (windows || !cgo)

package fficall_test

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/gogpu/glbind/abi"
	"github.com/gogpu/glbind/internal/fficall"
	"github.com/gogpu/glbind/resolver"
)

func openLibc(t *testing.T) *resolver.Lib {
	t.Helper()
	var names []string
	switch runtime.GOOS {
	case "windows":
		names = []string{"msvcrt.dll"}
	case "darwin":
		names = []string{"/usr/lib/libSystem.B.dylib"}
	default:
		names = []string{"libc.so.6", "libc.so"}
	}
	lib, err := resolver.Library(names...)
	if err != nil {
		t.Skipf("libc not loadable: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func TestCallLibc(t *testing.T) {
	lib := openLibc(t)

	t.Run("abs", func(t *testing.T) {
		fn := lib.Resolve("abs")
		if fn == 0 {
			t.Fatal("abs not exported")
		}
		cif, err := fficall.Prepare(abi.Sig(abi.Int, abi.Int))
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range []int32{-7, 0, 42} {
			var ret int32
			arg := v
			if err := fficall.Call(cif, fn, unsafe.Pointer(&ret), []unsafe.Pointer{unsafe.Pointer(&arg)}); err != nil {
				t.Fatal(err)
			}
			want := v
			if want < 0 {
				want = -want
			}
			if ret != want {
				t.Errorf("abs(%d) = %d, want %d", v, ret, want)
			}
		}
	})

	t.Run("strlen", func(t *testing.T) {
		fn := lib.Resolve("strlen")
		if fn == 0 {
			t.Fatal("strlen not exported")
		}
		cif, err := fficall.Prepare(abi.Sig(abi.Uint64, abi.Pointer))
		if err != nil {
			t.Fatal(err)
		}
		s := []byte("hello\x00")
		p := unsafe.Pointer(&s[0])
		var ret uint64
		if err := fficall.Call(cif, fn, unsafe.Pointer(&ret), []unsafe.Pointer{unsafe.Pointer(&p)}); err != nil {
			t.Fatal(err)
		}
		if ret != 5 {
			t.Errorf("strlen(\"hello\") = %d, want 5", ret)
		}
	})
}

func TestSharedCacheCallsLibc(t *testing.T) {
	lib := openLibc(t)
	fn := lib.Resolve("abs")
	if fn == 0 {
		t.Fatal("abs not exported")
	}
	sig := abi.Sig(abi.Int, abi.Int)
	c := fficall.NewCache(4)
	first, err := c.Get(sig)
	if err != nil {
		t.Fatal(err)
	}
	again, err := c.Get(abi.Sig(abi.Int, abi.Int))
	if err != nil || again != first {
		t.Fatalf("second Get = %p, %v; want the cached interface", again, err)
	}

	arg, ret := int32(-3), int32(0)
	if err := fficall.Call(again, fn, unsafe.Pointer(&ret), []unsafe.Pointer{unsafe.Pointer(&arg)}); err != nil {
		t.Fatal(err)
	}
	if ret != 3 {
		t.Errorf("abs(-3) through cached interface = %d", ret)
	}
}
