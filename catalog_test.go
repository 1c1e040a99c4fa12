package glbind

import (
	"strings"
	"testing"

	"github.com/gogpu/glbind/abi"
)

func TestCatalogIDsMatchPosition(t *testing.T) {
	for i := range catalog {
		if catalog[i].ID != EntryPoint(i) {
			t.Errorf("catalog[%d] (%s) has ID %d", i, catalog[i].Name, catalog[i].ID)
		}
	}
}

func TestCatalogEntriesWellFormed(t *testing.T) {
	seen := make(map[string]bool, numEntryPoints)
	for i := range catalog {
		s := &catalog[i]
		if !strings.HasPrefix(s.Name, "gl") {
			t.Errorf("entry %d: name %q lacks gl prefix", i, s.Name)
		}
		if seen[s.Name] {
			t.Errorf("duplicate name %q", s.Name)
		}
		seen[s.Name] = true
		if !s.Signature.Valid() {
			t.Errorf("%s: invalid signature %v", s.Name, s.Signature)
		}
		if !s.Since.Supported() {
			t.Errorf("%s: since %v outside supported range", s.Name, s.Since)
		}
		if s.Surfaces == 0 || s.Surfaces&^SurfaceBoth != 0 {
			t.Errorf("%s: bad surface mask %d", s.Name, s.Surfaces)
		}
	}
}

func TestCatalogSignatures(t *testing.T) {
	tests := []struct {
		ep   EntryPoint
		want abi.Signature
	}{
		{FnClear, abi.Sig(abi.Void, abi.Bitfield)},
		{FnGetError, abi.Sig(abi.Enum)},
		{FnBindVertexArray, abi.Sig(abi.Void, abi.Uint)},
		{FnBufferData, abi.Sig(abi.Void, abi.Enum, abi.Sizeiptr, abi.Pointer, abi.Enum)},
		{FnGetString, abi.Sig(abi.Pointer, abi.Enum)},
		{FnFenceSync, abi.Sig(abi.Sync, abi.Enum, abi.Bitfield)},
		{FnClientWaitSync, abi.Sig(abi.Enum, abi.Sync, abi.Bitfield, abi.Uint64)},
		{FnMapBufferRange, abi.Sig(abi.Pointer, abi.Enum, abi.Intptr, abi.Sizeiptr, abi.Bitfield)},
	}
	for _, tt := range tests {
		s, ok := tt.ep.Spec()
		if !ok {
			t.Fatalf("%d has no spec", tt.ep)
		}
		if !s.Signature.Equal(tt.want) {
			t.Errorf("%s signature = %v, want %v", s.Name, s.Signature, tt.want)
		}
	}
}

func TestLookupEntryPoint(t *testing.T) {
	ep, ok := LookupEntryPoint("glBindVertexArray")
	if !ok || ep != FnBindVertexArray {
		t.Errorf("LookupEntryPoint(glBindVertexArray) = %v, %v", ep, ok)
	}
	if _, ok := LookupEntryPoint("glNotAFunction"); ok {
		t.Error("LookupEntryPoint found an unknown name")
	}
	if got := FnGetIntegeriV.Name(); got != "glGetIntegeri_v" {
		t.Errorf("FnGetIntegeriV.Name() = %q", got)
	}
	if got := EntryPoint(numEntryPoints + 3).Name(); !strings.HasPrefix(got, "EntryPoint(") {
		t.Errorf("out-of-range Name() = %q", got)
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	c := Catalog()
	if len(c) != NumEntryPoints() {
		t.Fatalf("len(Catalog()) = %d, want %d", len(c), NumEntryPoints())
	}
	c[FnClear].Name = "mutated"
	c[FnBufferData].Signature.Args[0] = abi.Double
	if catalog[FnClear].Name != "glClear" {
		t.Error("Catalog() shares entry storage")
	}
	if catalog[FnBufferData].Signature.Args[0] != abi.Enum {
		t.Error("Catalog() shares signature storage")
	}
}

func TestAvailable(t *testing.T) {
	core33 := Descriptor{Version33, ProfileCore, SurfaceBoth}
	core45raw := Descriptor{Version45, ProfileCore, SurfaceRawOnly}
	core45gl := Descriptor{Version45, ProfileCore, SurfaceMarshalingOnly}
	compat45 := Descriptor{Version45, ProfileCompat, SurfaceBoth}

	tests := []struct {
		ep   EntryPoint
		d    Descriptor
		want bool
	}{
		{FnClear, core33, true},
		{FnBindVertexArray, core33, true},
		{FnDispatchCompute, core33, false},
		{FnDispatchCompute, core45raw, true},
		{FnSpecializeShader, core45raw, false},
		{FnMapBufferRange, core45raw, true},
		{FnMapBufferRange, core45gl, false},
		{FnBegin, core45raw, false},
		{FnBegin, compat45, true},
		{FnVertexPointer, compat45, true},
		{FnVertexPointer, Descriptor{Version45, ProfileCompat, SurfaceMarshalingOnly}, false},
	}
	for _, tt := range tests {
		if got := catalog[tt.ep].Available(tt.d); got != tt.want {
			t.Errorf("%s.Available(%v) = %v, want %v", tt.ep, tt.d, got, tt.want)
		}
	}
}
