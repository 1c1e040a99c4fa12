package glbindtest

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gogpu/glbind"
)

func TestNativeExportsCatalogue(t *testing.T) {
	n := New()
	for _, spec := range glbind.Catalog() {
		if n.Addr(spec.Name) == 0 {
			t.Fatalf("%s not exported", spec.Name)
		}
	}
	n.Missing("glClear")
	if n.Resolver()("glClear") != 0 {
		t.Error("missing name resolved")
	}
	if n.Resolutions("glClear") != 1 {
		t.Errorf("Resolutions = %d", n.Resolutions("glClear"))
	}
	n.Handle("glClear", func(*Call) {})
	if n.Addr("glClear") == 0 {
		t.Error("Handle did not re-export a missing name")
	}
}

func TestAdapterChecksShape(t *testing.T) {
	n := New()
	spec, _ := glbind.FnClear.Spec()
	fn, err := n.Adapter().Adapt(spec, n.Addr("glClear"))
	if err != nil {
		t.Fatal(err)
	}
	mask := uint32(1)
	if err := fn(nil, nil); !errors.Is(err, ErrArgCount) {
		t.Errorf("no args: %v", err)
	}
	var ret uint32
	if err := fn(unsafe.Pointer(&ret), []unsafe.Pointer{unsafe.Pointer(&mask)}); !errors.Is(err, ErrReturnShape) {
		t.Errorf("void with return storage: %v", err)
	}
	if err := fn(nil, []unsafe.Pointer{unsafe.Pointer(&mask)}); err != nil {
		t.Errorf("well-formed call: %v", err)
	}
	if n.Calls("glClear") != 1 {
		t.Errorf("Calls = %d, want 1", n.Calls("glClear"))
	}
	if _, err := n.Adapter().Adapt(spec, 0xdead); !errors.Is(err, ErrUnknownAddress) {
		t.Errorf("unknown address: %v", err)
	}
}

func TestWriteText(t *testing.T) {
	buf := make([]byte, 6)
	var length int32
	WriteText("hello world", int32(len(buf)), unsafe.Pointer(&length), unsafe.Pointer(&buf[0]))
	if length != 5 || string(buf[:5]) != "hello" || buf[5] != 0 {
		t.Errorf("WriteText wrote %q (length %d)", buf, length)
	}
	WriteText("hi", 0, unsafe.Pointer(&length), unsafe.Pointer(&buf[0]))
	if length != 0 {
		t.Errorf("bufSize 0 length = %d", length)
	}
}
