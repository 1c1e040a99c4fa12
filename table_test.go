package glbind_test

import (
	"bytes"
	"errors"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"testing"
	"unsafe"

	"github.com/gogpu/glbind"
	"github.com/gogpu/glbind/glbindtest"
	"github.com/gogpu/glbind/internal/thread"
)

func TestBindResolvesEverySelectedName(t *testing.T) {
	nat := glbindtest.New()
	tbl, _ := bindFake(t, core45, nat)

	names, _ := glbind.SelectNames(core45)
	if tbl.Len() != len(names) {
		t.Fatalf("Len() = %d, want %d", tbl.Len(), len(names))
	}
	for _, n := range names {
		if got := nat.Resolutions(n); got != 1 {
			t.Errorf("%s resolved %d times, want 1", n, got)
		}
	}
	if nat.Resolutions("glSpecializeShader") != 0 {
		t.Error("4.6 entry resolved for a 4.5 descriptor")
	}
	if nat.Resolutions("glBegin") != 0 {
		t.Error("compat entry resolved for a core descriptor")
	}
	if !tbl.Ready() {
		t.Error("table not ready after Bind")
	}
	if tbl.Descriptor() != core45 {
		t.Errorf("Descriptor() = %v", tbl.Descriptor())
	}
}

func TestBindBindingsMatchResolver(t *testing.T) {
	nat := glbindtest.New()
	tbl, _ := bindFake(t, core45, nat)

	b, ok := tbl.Binding(glbind.FnBindVertexArray)
	if !ok {
		t.Fatal("glBindVertexArray not bound")
	}
	if b.Addr != nat.Addr("glBindVertexArray") {
		t.Errorf("Addr = %#x, want %#x", b.Addr, nat.Addr("glBindVertexArray"))
	}
	if b.Spec.ID != glbind.FnBindVertexArray {
		t.Errorf("Spec.ID = %v", b.Spec.ID)
	}
	all := tbl.Bindings()
	for i := 1; i < len(all); i++ {
		if all[i-1].Spec.ID >= all[i].Spec.ID {
			t.Fatalf("Bindings() out of catalogue order at %d", i)
		}
	}
	if tbl.Has(glbind.FnSpecializeShader) {
		t.Error("Has(glSpecializeShader) = true for 4.5")
	}
}

func TestBindUnresolvedListsAllMissing(t *testing.T) {
	nat := glbindtest.New()
	nat.Missing("glBindVertexArray", "glDispatchCompute", "glSpecializeShader")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	tbl, err := glbind.Bind(core45, nat.Resolver(), glbind.WithAdapter(nat.Adapter()), glbind.WithLogger(logger))
	if tbl != nil {
		t.Error("Bind returned a table on failure")
	}
	if !errors.Is(err, glbind.ErrUnresolved) {
		t.Fatalf("error = %v, want ErrUnresolved", err)
	}
	var ue *glbind.UnresolvedError
	if !errors.As(err, &ue) {
		t.Fatalf("error %T is not *UnresolvedError", err)
	}
	// glSpecializeShader is not selected for 4.5, so it is not reported.
	want := []string{"glBindVertexArray", "glDispatchCompute"}
	if !slices.Equal(ue.Names, want) {
		t.Errorf("Names = %v, want %v", ue.Names, want)
	}
	if ue.Descriptor != core45 {
		t.Errorf("Descriptor = %v", ue.Descriptor)
	}
	if !strings.Contains(buf.String(), "glBindVertexArray") {
		t.Errorf("warning log missing names: %s", buf.String())
	}
	if nat.Resolutions("glClear") != 1 {
		t.Error("resolution stopped at the first missing name")
	}
}

func TestBindRejectsInvalidDescriptorBeforeResolving(t *testing.T) {
	nat := glbindtest.New()
	_, err := glbind.Bind(glbind.Descriptor{Version: glbind.Version45, Profile: glbind.ProfileCompat},
		nat.Resolver(), glbind.WithAdapter(nat.Adapter()))
	if !errors.Is(err, glbind.ErrUnsupportedProfile) {
		t.Fatalf("error = %v, want ErrUnsupportedProfile", err)
	}
	if nat.Resolutions("glClear") != 0 {
		t.Error("resolver consulted for an invalid descriptor")
	}
}

func TestBindReportsMissingNamesBeforeAdapting(t *testing.T) {
	nat := glbindtest.New()
	nat.Missing("glClear")
	// No WithAdapter: the default adapter must not be needed to report
	// unresolved names, even on targets that have none.
	_, err := glbind.Bind(core45, nat.Resolver())
	var ue *glbind.UnresolvedError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %v, want *UnresolvedError", err)
	}
	if !slices.Equal(ue.Names, []string{"glClear"}) {
		t.Errorf("Names = %v", ue.Names)
	}
}

func TestBindNilResolver(t *testing.T) {
	nat := glbindtest.New()
	if _, err := glbind.Bind(core45, nil, glbind.WithAdapter(nat.Adapter())); err == nil {
		t.Fatal("Bind with nil resolver succeeded")
	}
}

func TestBindAdaptError(t *testing.T) {
	nat := glbindtest.New()
	boom := errors.New("boom")
	adapter := glbind.AdapterFunc(func(spec *glbind.EntryPointSpec, addr uintptr) (glbind.Func, error) {
		if spec.Name == "glClear" {
			return nil, boom
		}
		return nat.Adapter().Adapt(spec, addr)
	})
	_, err := glbind.Bind(core45, nat.Resolver(), glbind.WithAdapter(adapter))
	var ae *glbind.AdaptError
	if !errors.As(err, &ae) || ae.Name != "glClear" || !errors.Is(err, boom) {
		t.Fatalf("error = %v, want AdaptError for glClear wrapping boom", err)
	}
}

func TestNotBound(t *testing.T) {
	var nilTable *glbind.Table
	var zero glbind.Table

	for name, tbl := range map[string]*glbind.Table{"nil": nilTable, "zero": &zero} {
		t.Run(name, func(t *testing.T) {
			if tbl.Ready() {
				t.Error("Ready() = true")
			}
			if tbl.Len() != 0 || tbl.Bindings() != nil {
				t.Error("unbound table reports bindings")
			}
			if _, err := tbl.Raw(); !errors.Is(err, glbind.ErrNotBound) {
				t.Errorf("Raw() error = %v", err)
			}
			if _, err := tbl.GL(); !errors.Is(err, glbind.ErrNotBound) {
				t.Errorf("GL() error = %v", err)
			}
		})
	}

	var raw *glbind.Raw
	if err := raw.Clear(glbind.COLOR_BUFFER_BIT); !errors.Is(err, glbind.ErrNotBound) {
		t.Errorf("nil Raw.Clear error = %v", err)
	}
	var gl *glbind.GL
	if err := gl.Clear(glbind.COLOR_BUFFER_BIT); !errors.Is(err, glbind.ErrNotBound) {
		t.Errorf("nil GL.Clear error = %v", err)
	}
	if err := gl.BufferData(glbind.ARRAY_BUFFER, []byte{1}, glbind.STATIC_DRAW); !errors.Is(err, glbind.ErrNotBound) {
		t.Errorf("nil GL.BufferData error = %v", err)
	}
	if _, err := gl.GetShaderInfoLog(1, 0); !errors.Is(err, glbind.ErrNotBound) {
		t.Errorf("nil GL.GetShaderInfoLog error = %v", err)
	}
}

func TestUnavailableEntry(t *testing.T) {
	nat := glbindtest.New()
	d := glbind.MustDescriptor(glbind.WithVersion(glbind.Version33), glbind.WithProfile(glbind.ProfileCore))
	tbl, _ := bindFake(t, d, nat)
	gl, err := tbl.GL()
	if err != nil {
		t.Fatal(err)
	}

	err = gl.DispatchCompute(1, 1, 1)
	if !errors.Is(err, glbind.ErrUnavailable) {
		t.Fatalf("DispatchCompute on 3.3 error = %v, want ErrUnavailable", err)
	}
	var ue *glbind.UnavailableError
	if !errors.As(err, &ue) || ue.Entry != glbind.FnDispatchCompute {
		t.Errorf("error = %#v", err)
	}
	if nat.Calls("glDispatchCompute") != 0 {
		t.Error("unavailable entry reached the native library")
	}
}

func TestSurfaceGating(t *testing.T) {
	tests := []struct {
		surface glbind.SurfaceMode
		raw, gl bool
	}{
		{glbind.SurfaceBoth, true, true},
		{glbind.SurfaceRawOnly, true, false},
		{glbind.SurfaceMarshalingOnly, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.surface.String(), func(t *testing.T) {
			d := glbind.MustDescriptor(glbind.WithVersion(glbind.Version45),
				glbind.WithProfile(glbind.ProfileCore), glbind.WithSurface(tt.surface))
			tbl, _ := bindFake(t, d, glbindtest.New())

			_, err := tbl.Raw()
			if (err == nil) != tt.raw {
				t.Errorf("Raw() error = %v, want available=%v", err, tt.raw)
			}
			if err != nil && !errors.Is(err, glbind.ErrSurfaceDisabled) {
				t.Errorf("Raw() error = %v, want ErrSurfaceDisabled", err)
			}
			_, err = tbl.GL()
			if (err == nil) != tt.gl {
				t.Errorf("GL() error = %v, want available=%v", err, tt.gl)
			}
			if err != nil && !errors.Is(err, glbind.ErrSurfaceDisabled) {
				t.Errorf("GL() error = %v, want ErrSurfaceDisabled", err)
			}
		})
	}
}

func TestRawCallsThrough(t *testing.T) {
	nat := glbindtest.New()
	var cleared uint32
	nat.Handle("glClear", func(c *glbindtest.Call) { cleared = c.Uint32(0) })
	nat.Handle("glGetError", func(c *glbindtest.Call) { c.ReturnUint32(glbind.INVALID_ENUM) })
	var viewport [4]int32
	nat.Handle("glViewport", func(c *glbindtest.Call) {
		viewport = [4]int32{c.Int32(0), c.Int32(1), c.Int32(2), c.Int32(3)}
	})
	var mapped [16]byte
	nat.Handle("glMapBufferRange", func(c *glbindtest.Call) {
		if c.Int64(1) != 4 || c.Int64(2) != 8 {
			t.Errorf("MapBufferRange offset/length = %d/%d", c.Int64(1), c.Int64(2))
		}
		c.ReturnPtr(unsafe.Pointer(&mapped[0]))
	})

	tbl, _ := bindFake(t, core45, nat)
	raw, err := tbl.Raw()
	if err != nil {
		t.Fatal(err)
	}

	if err := raw.Clear(glbind.COLOR_BUFFER_BIT | glbind.DEPTH_BUFFER_BIT); err != nil {
		t.Fatal(err)
	}
	if cleared != glbind.COLOR_BUFFER_BIT|glbind.DEPTH_BUFFER_BIT {
		t.Errorf("glClear mask = %#x", cleared)
	}
	if code, err := raw.GetError(); err != nil || code != glbind.INVALID_ENUM {
		t.Errorf("GetError = %#x, %v", code, err)
	}
	if err := raw.Viewport(1, 2, 640, 480); err != nil {
		t.Fatal(err)
	}
	if viewport != [4]int32{1, 2, 640, 480} {
		t.Errorf("viewport = %v", viewport)
	}
	p, err := raw.MapBufferRange(glbind.ARRAY_BUFFER, 4, 8, glbind.MAP_WRITE_BIT)
	if err != nil {
		t.Fatal(err)
	}
	if p != unsafe.Pointer(&mapped[0]) {
		t.Error("MapBufferRange returned a different address")
	}

	var code uint32
	if err := raw.Call(glbind.FnGetError, unsafe.Pointer(&code)); err != nil || code != glbind.INVALID_ENUM {
		t.Errorf("Call(FnGetError) = %#x, %v", code, err)
	}
}

func TestRawPassesPointersUnchanged(t *testing.T) {
	nat := glbindtest.New()
	var got unsafe.Pointer
	nat.Handle("glBufferData", func(c *glbindtest.Call) { got = c.Ptr(2) })

	tbl, _ := bindFake(t, core45, nat)
	raw, _ := tbl.Raw()

	var pinner runtime.Pinner
	data := make([]byte, 32)
	pinner.Pin(&data[0])
	defer pinner.Unpin()

	if err := raw.BufferData(glbind.ARRAY_BUFFER, len(data), unsafe.Pointer(&data[0]), glbind.STATIC_DRAW); err != nil {
		t.Fatal(err)
	}
	if got != unsafe.Pointer(&data[0]) {
		t.Error("raw BufferData did not pass the caller's pointer through")
	}
}

func TestBindLogsAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	bindFake(t, core45, glbindtest.New(), glbind.WithLogger(logger))

	out := buf.String()
	if !strings.Contains(out, "table bound") || !strings.Contains(out, "version=4.5") {
		t.Errorf("missing bind log: %s", out)
	}
	if strings.Contains(out, "level=DEBUG") {
		t.Error("debug records emitted at info level")
	}
}

func TestThreadCheck(t *testing.T) {
	if !thread.Supported() {
		t.Skip("thread ids unavailable on this platform")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	nat := glbindtest.New()
	tbl, _ := bindFake(t, core45, nat, glbind.WithThreadCheck())
	gl, _ := tbl.GL()

	if err := gl.Flush(); err != nil {
		t.Fatalf("Flush on the binding thread: %v", err)
	}

	done := make(chan error)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		done <- gl.Flush()
	}()
	if err := <-done; !errors.Is(err, glbind.ErrWrongThread) {
		t.Fatalf("Flush from another thread error = %v, want ErrWrongThread", err)
	}
	if nat.Calls("glFlush") != 1 {
		t.Errorf("glFlush called %d times, want 1", nat.Calls("glFlush"))
	}
}
