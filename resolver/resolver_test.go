package resolver

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/gogpu/glbind"
)

func TestStatic(t *testing.T) {
	m := map[string]uintptr{"glClear": 0x10}
	r := Static(m)
	m["glClear"] = 0x20
	if got := r("glClear"); got != 0x10 {
		t.Errorf("Static(glClear) = %#x, want 0x10 (map must be copied)", got)
	}
	if r("glFlush") != 0 {
		t.Error("unknown name resolved")
	}
}

func TestChainFirstNonZeroWins(t *testing.T) {
	var order []string
	mk := func(tag string, table map[string]uintptr) glbind.Resolver {
		return func(name string) uintptr {
			order = append(order, tag)
			return table[name]
		}
	}
	r := Chain(
		mk("a", map[string]uintptr{"glClear": 1}),
		nil,
		mk("b", map[string]uintptr{"glClear": 2, "glFlush": 3}),
	)
	tests := []struct {
		name  string
		want  uintptr
		order []string
	}{
		{"glClear", 1, []string{"a"}},
		{"glFlush", 3, []string{"a", "b"}},
		{"glFinish", 0, []string{"a", "b"}},
	}
	for _, tt := range tests {
		order = nil
		if got := r(tt.name); got != tt.want {
			t.Errorf("Chain(%s) = %d, want %d", tt.name, got, tt.want)
		}
		if !slices.Equal(order, tt.order) {
			t.Errorf("Chain(%s) asked %v, want %v", tt.name, order, tt.order)
		}
	}
	if Chain()("glClear") != 0 {
		t.Error("empty chain resolved a name")
	}
}

func TestCounting(t *testing.T) {
	c := Counting(Static(map[string]uintptr{"glClear": 1}))
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Resolve("glClear")
			c.Resolve("glFlush")
		}()
	}
	wg.Wait()

	if c.Count("glClear") != 4 || c.Count("glFlush") != 4 {
		t.Errorf("counts = %d/%d, want 4/4", c.Count("glClear"), c.Count("glFlush"))
	}
	if c.Total() != 8 {
		t.Errorf("Total = %d, want 8", c.Total())
	}
	if !slices.Equal(c.Names(), []string{"glClear", "glFlush"}) {
		t.Errorf("Names = %v", c.Names())
	}
	if !slices.Equal(c.Missing(), []string{"glFlush"}) {
		t.Errorf("Missing = %v", c.Missing())
	}
}

func TestCountingFeedsBind(t *testing.T) {
	d := glbind.MustDescriptor(glbind.WithVersion(glbind.Version33), glbind.WithProfile(glbind.ProfileCore))
	c := Counting(func(string) uintptr { return 0 })
	_, err := glbind.Bind(d, c.Resolve, glbind.WithAdapter(glbind.AdapterFunc(
		func(*glbind.EntryPointSpec, uintptr) (glbind.Func, error) { return nil, nil })))
	if !errors.Is(err, glbind.ErrUnresolved) {
		t.Fatalf("Bind error = %v", err)
	}
	names, _ := glbind.SelectNames(d)
	if c.Total() != len(names) {
		t.Errorf("resolver asked %d times, want %d (once per selected name)", c.Total(), len(names))
	}
}

func TestRegistryPriority(t *testing.T) {
	r := NewRegistry("egl", "wgl", "library")
	fail := func() (glbind.Resolver, error) { return nil, ErrUnsupported }
	ok := func(addr uintptr) Factory {
		return func() (glbind.Resolver, error) { return func(string) uintptr { return addr }, nil }
	}
	r.Register("zzz", ok(9))
	r.Register("library", ok(3))
	r.Register("egl", fail)

	if got := r.Available(); !slices.Equal(got, []string{"egl", "library", "zzz"}) {
		t.Errorf("Available = %v", got)
	}
	res, name, err := r.Best()
	if err != nil {
		t.Fatal(err)
	}
	if name != "library" || res("glClear") != 3 {
		t.Errorf("Best picked %q", name)
	}

	r.Unregister("library")
	if _, name, _ := r.Best(); name != "zzz" {
		t.Errorf("Best after Unregister picked %q, want zzz", name)
	}
	if !r.Has("egl") || r.Has("library") {
		t.Error("Has out of sync with registrations")
	}
}

func TestRegistryAvailableOrderIsStable(t *testing.T) {
	r := NewRegistry("wgl", "egl")
	f := func() (glbind.Resolver, error) { return nil, ErrUnsupported }
	for _, n := range []string{"m", "egl", "b", "x", "wgl", "a", "q"} {
		r.Register(n, f)
	}
	want := []string{"wgl", "egl", "a", "b", "m", "q", "x"}
	// Map iteration order varies between calls; repeat to catch any leak.
	for range 50 {
		if got := r.Available(); !slices.Equal(got, want) {
			t.Fatalf("Available = %v, want %v", got, want)
		}
	}
}

func TestRegistryNoneAvailable(t *testing.T) {
	r := NewRegistry("egl")
	if _, _, err := r.Best(); !errors.Is(err, ErrNone) {
		t.Errorf("empty registry error = %v", err)
	}
	r.Register("egl", func() (glbind.Resolver, error) { return nil, ErrUnsupported })
	_, _, err := r.Best()
	if !errors.Is(err, ErrNone) || !errors.Is(err, ErrUnsupported) {
		t.Errorf("all-failing registry error = %v", err)
	}
	if _, err := r.Open("metal"); !errors.Is(err, ErrUnknown) {
		t.Errorf("Open(metal) error = %v", err)
	}
}

func TestDefaultRegistryHasLibrary(t *testing.T) {
	if !slices.Contains(Available(), "library") {
		t.Errorf("default registry lacks library: %v", Available())
	}
}

func TestLibraryMissing(t *testing.T) {
	_, err := Library("libglbind-does-not-exist.so.0")
	if !errors.Is(err, ErrNoLibrary) {
		t.Errorf("Library error = %v, want ErrNoLibrary", err)
	}
}

func TestDefaultLibrariesNonEmpty(t *testing.T) {
	if len(DefaultLibraries()) == 0 {
		t.Error("no default libraries for this platform")
	}
}

func TestClosedLibResolvesNothing(t *testing.T) {
	var l Lib
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if l.Resolve("glClear") != 0 {
		t.Error("closed Lib resolved a name")
	}
}
