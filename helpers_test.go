package glbind_test

import (
	"testing"

	"github.com/gogpu/glbind"
	"github.com/gogpu/glbind/glbindtest"
	"github.com/gogpu/glbind/internal/marshal"
)

var core45 = glbind.MustDescriptor(
	glbind.WithVersion(glbind.Version45),
	glbind.WithProfile(glbind.ProfileCore),
)

// bindFake binds d against nat with a private scratch pool, which is
// returned so tests can check that every call gave its buffers back.
func bindFake(t testing.TB, d glbind.Descriptor, nat *glbindtest.Native, opts ...glbind.Option) (*glbind.Table, *marshal.Pool) {
	t.Helper()
	pool := marshal.NewPool(4)
	opts = append([]glbind.Option{
		glbind.WithAdapter(nat.Adapter()),
		glbind.WithScratchPool(pool),
	}, opts...)
	tbl, err := glbind.Bind(d, nat.Resolver(), opts...)
	if err != nil {
		t.Fatalf("Bind(%v): %v", d, err)
	}
	return tbl, pool
}

// newGL returns the marshaling surface of a core 4.5 table over nat.
func newGL(t testing.TB, nat *glbindtest.Native, opts ...glbind.Option) (*glbind.GL, *marshal.Pool) {
	t.Helper()
	tbl, pool := bindFake(t, core45, nat, opts...)
	gl, err := tbl.GL()
	if err != nil {
		t.Fatalf("GL(): %v", err)
	}
	if tb, ok := t.(*testing.T); ok {
		tb.Cleanup(func() { checkBalanced(tb, pool) })
	}
	return gl, pool
}

func checkBalanced(t *testing.T, pool *marshal.Pool) {
	t.Helper()
	if n := pool.Stats().Outstanding(); n != 0 {
		t.Errorf("%d scratch buffers not returned to the pool", n)
	}
}
