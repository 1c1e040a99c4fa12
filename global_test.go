package glbind_test

import (
	"errors"
	"testing"

	"github.com/gogpu/glbind"
	"github.com/gogpu/glbind/glbindtest"
)

func TestGlobalLifecycle(t *testing.T) {
	glbind.Reset()
	t.Cleanup(glbind.Reset)

	if _, err := glbind.Current(); !errors.Is(err, glbind.ErrNotBound) {
		t.Fatalf("Current before Init error = %v", err)
	}

	nat := glbindtest.New()
	tbl, err := glbind.Init(core45, nat.Resolver(), glbind.WithAdapter(nat.Adapter()))
	if err != nil {
		t.Fatal(err)
	}
	cur, err := glbind.Current()
	if err != nil || cur != tbl {
		t.Fatalf("Current = %p, %v; want %p", cur, err, tbl)
	}

	if _, err := glbind.Init(core45, nat.Resolver(), glbind.WithAdapter(nat.Adapter())); !errors.Is(err, glbind.ErrAlreadyBound) {
		t.Errorf("second Init error = %v, want ErrAlreadyBound", err)
	}
	if cur, _ := glbind.Current(); cur != tbl {
		t.Error("failed Init replaced the installed table")
	}

	glbind.Reset()
	if _, err := glbind.Current(); !errors.Is(err, glbind.ErrNotBound) {
		t.Errorf("Current after Reset error = %v", err)
	}
}

func TestGlobalInitFailureLeavesSlotEmpty(t *testing.T) {
	glbind.Reset()
	t.Cleanup(glbind.Reset)

	nat := glbindtest.New()
	nat.Missing("glClear")
	if _, err := glbind.Init(core45, nat.Resolver(), glbind.WithAdapter(nat.Adapter())); !errors.Is(err, glbind.ErrUnresolved) {
		t.Fatalf("Init error = %v", err)
	}
	if _, err := glbind.Current(); !errors.Is(err, glbind.ErrNotBound) {
		t.Errorf("Current after failed Init error = %v", err)
	}
	ok := glbindtest.New()
	if _, err := glbind.Init(core45, ok.Resolver(), glbind.WithAdapter(ok.Adapter())); err != nil {
		t.Errorf("Init after failure: %v", err)
	}
}
