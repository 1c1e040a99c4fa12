// Package glbindtest provides a fake native OpenGL library for testing code
// built on glbind without a GPU or a GL context.
//
// A [Native] answers every catalogue name with a fake address by default.
// Handlers registered with [Native.Handle] receive goffi-shaped calls: one
// pointer per argument value and a pointer to return storage.
//
//	nat := glbindtest.New()
//	nat.Handle("glGetError", func(c *glbindtest.Call) { c.ReturnUint32(0) })
//	tbl, err := glbind.Bind(d, nat.Resolver(), glbind.WithAdapter(nat.Adapter()))
package glbindtest

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/gogpu/glbind"
)

// Errors reported by the fake adapter.
var (
	ErrUnknownAddress = errors.New("glbindtest: address was not handed out by this library")
	ErrArgCount       = errors.New("glbindtest: argument count does not match signature")
	ErrReturnShape    = errors.New("glbindtest: return storage does not match signature")
)

// Handler implements one fake entry point.
type Handler func(c *Call)

type symbol struct {
	name    string
	addr    uintptr
	handler Handler
	calls   int
}

// Native is a fake native library. It is safe for concurrent use.
type Native struct {
	mu       sync.Mutex
	byName   map[string]*symbol
	byAddr   map[uintptr]*symbol
	missing  map[string]bool
	resolves map[string]int
	next     uintptr
}

// symbolBase is the first fake address. Addresses are never dereferenced.
const symbolBase = 0x10000

// New returns a library exporting every catalogue entry point. Unhandled
// entries return zero.
func New() *Native {
	n := &Native{
		byName:   make(map[string]*symbol),
		byAddr:   make(map[uintptr]*symbol),
		missing:  make(map[string]bool),
		resolves: make(map[string]int),
		next:     symbolBase,
	}
	for _, spec := range glbind.Catalog() {
		n.define(spec.Name)
	}
	return n
}

func (n *Native) define(name string) *symbol {
	if s, ok := n.byName[name]; ok {
		return s
	}
	s := &symbol{name: name, addr: n.next}
	n.next += 16
	n.byName[name] = s
	n.byAddr[s.addr] = s
	return s
}

// Handle installs fn for name, exporting name if it was not already.
func (n *Native) Handle(name string, fn Handler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.define(name).handler = fn
	delete(n.missing, name)
}

// Missing makes the resolver answer zero for each name.
func (n *Native) Missing(names ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, name := range names {
		n.missing[name] = true
	}
}

// Calls returns how many times name was invoked.
func (n *Native) Calls(name string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if s, ok := n.byName[name]; ok {
		return s.calls
	}
	return 0
}

// Resolutions returns how many times the resolver was asked for name.
func (n *Native) Resolutions(name string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.resolves[name]
}

// Addr returns the fake address of name, or zero.
func (n *Native) Addr(name string) uintptr {
	n.mu.Lock()
	defer n.mu.Unlock()
	if s, ok := n.byName[name]; ok && !n.missing[name] {
		return s.addr
	}
	return 0
}

// Resolver returns a resolver over the library's exports.
func (n *Native) Resolver() glbind.Resolver {
	return func(name string) uintptr {
		n.mu.Lock()
		n.resolves[name]++
		n.mu.Unlock()
		return n.Addr(name)
	}
}

// Adapter returns an adapter that dispatches to the registered handlers.
// Every call is checked against the entry's signature.
func (n *Native) Adapter() glbind.Adapter {
	return glbind.AdapterFunc(func(spec *glbind.EntryPointSpec, addr uintptr) (glbind.Func, error) {
		n.mu.Lock()
		s, ok := n.byAddr[addr]
		n.mu.Unlock()
		if !ok {
			return nil, fmt.Errorf("%w: %#x for %s", ErrUnknownAddress, addr, spec.Name)
		}
		sig := spec.Signature
		return func(ret unsafe.Pointer, args []unsafe.Pointer) error {
			if len(args) != len(sig.Args) {
				return fmt.Errorf("%w: %s got %d, want %d", ErrArgCount, spec.Name, len(args), len(sig.Args))
			}
			if (ret == nil) != (sig.Return.Size() == 0) {
				return fmt.Errorf("%w: %s", ErrReturnShape, spec.Name)
			}
			n.mu.Lock()
			s.calls++
			h := s.handler
			n.mu.Unlock()
			if h != nil {
				h(&Call{Name: spec.Name, Spec: spec, Args: args, Ret: ret})
			}
			return nil
		}, nil
	})
}
