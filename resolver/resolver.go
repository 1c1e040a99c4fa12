// Package resolver provides the name-to-address lookups glbind.Bind
// consumes.
//
// Platform resolvers ask the windowing layer for entry points
// (eglGetProcAddress, wglGetProcAddress); Library reads the exports of a
// shared library directly. Best picks the first resolver that opens on this
// platform:
//
//	resolve, name, err := resolver.Best()
//	if err != nil {
//	    return err
//	}
//	tbl, err := glbind.Bind(d, resolve)
//
// Resolvers answer zero for names they do not provide. Some drivers return
// non-zero dispatch stubs for any name through eglGetProcAddress, so a
// successful bind against a platform resolver does not prove that every
// entry point is implemented; the descriptor must match the context.
package resolver

import (
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/gogpu/glbind"
)

// Errors returned by resolvers.
var (
	ErrUnsupported = errors.New("resolver: not supported on this platform")
	ErrNoLibrary   = errors.New("resolver: no OpenGL library could be loaded")
	ErrUnknown     = errors.New("resolver: unknown resolver")
	ErrNone        = errors.New("resolver: no resolver available")
)

// Static resolves from a fixed table. The map is copied.
func Static(table map[string]uintptr) glbind.Resolver {
	m := maps.Clone(table)
	return func(name string) uintptr { return m[name] }
}

// Chain asks each resolver in turn and returns the first non-zero address.
// Nil resolvers are skipped.
func Chain(rs ...glbind.Resolver) glbind.Resolver {
	rs = slices.DeleteFunc(slices.Clone(rs), func(r glbind.Resolver) bool { return r == nil })
	return func(name string) uintptr {
		for _, r := range rs {
			if addr := r(name); addr != 0 {
				return addr
			}
		}
		return 0
	}
}

// Counter wraps a resolver and records every request.
type Counter struct {
	r glbind.Resolver

	mu     sync.Mutex
	counts map[string]int
	misses map[string]bool
}

// Counting wraps r.
func Counting(r glbind.Resolver) *Counter {
	return &Counter{r: r, counts: make(map[string]int), misses: make(map[string]bool)}
}

// Resolve looks name up through the wrapped resolver.
func (c *Counter) Resolve(name string) uintptr {
	addr := c.r(name)
	c.mu.Lock()
	c.counts[name]++
	if addr == 0 {
		c.misses[name] = true
	}
	c.mu.Unlock()
	return addr
}

// Count returns how often name was requested.
func (c *Counter) Count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[name]
}

// Total returns the number of requests.
func (c *Counter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

// Names returns every requested name, sorted.
func (c *Counter) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Sorted(maps.Keys(c.counts))
}

// Missing returns the requested names that resolved to zero, sorted.
func (c *Counter) Missing() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Sorted(maps.Keys(c.misses))
}
