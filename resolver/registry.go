package resolver

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glbind"
)

// Factory opens a resolver. It fails when the platform library behind it
// cannot be loaded.
type Factory func() (glbind.Resolver, error)

// Registry holds named resolver factories in priority order.
type Registry struct {
	factories *gpucontext.Registry[Factory]
	priority  []string
}

// NewRegistry returns an empty registry preferring names in the given order.
// Unlisted names rank last, alphabetically.
func NewRegistry(priority ...string) *Registry {
	return &Registry{
		factories: gpucontext.NewRegistry[Factory](gpucontext.WithPriority(priority...)),
		priority:  slices.Clone(priority),
	}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.factories.Register(name, func() Factory { return f })
}

// Unregister removes name.
func (r *Registry) Unregister(name string) { r.factories.Unregister(name) }

// Available returns the registered names, highest priority first.
//
// gpucontext.Registry applies its priority only in Best; its Available
// ranges over a map, so the order is rebuilt here.
func (r *Registry) Available() []string {
	names := r.factories.Available()
	slices.Sort(names)
	out := make([]string, 0, len(names))
	for _, p := range r.priority {
		if slices.Contains(names, p) {
			out = append(out, p)
		}
	}
	for _, n := range names {
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool { return r.factories.Has(name) }

// Open opens the named resolver.
func (r *Registry) Open(name string) (glbind.Resolver, error) {
	f := r.factories.Get(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return f()
}

// Best opens registered resolvers in priority order and returns the first
// that succeeds, with its name.
func (r *Registry) Best() (glbind.Resolver, string, error) {
	log := glbind.Logger()
	var errs []error
	for _, name := range r.Available() {
		res, err := r.Open(name)
		if err != nil {
			log.Debug("resolver: unavailable", "resolver", name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		log.Debug("resolver: selected", "resolver", name)
		return res, name, nil
	}
	return nil, "", errors.Join(append([]error{ErrNone}, errs...)...)
}

// platforms is the process-wide registry. Platform files register into it
// from init.
var platforms = NewRegistry("egl", "wgl", "library")

// Register adds a factory to the default registry.
func Register(name string, f Factory) { platforms.Register(name, f) }

// Available lists the resolvers registered for this platform.
func Available() []string { return platforms.Available() }

// Open opens a resolver from the default registry by name.
func Open(name string) (glbind.Resolver, error) { return platforms.Open(name) }

// Best opens the highest-priority resolver that works on this platform.
func Best() (glbind.Resolver, string, error) { return platforms.Best() }
