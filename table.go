package glbind

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/gogpu/glbind/internal/marshal"
	"github.com/gogpu/glbind/internal/thread"
)

// Resolver maps a native entry-point name to its address. A zero address
// means the name is not provided.
type Resolver func(name string) uintptr

// Binding is one resolved entry point. Bindings are created only by Bind.
type Binding struct {
	Spec *EntryPointSpec
	Addr uintptr
	fn   Func
}

// Table holds the adapted callables for one descriptor. It is immutable
// after Bind and may be read from any goroutine; the native calls themselves
// must come from the thread that owns the GL context.
//
// A nil or zero Table is not ready and every call through it fails with
// ErrNotBound.
type Table struct {
	desc     Descriptor
	bindings []*Binding
	byID     []*Binding // indexed by EntryPoint, nil when not selected
	ready    bool

	logger   *slog.Logger
	codec    marshal.Codec
	pool     *marshal.Pool
	capacity int
	thread   uint64 // 0 = no check

	raw *Raw
	gl  *GL
}

// Bind selects the entry points d requires, resolves each through resolve
// exactly once and adapts every address. If any selected name resolves to
// zero the bind fails with an *UnresolvedError naming all of them, and no
// table is returned.
func Bind(d Descriptor, resolve Resolver, opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	specs, err := Select(d)
	if err != nil {
		return nil, err
	}
	if resolve == nil {
		return nil, errors.New("glbind: bind: nil resolver")
	}

	addrs := make([]uintptr, len(specs))
	var missing []string
	for i, spec := range specs {
		addrs[i] = resolve(spec.Name)
		if addrs[i] == 0 {
			missing = append(missing, spec.Name)
			continue
		}
		log.Debug("glbind: resolved", "name", spec.Name, "addr", fmt.Sprintf("%#x", addrs[i]))
	}
	if len(missing) > 0 {
		log.Warn("glbind: unresolved entry points", "descriptor", d.String(), "count", len(missing), "names", missing)
		return nil, &UnresolvedError{Descriptor: d, Names: missing}
	}

	adapter := o.adapter
	if adapter == nil {
		if adapter, err = DefaultAdapter(); err != nil {
			return nil, err
		}
	}

	t := &Table{
		desc:     Descriptor{Version: d.Version, Profile: d.Profile, Surface: d.surface()},
		bindings: make([]*Binding, len(specs)),
		byID:     make([]*Binding, numEntryPoints),
		logger:   log,
		codec:    o.codec,
		pool:     o.pool,
		capacity: o.capacity,
	}
	if t.pool == nil {
		t.pool = marshal.DefaultPool()
	}
	for i, spec := range specs {
		fn, err := adapter.Adapt(spec, addrs[i])
		if err != nil {
			return nil, &AdaptError{Name: spec.Name, Err: err}
		}
		b := &Binding{Spec: spec, Addr: addrs[i], fn: fn}
		t.bindings[i] = b
		t.byID[spec.ID] = b
	}

	if o.threadCheck {
		if thread.Supported() {
			t.thread = thread.ID()
		} else {
			log.Warn("glbind: thread check requested but thread ids are unavailable on this platform")
		}
	}
	if t.desc.Surface.HasRaw() {
		t.raw = &Raw{t: t}
	}
	if t.desc.Surface.HasMarshaling() {
		t.gl = &GL{t: t}
	}
	t.ready = true

	log.Info("glbind: table bound",
		"version", t.desc.Version.String(),
		"profile", t.desc.Profile.String(),
		"surface", t.desc.Surface.String(),
		"entries", len(t.bindings))
	return t, nil
}

// Descriptor returns the descriptor the table was bound for.
func (t *Table) Descriptor() Descriptor {
	if t == nil {
		return Descriptor{}
	}
	return t.desc
}

// Ready reports whether the table was successfully bound.
func (t *Table) Ready() bool { return t != nil && t.ready }

// Len returns the number of bound entry points.
func (t *Table) Len() int {
	if !t.Ready() {
		return 0
	}
	return len(t.bindings)
}

// Has reports whether ep is bound.
func (t *Table) Has(ep EntryPoint) bool {
	_, ok := t.Binding(ep)
	return ok
}

// Binding returns the binding for ep.
func (t *Table) Binding(ep EntryPoint) (*Binding, bool) {
	if !t.Ready() || int(ep) >= len(t.byID) {
		return nil, false
	}
	b := t.byID[ep]
	return b, b != nil
}

// Bindings returns all bindings in catalogue order.
func (t *Table) Bindings() []*Binding {
	if !t.Ready() {
		return nil
	}
	out := make([]*Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// Raw returns the raw surface.
func (t *Table) Raw() (*Raw, error) {
	if !t.Ready() {
		return nil, ErrNotBound
	}
	if t.raw == nil {
		return nil, fmt.Errorf("%w: raw surface under %s", ErrSurfaceDisabled, t.desc.Surface)
	}
	return t.raw, nil
}

// GL returns the marshaling surface.
func (t *Table) GL() (*GL, error) {
	if !t.Ready() {
		return nil, ErrNotBound
	}
	if t.gl == nil {
		return nil, fmt.Errorf("%w: marshaling surface under %s", ErrSurfaceDisabled, t.desc.Surface)
	}
	return t.gl, nil
}

func (t *Table) lookup(ep EntryPoint) (*Binding, error) {
	if !t.Ready() {
		return nil, ErrNotBound
	}
	if int(ep) >= len(t.byID) || t.byID[ep] == nil {
		return nil, &UnavailableError{Entry: ep, Descriptor: t.desc}
	}
	return t.byID[ep], nil
}

// call dispatches one native call.
func (t *Table) call(ep EntryPoint, ret unsafe.Pointer, args []unsafe.Pointer) error {
	b, err := t.lookup(ep)
	if err != nil {
		return err
	}
	if t.thread != 0 {
		if cur := thread.ID(); cur != t.thread {
			t.logger.Warn("glbind: call from wrong thread", "entry", b.Spec.Name, "thread", cur, "bound", t.thread)
			return fmt.Errorf("%w: %s", ErrWrongThread, b.Spec.Name)
		}
	}
	return b.fn(ret, args)
}

func (t *Table) scope() *marshal.Scope {
	return marshal.Acquire(t.pool, t.codec)
}

func (t *Table) capacityOr(n int) int {
	if n > 0 {
		return n
	}
	return t.capacity
}
