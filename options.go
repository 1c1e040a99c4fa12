package glbind

import (
	"log/slog"

	"golang.org/x/text/encoding"

	"github.com/gogpu/glbind/internal/marshal"
)

// DefaultCapacity is the growable-output capacity used when a call passes
// capacity <= 0.
const DefaultCapacity = 1024

// Option configures Bind and Init.
//
// Example:
//
//	egl, err := resolver.EGL()
//	...
//	tbl, err := glbind.Bind(d, egl,
//	    glbind.WithLogger(slog.Default()),
//	    glbind.WithThreadCheck(),
//	)
type Option func(*options)

type options struct {
	adapter     Adapter
	logger      *slog.Logger
	codec       marshal.Codec
	capacity    int
	pool        *marshal.Pool
	threadCheck bool
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
	}
}

// WithAdapter replaces the goffi adapter, e.g. with a fake native library
// in tests.
func WithAdapter(a Adapter) Option {
	return func(o *options) {
		o.adapter = a
	}
}

// WithLogger sets the logger used by this table instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTextEncoding sets the encoding of native text. The default is strict
// UTF-8. Any x/text encoding works, e.g. charmap.ISO8859_1.
func WithTextEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.codec = marshal.NewCodec(enc)
	}
}

// WithDefaultCapacity sets the capacity used by growable outputs when the
// caller passes capacity <= 0.
func WithDefaultCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// withScratchPool sets the pool scratch buffers are drawn from.
func withScratchPool(p *marshal.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithThreadCheck records the OS thread that calls Bind and makes every
// later call from another thread fail with ErrWrongThread. The caller must
// hold runtime.LockOSThread across Bind and all calls.
func WithThreadCheck() Option {
	return func(o *options) {
		o.threadCheck = true
	}
}
