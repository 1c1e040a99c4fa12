package glbind

import (
	"sync"
	"sync/atomic"
)

// Process-wide table. Init publishes it once; Reset clears it.
var (
	globalMu    sync.Mutex
	globalTable atomic.Pointer[Table]
)

// Init binds a table and installs it as the process-wide table. It fails
// with ErrAlreadyBound if a table is installed. A failed Init leaves the slot
// empty.
func Init(d Descriptor, resolve Resolver, opts ...Option) (*Table, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalTable.Load() != nil {
		return nil, ErrAlreadyBound
	}
	t, err := Bind(d, resolve, opts...)
	if err != nil {
		return nil, err
	}
	globalTable.Store(t)
	return t, nil
}

// Current returns the process-wide table, or ErrNotBound before Init.
func Current() (*Table, error) {
	if t := globalTable.Load(); t != nil {
		return t, nil
	}
	return nil, ErrNotBound
}

// Reset clears the process-wide table. Call it when the GL context is
// destroyed; tables obtained earlier stay usable only while that context
// lives.
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalTable.Store(nil)
}
