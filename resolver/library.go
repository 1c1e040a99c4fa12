package resolver

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/gogpu/glbind"
)

// Lib is an open shared library. Its Resolve method is a glbind.Resolver.
type Lib struct {
	name string

	mu     sync.RWMutex
	handle unsafe.Pointer
}

// DefaultLibraries returns the OpenGL library names tried by Library when
// none are given.
func DefaultLibraries() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"opengl32.dll"}
	case "darwin":
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	default:
		return []string{"libGL.so.1", "libGL.so", "libOpenGL.so.0"}
	}
}

// Library opens the first loadable library among names, or among
// DefaultLibraries when names is empty.
func Library(names ...string) (*Lib, error) {
	if len(names) == 0 {
		names = DefaultLibraries()
	}
	var errs []error
	for _, name := range names {
		h, err := openLibrary(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		glbind.Logger().Debug("resolver: library loaded", "library", name)
		return &Lib{name: name, handle: h}, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrNoLibrary, errors.Join(errs...))
}

// Name returns the library name that was loaded.
func (l *Lib) Name() string { return l.name }

// Resolve returns the address of an exported symbol, or zero.
func (l *Lib) Resolve(name string) uintptr {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.handle == nil {
		return 0
	}
	return lookupSymbol(l.handle, name)
}

// Close unloads the library. Tables bound through it must not be used
// afterwards.
func (l *Lib) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.handle
	if h == nil {
		return nil
	}
	l.handle = nil
	return closeLibrary(h)
}

func init() {
	Register("library", func() (glbind.Resolver, error) {
		lib, err := Library()
		if err != nil {
			return nil, err
		}
		return lib.Resolve, nil
	})
}
