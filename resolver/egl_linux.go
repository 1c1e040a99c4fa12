//go:build linux && (amd64 || arm64) && !cgo

package resolver

import (
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/hal/gles/egl"

	"github.com/gogpu/glbind"
)

var (
	eglOnce sync.Once
	eglErr  error
)

// EGL resolves through eglGetProcAddress. libEGL is loaded on first use.
func EGL() (glbind.Resolver, error) {
	eglOnce.Do(func() { eglErr = egl.Init() })
	if eglErr != nil {
		return nil, fmt.Errorf("resolver: egl: %w", eglErr)
	}
	return egl.GetProcAddress, nil
}

func init() { Register("egl", EGL) }
