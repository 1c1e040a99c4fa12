//go:build windows

package resolver

import (
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/hal/gles/wgl"

	"github.com/gogpu/glbind"
)

var (
	wglOnce sync.Once
	wglErr  error
)

// WGL resolves GL 1.1 names from opengl32.dll exports and everything else
// through wglGetProcAddress. A GL context must be current when resolving.
func WGL() (glbind.Resolver, error) {
	wglOnce.Do(func() { wglErr = wgl.Init() })
	if wglErr != nil {
		return nil, fmt.Errorf("resolver: wgl: %w", wglErr)
	}
	return wgl.GetGLProcAddress, nil
}

func init() { Register("wgl", WGL) }
