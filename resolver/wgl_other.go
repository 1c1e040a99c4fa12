//go:build !windows

package resolver

import "github.com/gogpu/glbind"

// WGL is only available on windows.
func WGL() (glbind.Resolver, error) { return nil, ErrUnsupported }
