//go:build !(linux && (amd64 || arm64) && !cgo)

package resolver

import "github.com/gogpu/glbind"

// EGL is only available on linux builds without cgo.
func EGL() (glbind.Resolver, error) { return nil, ErrUnsupported }
