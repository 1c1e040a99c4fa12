// Package glbind is a capability-gated binding layer for OpenGL.
//
// # Overview
//
// A [Descriptor] names exactly one GL version, one profile and the calling
// surfaces to expose. [Select] turns it into the list of entry points that
// must exist, [Bind] resolves every one of them through a caller-supplied
// [Resolver] and adapts each address into a typed callable. A bind either
// produces a complete [Table] or fails with every missing name; there is no
// partially bound state.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glbind"
//	    "github.com/gogpu/glbind/resolver"
//	)
//
//	runtime.LockOSThread() // GL contexts are thread-affine
//
//	d, err := glbind.NewDescriptor(
//	    glbind.WithVersion(glbind.Version45),
//	    glbind.WithProfile(glbind.ProfileCore),
//	)
//	if err != nil { ... }
//
//	resolve, _, err := resolver.Best()
//	if err != nil { ... }
//
//	tbl, err := glbind.Bind(d, resolve)
//	if err != nil { ... } // *UnresolvedError lists every missing entry point
//
//	gl, _ := tbl.GL()
//	buf, _ := gl.GenBuffer()
//	_ = gl.BindBuffer(glbind.ARRAY_BUFFER, buf)
//	_ = glbind.BufferDataOf(gl, glbind.ARRAY_BUFFER, vertices, glbind.STATIC_DRAW)
//
// # Surfaces
//
// [Raw] forwards native-shaped arguments unchanged. [GL] converts Go values:
// slices are pinned for the duration of one call, strings are encoded and
// terminated, growable outputs are trimmed to the length the driver reports,
// and text coming back is decoded strictly. Entry points that take addresses
// into mapped GPU memory exist only on Raw.
//
// # Platforms
//
// The default adapter uses goffi and needs amd64 or arm64 with CGO_ENABLED=0
// outside Windows. Elsewhere supply an [Adapter] with [WithAdapter].
//
// # Logging
//
// glbind is silent by default. See [SetLogger].
package glbind
