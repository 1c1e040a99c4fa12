package glbindtest

import (
	"math"
	"unsafe"

	"github.com/gogpu/glbind"
	"github.com/gogpu/glbind/abi"
)

// Call is one invocation of a fake entry point. Args and Ret are valid only
// while the handler runs; copy anything that must outlive it.
type Call struct {
	Name string
	Spec *glbind.EntryPointSpec
	Args []unsafe.Pointer
	Ret  unsafe.Pointer
}

// Uint32 returns argument i as a 32-bit unsigned value.
func (c *Call) Uint32(i int) uint32 { return *(*uint32)(c.Args[i]) }

// Int32 returns argument i as a 32-bit signed value.
func (c *Call) Int32(i int) int32 { return *(*int32)(c.Args[i]) }

// Int64 returns a pointer-sized signed argument (GLintptr, GLsizeiptr).
func (c *Call) Int64(i int) int64 { return *(*int64)(c.Args[i]) }

// Uint64 returns a 64-bit argument.
func (c *Call) Uint64(i int) uint64 { return *(*uint64)(c.Args[i]) }

// Float32 returns a GLfloat argument.
func (c *Call) Float32(i int) float32 { return *(*float32)(c.Args[i]) }

// Float64 returns a GLdouble argument.
func (c *Call) Float64(i int) float64 { return *(*float64)(c.Args[i]) }

// Bool returns a GLboolean argument.
func (c *Call) Bool(i int) bool { return *(*uint8)(c.Args[i]) != 0 }

// Ptr returns a pointer argument.
func (c *Call) Ptr(i int) unsafe.Pointer { return *(*unsafe.Pointer)(c.Args[i]) }

// Uintptr returns a pointer argument as an integer, for offsets.
func (c *Call) Uintptr(i int) uintptr { return *(*uintptr)(c.Args[i]) }

// ReturnUint32 stores a GLenum/GLuint result.
func (c *Call) ReturnUint32(v uint32) { *(*uint32)(c.Ret) = v }

// ReturnInt32 stores a GLint result.
func (c *Call) ReturnInt32(v int32) { *(*int32)(c.Ret) = v }

// ReturnBool stores a GLboolean result.
func (c *Call) ReturnBool(v bool) {
	var b uint8
	if v {
		b = 1
	}
	*(*uint8)(c.Ret) = b
}

// ReturnPtr stores a pointer or GLsync result.
func (c *Call) ReturnPtr(p unsafe.Pointer) { *(*unsafe.Pointer)(c.Ret) = p }

// ReturnUintptr stores an address-sized result.
func (c *Call) ReturnUintptr(v uintptr) { *(*uintptr)(c.Ret) = v }

// Kind returns the declared kind of argument i.
func (c *Call) Kind(i int) abi.Kind { return c.Spec.Signature.Args[i] }

// Bytes copies n bytes from p.
func Bytes(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}

// Int32s copies n int32 values from p.
func Int32s(p unsafe.Pointer, n int) []int32 {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]int32, n)
	copy(out, unsafe.Slice((*int32)(p), n))
	return out
}

// Uint32s copies n uint32 values from p.
func Uint32s(p unsafe.Pointer, n int) []uint32 {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]uint32, n)
	copy(out, unsafe.Slice((*uint32)(p), n))
	return out
}

// Float32s copies n float32 values from p.
func Float32s(p unsafe.Pointer, n int) []float32 {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]float32, n)
	copy(out, unsafe.Slice((*float32)(p), n))
	return out
}

// Pointers reads a native array of n addresses at p.
func Pointers(p unsafe.Pointer, n int) []unsafe.Pointer {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]unsafe.Pointer, n)
	copy(out, unsafe.Slice((*unsafe.Pointer)(p), n))
	return out
}

// CString reads a NUL-terminated string at p.
func CString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// PutInt32 writes v at p.
func PutInt32(p unsafe.Pointer, v int32) { *(*int32)(p) = v }

// PutUint32s writes vs starting at p.
func PutUint32s(p unsafe.Pointer, vs ...uint32) {
	copy(unsafe.Slice((*uint32)(p), len(vs)), vs)
}

// PutInt32s writes vs starting at p.
func PutInt32s(p unsafe.Pointer, vs ...int32) {
	copy(unsafe.Slice((*int32)(p), len(vs)), vs)
}

// PutFloat32s writes vs starting at p.
func PutFloat32s(p unsafe.Pointer, vs ...float32) {
	dst := unsafe.Slice((*uint32)(p), len(vs))
	for i, v := range vs {
		dst[i] = math.Float32bits(v)
	}
}

// PutBytes writes b at p.
func PutBytes(p unsafe.Pointer, b []byte) {
	copy(unsafe.Slice((*byte)(p), len(b)), b)
}

// WriteText emulates the GL text-output convention: it copies at most
// bufSize-1 bytes of s to buf, terminates it, and stores the number of bytes
// written (excluding the terminator) at length if non-nil.
func WriteText(s string, bufSize int32, length, buf unsafe.Pointer) {
	if bufSize <= 0 || buf == nil {
		if length != nil {
			PutInt32(length, 0)
		}
		return
	}
	n := min(len(s), int(bufSize)-1)
	dst := unsafe.Slice((*byte)(buf), n+1)
	copy(dst, s[:n])
	dst[n] = 0
	if length != nil {
		PutInt32(length, int32(n))
	}
}
