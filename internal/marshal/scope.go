package marshal

import (
	"errors"
	"runtime"
	"sync"
	"unsafe"
)

// ErrEmptyInput is returned when an input array is empty. Entry points that
// legitimately take NULL have dedicated methods on the marshaling surface.
var ErrEmptyInput = errors.New("glbind: empty input array")

// Scope owns the pins and scratch buffers of one native call.
// A Scope is not safe for concurrent use.
type Scope struct {
	pinner runtime.Pinner
	pool   *Pool
	codec  Codec
	bufs   [][]byte
	pins   int
}

var scopes = sync.Pool{New: func() any { return new(Scope) }}

// Acquire returns a scope drawing scratch buffers from pool (DefaultPool if
// nil) and encoding text with codec.
func Acquire(pool *Pool, codec Codec) *Scope {
	if pool == nil {
		pool = defaultPool
	}
	s := scopes.Get().(*Scope)
	s.pool = pool
	s.codec = codec
	return s
}

// Release unpins everything pinned through s and returns its scratch buffers
// to the pool. s must not be used afterwards.
func (s *Scope) Release() {
	s.pinner.Unpin()
	for i, b := range s.bufs {
		s.pool.Put(b)
		s.bufs[i] = nil
	}
	s.bufs = s.bufs[:0]
	s.pins = 0
	s.pool = nil
	scopes.Put(s)
}

// Pins returns how many objects s has pinned.
func (s *Scope) Pins() int { return s.pins }

// Codec returns the scope's text codec.
func (s *Scope) Codec() Codec { return s.codec }

func (s *Scope) pin(p unsafe.Pointer) {
	s.pinner.Pin(p)
	s.pins++
}

// Slice pins the backing array of v and returns the address of its first
// element. Empty slices fail with ErrEmptyInput.
func Slice[T any](s *Scope, v []T) (unsafe.Pointer, error) {
	if len(v) == 0 {
		return nil, ErrEmptyInput
	}
	p := unsafe.Pointer(unsafe.SliceData(v))
	s.pin(p)
	return p, nil
}

// Value pins *v and returns its address.
func Value[T any](s *Scope, v *T) unsafe.Pointer {
	p := unsafe.Pointer(v)
	s.pin(p)
	return p
}

// Bytes returns a zeroed, pinned scratch buffer of n bytes.
func (s *Scope) Bytes(n int) []byte {
	b := s.pool.Get(n)
	if b == nil {
		return nil
	}
	s.bufs = append(s.bufs, b)
	s.pin(unsafe.Pointer(unsafe.SliceData(b)))
	return b
}

// CString encodes str with the scope's codec into a NUL-terminated, pinned
// scratch buffer and returns its address.
func (s *Scope) CString(str string) (unsafe.Pointer, error) {
	p, _, err := s.cString(str)
	return p, err
}

func (s *Scope) cString(str string) (unsafe.Pointer, int, error) {
	enc, err := s.codec.Encode(str)
	if err != nil {
		return nil, 0, err
	}
	b := s.Bytes(len(enc) + 1)
	copy(b, enc)
	return unsafe.Pointer(unsafe.SliceData(b)), len(enc), nil
}

// CStrings encodes every string and returns the address of a pinned array of
// their addresses, plus a pinned array of their byte lengths (excluding the
// terminator). An empty list fails with ErrEmptyInput.
func (s *Scope) CStrings(strs []string) (ptrs unsafe.Pointer, lengths unsafe.Pointer, err error) {
	if len(strs) == 0 {
		return nil, nil, ErrEmptyInput
	}
	addrs := make([]unsafe.Pointer, len(strs))
	lens := s.Int32s(len(strs))
	for i, str := range strs {
		p, n, err := s.cString(str)
		if err != nil {
			return nil, nil, err
		}
		addrs[i] = p
		lens[i] = int32(n)
	}
	return s.Pointers(addrs), unsafe.Pointer(unsafe.SliceData(lens)), nil
}

func cStringLen(p unsafe.Pointer) int {
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return n
}

// Pointers copies addrs into a pinned native pointer array and returns its
// address. The i-th element of the array equals addrs[i].
func (s *Scope) Pointers(addrs []unsafe.Pointer) unsafe.Pointer {
	if len(addrs) == 0 {
		return nil
	}
	b := s.Bytes(len(addrs) * int(unsafe.Sizeof(uintptr(0))))
	arr := unsafe.Slice((*uintptr)(unsafe.Pointer(unsafe.SliceData(b))), len(addrs))
	for i, a := range addrs {
		arr[i] = uintptr(a)
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

// Int32s returns a zeroed, pinned scratch array of n int32 values.
func (s *Scope) Int32s(n int) []int32 {
	b := s.Bytes(n * 4)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// Uint32s returns a zeroed, pinned scratch array of n uint32 values.
func (s *Scope) Uint32s(n int) []uint32 {
	b := s.Bytes(n * 4)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// GoString decodes a NUL-terminated native string at p with the scope's
// codec. p must be non-nil.
func (s *Scope) GoString(p unsafe.Pointer) (string, error) {
	n := cStringLen(p)
	return s.codec.Decode(unsafe.Slice((*byte)(p), n))
}

// Text decodes b[:n] with the scope's codec.
func (s *Scope) Text(b []byte, n int) (string, error) {
	return s.codec.Decode(b[:n])
}

// CutText decodes b[:n] written into a buffer of capacity bytes. When the
// text fills the buffer an incomplete trailing character is dropped first.
func (s *Scope) CutText(b []byte, n, capacity int) (string, error) {
	b = b[:n]
	if n == capacity {
		b = s.codec.TrimPartial(b)
	}
	return s.codec.Decode(b)
}
