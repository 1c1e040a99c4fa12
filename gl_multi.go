package glbind

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/gogpu/glbind/internal/marshal"
)

// ShaderSource calls glShaderSource with one string per source fragment.
// Lengths are passed explicitly, so fragments need no terminator handling by
// the driver.
func (gl *GL) ShaderSource(shader uint32, sources ...string) error {
	_, sc, err := gl.begin(FnShaderSource)
	if err != nil {
		return err
	}
	defer sc.Release()

	strs, lens, err := sc.CStrings(sources)
	if err != nil {
		return callErr(FnShaderSource, err)
	}
	n := int32(len(sources))
	return gl.call(FnShaderSource, nil,
		unsafe.Pointer(&shader), unsafe.Pointer(&n), unsafe.Pointer(&strs), unsafe.Pointer(&lens))
}

// TransformFeedbackVaryings calls glTransformFeedbackVaryings.
func (gl *GL) TransformFeedbackVaryings(program uint32, varyings []string, bufferMode uint32) error {
	_, sc, err := gl.begin(FnTransformFeedbackVaryings)
	if err != nil {
		return err
	}
	defer sc.Release()

	strs, _, err := sc.CStrings(varyings)
	if err != nil {
		return callErr(FnTransformFeedbackVaryings, err)
	}
	n := int32(len(varyings))
	return gl.call(FnTransformFeedbackVaryings, nil,
		unsafe.Pointer(&program), unsafe.Pointer(&n), unsafe.Pointer(&strs), unsafe.Pointer(&bufferMode))
}

// GetUniformIndices returns the index of each named uniform, or
// INVALID_INDEX for names that are not active.
func (gl *GL) GetUniformIndices(program uint32, names []string) ([]uint32, error) {
	_, sc, err := gl.begin(FnGetUniformIndices)
	if err != nil {
		return nil, err
	}
	defer sc.Release()

	strs, _, err := sc.CStrings(names)
	if err != nil {
		return nil, callErr(FnGetUniformIndices, err)
	}
	out := make([]uint32, len(names))
	outPtr, err := marshal.Slice(sc, out)
	if err != nil {
		return nil, callErr(FnGetUniformIndices, err)
	}
	n := int32(len(names))
	if err := gl.call(FnGetUniformIndices, nil,
		unsafe.Pointer(&program), unsafe.Pointer(&n), unsafe.Pointer(&strs), unsafe.Pointer(&outPtr)); err != nil {
		return nil, err
	}
	return out, nil
}

// MultiDrawArrays calls glMultiDrawArrays. first and count are paired and
// must have equal length.
func (gl *GL) MultiDrawArrays(mode uint32, first, count []int32) error {
	_, sc, err := gl.begin(FnMultiDrawArrays)
	if err != nil {
		return err
	}
	defer sc.Release()

	if len(first) != len(count) {
		return callErr(FnMultiDrawArrays, fmt.Errorf("%w: %d firsts, %d counts", ErrLengthMismatch, len(first), len(count)))
	}
	fp, err := marshal.Slice(sc, first)
	if err != nil {
		return callErr(FnMultiDrawArrays, err)
	}
	cp, err := marshal.Slice(sc, count)
	if err != nil {
		return callErr(FnMultiDrawArrays, err)
	}
	n := int32(len(first))
	return gl.call(FnMultiDrawArrays, nil,
		unsafe.Pointer(&mode), unsafe.Pointer(&fp), unsafe.Pointer(&cp), unsafe.Pointer(&n))
}

// Index is an element index type accepted by glDrawElements.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// IndexType returns the GL type enum for T.
func IndexType[T Index]() uint32 {
	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		return UNSIGNED_BYTE
	case 2:
		return UNSIGNED_SHORT
	default:
		return UNSIGNED_INT
	}
}

// MultiDrawElements calls glMultiDrawElements with 32-bit client indices.
func (gl *GL) MultiDrawElements(mode uint32, indices [][]uint32) error {
	return MultiDrawElementsOf(gl, mode, indices)
}

// MultiDrawElementsOf calls glMultiDrawElements with client-side index
// slices, one per draw. Each slice is pinned and a parallel array of their
// addresses is passed to the driver.
func MultiDrawElementsOf[T Index](gl *GL, mode uint32, indices [][]T) error {
	_, sc, err := gl.begin(FnMultiDrawElements)
	if err != nil {
		return err
	}
	defer sc.Release()

	if len(indices) == 0 {
		return callErr(FnMultiDrawElements, marshal.ErrEmptyInput)
	}
	counts := sc.Int32s(len(indices))
	addrs := make([]unsafe.Pointer, len(indices))
	for i, idx := range indices {
		p, err := marshal.Slice(sc, idx)
		if err != nil {
			return callErr(FnMultiDrawElements, fmt.Errorf("draw %d: %w", i, err))
		}
		addrs[i] = p
		counts[i] = int32(len(idx))
	}
	countPtr := unsafe.Pointer(unsafe.SliceData(counts))
	outer := sc.Pointers(addrs)
	typ := IndexType[T]()
	n := int32(len(indices))
	return gl.call(FnMultiDrawElements, nil,
		unsafe.Pointer(&mode), unsafe.Pointer(&countPtr), unsafe.Pointer(&typ),
		unsafe.Pointer(&outer), unsafe.Pointer(&n))
}

// DrawArraysIndirect calls glDrawArraysIndirect with the address of a copy
// of cmd.
func (gl *GL) DrawArraysIndirect(mode uint32, cmd DrawArraysIndirectCommand) error {
	_, sc, err := gl.begin(FnDrawArraysIndirect)
	if err != nil {
		return err
	}
	defer sc.Release()

	p := marshal.Value(sc, &cmd)
	return gl.call(FnDrawArraysIndirect, nil, unsafe.Pointer(&mode), unsafe.Pointer(&p))
}

// DrawArraysIndirectOffset calls glDrawArraysIndirect reading the command
// from the bound draw-indirect buffer at byte offset.
func (gl *GL) DrawArraysIndirectOffset(mode uint32, offset int) error {
	off := uintptr(offset)
	return gl.call(FnDrawArraysIndirect, nil, unsafe.Pointer(&mode), unsafe.Pointer(&off))
}

// DrawElementsIndirect calls glDrawElementsIndirect with the address of a
// copy of cmd.
func (gl *GL) DrawElementsIndirect(mode, typ uint32, cmd DrawElementsIndirectCommand) error {
	_, sc, err := gl.begin(FnDrawElementsIndirect)
	if err != nil {
		return err
	}
	defer sc.Release()

	p := marshal.Value(sc, &cmd)
	return gl.call(FnDrawElementsIndirect, nil, unsafe.Pointer(&mode), unsafe.Pointer(&typ), unsafe.Pointer(&p))
}

// DrawElementsIndirectOffset calls glDrawElementsIndirect reading the
// command from the bound draw-indirect buffer at byte offset.
func (gl *GL) DrawElementsIndirectOffset(mode, typ uint32, offset int) error {
	off := uintptr(offset)
	return gl.call(FnDrawElementsIndirect, nil, unsafe.Pointer(&mode), unsafe.Pointer(&typ), unsafe.Pointer(&off))
}

// MultiDrawArraysIndirect calls glMultiDrawArraysIndirect with tightly
// packed commands.
func (gl *GL) MultiDrawArraysIndirect(mode uint32, cmds []DrawArraysIndirectCommand) error {
	_, sc, err := gl.begin(FnMultiDrawArraysIndirect)
	if err != nil {
		return err
	}
	defer sc.Release()

	p, err := marshal.Slice(sc, cmds)
	if err != nil {
		return callErr(FnMultiDrawArraysIndirect, err)
	}
	n, stride := int32(len(cmds)), int32(0)
	return gl.call(FnMultiDrawArraysIndirect, nil,
		unsafe.Pointer(&mode), unsafe.Pointer(&p), unsafe.Pointer(&n), unsafe.Pointer(&stride))
}

// MultiDrawElementsIndirect calls glMultiDrawElementsIndirect with tightly
// packed commands.
func (gl *GL) MultiDrawElementsIndirect(mode, typ uint32, cmds []DrawElementsIndirectCommand) error {
	_, sc, err := gl.begin(FnMultiDrawElementsIndirect)
	if err != nil {
		return err
	}
	defer sc.Release()

	p, err := marshal.Slice(sc, cmds)
	if err != nil {
		return callErr(FnMultiDrawElementsIndirect, err)
	}
	n, stride := int32(len(cmds)), int32(0)
	return gl.call(FnMultiDrawElementsIndirect, nil,
		unsafe.Pointer(&mode), unsafe.Pointer(&typ), unsafe.Pointer(&p), unsafe.Pointer(&n), unsafe.Pointer(&stride))
}

// FenceSync calls glFenceSync.
func (gl *GL) FenceSync(condition, flags uint32) (Sync, error) {
	var s Sync
	err := gl.call(FnFenceSync, unsafe.Pointer(&s), unsafe.Pointer(&condition), unsafe.Pointer(&flags))
	return s, err
}

// ClientWaitSync calls glClientWaitSync and returns the wait status
// (ALREADY_SIGNALED, TIMEOUT_EXPIRED, CONDITION_SATISFIED or WAIT_FAILED).
// Negative timeouts are treated as zero.
func (gl *GL) ClientWaitSync(sync Sync, flags uint32, timeout time.Duration) (uint32, error) {
	ns := uint64(max(timeout, 0))
	return gl.retU32(FnClientWaitSync, unsafe.Pointer(&sync), unsafe.Pointer(&flags), unsafe.Pointer(&ns))
}

// WaitSync calls glWaitSync with TIMEOUT_IGNORED.
func (gl *GL) WaitSync(sync Sync) error {
	var flags uint32
	timeout := uint64(TIMEOUT_IGNORED)
	return gl.call(FnWaitSync, nil, unsafe.Pointer(&sync), unsafe.Pointer(&flags), unsafe.Pointer(&timeout))
}

// IsSync calls glIsSync.
func (gl *GL) IsSync(sync Sync) (bool, error) {
	return gl.retBool(FnIsSync, unsafe.Pointer(&sync))
}

// DeleteSync calls glDeleteSync.
func (gl *GL) DeleteSync(sync Sync) error {
	return gl.call(FnDeleteSync, nil, unsafe.Pointer(&sync))
}
