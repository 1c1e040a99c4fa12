package glbind

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/glbind/internal/marshal"
)

// sizeOf returns the byte size of n elements of T.
func sizeOf[T any](n int) int64 {
	var zero T
	return int64(n) * int64(unsafe.Sizeof(zero))
}

// BufferData calls glBufferData with the contents of data.
func (gl *GL) BufferData(target uint32, data []byte, usage uint32) error {
	return BufferDataOf(gl, target, data, usage)
}

// BufferDataOf calls glBufferData with the raw bytes of a typed slice.
// T must not contain Go pointers.
//
// Example:
//
//	verts := []float32{0, 0.5, -0.5, -0.5, 0.5, -0.5}
//	err := glbind.BufferDataOf(gl, glbind.ARRAY_BUFFER, verts, glbind.STATIC_DRAW)
func BufferDataOf[T any](gl *GL, target uint32, data []T, usage uint32) error {
	_, sc, err := gl.begin(FnBufferData)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, data)
	if err != nil {
		return callErr(FnBufferData, err)
	}
	size := sizeOf[T](len(data))
	return gl.call(FnBufferData, nil,
		unsafe.Pointer(&target), unsafe.Pointer(&size), unsafe.Pointer(&ptr), unsafe.Pointer(&usage))
}

// BufferDataSize calls glBufferData with a NULL data pointer, allocating
// size bytes of uninitialised storage.
func (gl *GL) BufferDataSize(target uint32, size int, usage uint32) error {
	sz := int64(size)
	var data unsafe.Pointer
	return gl.call(FnBufferData, nil,
		unsafe.Pointer(&target), unsafe.Pointer(&sz), unsafe.Pointer(&data), unsafe.Pointer(&usage))
}

// BufferSubData calls glBufferSubData with the contents of data.
func (gl *GL) BufferSubData(target uint32, offset int, data []byte) error {
	return BufferSubDataOf(gl, target, offset, data)
}

// BufferSubDataOf calls glBufferSubData with the raw bytes of a typed slice.
// offset is in bytes.
func BufferSubDataOf[T any](gl *GL, target uint32, offset int, data []T) error {
	_, sc, err := gl.begin(FnBufferSubData)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, data)
	if err != nil {
		return callErr(FnBufferSubData, err)
	}
	off, size := int64(offset), sizeOf[T](len(data))
	return gl.call(FnBufferSubData, nil,
		unsafe.Pointer(&target), unsafe.Pointer(&off), unsafe.Pointer(&size), unsafe.Pointer(&ptr))
}

// NamedBufferData calls glNamedBufferData with the contents of data.
func (gl *GL) NamedBufferData(buffer uint32, data []byte, usage uint32) error {
	_, sc, err := gl.begin(FnNamedBufferData)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, data)
	if err != nil {
		return callErr(FnNamedBufferData, err)
	}
	size := int64(len(data))
	return gl.call(FnNamedBufferData, nil,
		unsafe.Pointer(&buffer), unsafe.Pointer(&size), unsafe.Pointer(&ptr), unsafe.Pointer(&usage))
}

// TexImage2D calls glTexImage2D with the pixels in data.
func (gl *GL) TexImage2D(target uint32, level, internalFormat, width, height int32, format, typ uint32, data []byte) error {
	_, sc, err := gl.begin(FnTexImage2D)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, data)
	if err != nil {
		return callErr(FnTexImage2D, err)
	}
	return gl.texImage2D(target, level, internalFormat, width, height, format, typ, ptr)
}

// TexImage2DAlloc calls glTexImage2D with a NULL pixel pointer, allocating
// storage without uploading.
func (gl *GL) TexImage2DAlloc(target uint32, level, internalFormat, width, height int32, format, typ uint32) error {
	return gl.texImage2D(target, level, internalFormat, width, height, format, typ, nil)
}

func (gl *GL) texImage2D(target uint32, level, internalFormat, width, height int32, format, typ uint32, pixels unsafe.Pointer) error {
	var border int32
	return gl.call(FnTexImage2D, nil,
		unsafe.Pointer(&target), unsafe.Pointer(&level), unsafe.Pointer(&internalFormat),
		unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&border),
		unsafe.Pointer(&format), unsafe.Pointer(&typ), unsafe.Pointer(&pixels))
}

// TexSubImage2D calls glTexSubImage2D with the pixels in data.
func (gl *GL) TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, typ uint32, data []byte) error {
	_, sc, err := gl.begin(FnTexSubImage2D)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, data)
	if err != nil {
		return callErr(FnTexSubImage2D, err)
	}
	return gl.call(FnTexSubImage2D, nil,
		unsafe.Pointer(&target), unsafe.Pointer(&level), unsafe.Pointer(&xoffset), unsafe.Pointer(&yoffset),
		unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&format), unsafe.Pointer(&typ),
		unsafe.Pointer(&ptr))
}

// namesIn runs a (GLsizei n, const GLuint *names) call such as glDeleteBuffers.
func (gl *GL) namesIn(ep EntryPoint, names []uint32) error {
	_, sc, err := gl.begin(ep)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, names)
	if err != nil {
		return callErr(ep, err)
	}
	n := int32(len(names))
	return gl.call(ep, nil, unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

// DeleteBuffers calls glDeleteBuffers.
func (gl *GL) DeleteBuffers(buffers []uint32) error {
	return gl.namesIn(FnDeleteBuffers, buffers)
}

// DeleteVertexArrays calls glDeleteVertexArrays.
func (gl *GL) DeleteVertexArrays(arrays []uint32) error {
	return gl.namesIn(FnDeleteVertexArrays, arrays)
}

// DeleteTextures calls glDeleteTextures.
func (gl *GL) DeleteTextures(textures []uint32) error {
	return gl.namesIn(FnDeleteTextures, textures)
}

// DeleteFramebuffers calls glDeleteFramebuffers.
func (gl *GL) DeleteFramebuffers(framebuffers []uint32) error {
	return gl.namesIn(FnDeleteFramebuffers, framebuffers)
}

// DrawBuffers calls glDrawBuffers.
func (gl *GL) DrawBuffers(buffers []uint32) error {
	return gl.namesIn(FnDrawBuffers, buffers)
}

// InvalidateFramebuffer calls glInvalidateFramebuffer.
func (gl *GL) InvalidateFramebuffer(target uint32, attachments []uint32) error {
	_, sc, err := gl.begin(FnInvalidateFramebuffer)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, attachments)
	if err != nil {
		return callErr(FnInvalidateFramebuffer, err)
	}
	n := int32(len(attachments))
	return gl.call(FnInvalidateFramebuffer, nil, unsafe.Pointer(&target), unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

// BindBuffersBase calls glBindBuffersBase.
func (gl *GL) BindBuffersBase(target, first uint32, buffers []uint32) error {
	_, sc, err := gl.begin(FnBindBuffersBase)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, buffers)
	if err != nil {
		return callErr(FnBindBuffersBase, err)
	}
	n := int32(len(buffers))
	return gl.call(FnBindBuffersBase, nil,
		unsafe.Pointer(&target), unsafe.Pointer(&first), unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

// uniformv runs a (GLint location, GLsizei count, const T *value) call.
// width is the number of components per element.
func uniformv[T any](gl *GL, ep EntryPoint, location int32, width int, v []T) error {
	_, sc, err := gl.begin(ep)
	if err != nil {
		return err
	}
	defer sc.Release()

	if len(v)%width != 0 {
		return callErr(ep, fmt.Errorf("%w: %d values is not a multiple of %d", ErrLengthMismatch, len(v), width))
	}
	ptr, err := marshal.Slice(sc, v)
	if err != nil {
		return callErr(ep, err)
	}
	count := int32(len(v) / width)
	return gl.call(ep, nil, unsafe.Pointer(&location), unsafe.Pointer(&count), unsafe.Pointer(&ptr))
}

// Uniform1fv calls glUniform1fv with one element per value.
func (gl *GL) Uniform1fv(location int32, v []float32) error {
	return uniformv(gl, FnUniform1fv, location, 1, v)
}

// Uniform4fv calls glUniform4fv. len(v) must be a multiple of 4.
func (gl *GL) Uniform4fv(location int32, v []float32) error {
	return uniformv(gl, FnUniform4fv, location, 4, v)
}

// Uniform1iv calls glUniform1iv.
func (gl *GL) Uniform1iv(location int32, v []int32) error {
	return uniformv(gl, FnUniform1iv, location, 1, v)
}

// UniformMatrix4fv calls glUniformMatrix4fv. len(v) must be a multiple
// of 16.
func (gl *GL) UniformMatrix4fv(location int32, transpose bool, v []float32) error {
	_, sc, err := gl.begin(FnUniformMatrix4fv)
	if err != nil {
		return err
	}
	defer sc.Release()

	if len(v)%16 != 0 {
		return callErr(FnUniformMatrix4fv, fmt.Errorf("%w: %d values is not a multiple of 16", ErrLengthMismatch, len(v)))
	}
	ptr, err := marshal.Slice(sc, v)
	if err != nil {
		return callErr(FnUniformMatrix4fv, err)
	}
	count := int32(len(v) / 16)
	tr := boolByte(transpose)
	return gl.call(FnUniformMatrix4fv, nil,
		unsafe.Pointer(&location), unsafe.Pointer(&count), unsafe.Pointer(&tr), unsafe.Pointer(&ptr))
}

// ClearBufferfv calls glClearBufferfv.
func (gl *GL) ClearBufferfv(buffer uint32, drawBuffer int32, value []float32) error {
	_, sc, err := gl.begin(FnClearBufferfv)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, value)
	if err != nil {
		return callErr(FnClearBufferfv, err)
	}
	return gl.call(FnClearBufferfv, nil, unsafe.Pointer(&buffer), unsafe.Pointer(&drawBuffer), unsafe.Pointer(&ptr))
}

// ProgramBinary calls glProgramBinary.
func (gl *GL) ProgramBinary(program, format uint32, binary []byte) error {
	_, sc, err := gl.begin(FnProgramBinary)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, binary)
	if err != nil {
		return callErr(FnProgramBinary, err)
	}
	n := int32(len(binary))
	return gl.call(FnProgramBinary, nil,
		unsafe.Pointer(&program), unsafe.Pointer(&format), unsafe.Pointer(&ptr), unsafe.Pointer(&n))
}

// nameCall runs a call whose last argument is a NUL-terminated name and
// whose leading arguments are given.
func (gl *GL) nameCall(ep EntryPoint, ret unsafe.Pointer, name string, lead ...unsafe.Pointer) error {
	_, sc, err := gl.begin(ep)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := sc.CString(name)
	if err != nil {
		return callErr(ep, err)
	}
	return gl.call(ep, ret, append(lead, unsafe.Pointer(&ptr))...)
}

// GetUniformLocation calls glGetUniformLocation.
func (gl *GL) GetUniformLocation(program uint32, name string) (int32, error) {
	var loc int32
	err := gl.nameCall(FnGetUniformLocation, unsafe.Pointer(&loc), name, unsafe.Pointer(&program))
	return loc, err
}

// GetAttribLocation calls glGetAttribLocation.
func (gl *GL) GetAttribLocation(program uint32, name string) (int32, error) {
	var loc int32
	err := gl.nameCall(FnGetAttribLocation, unsafe.Pointer(&loc), name, unsafe.Pointer(&program))
	return loc, err
}

// GetUniformBlockIndex calls glGetUniformBlockIndex.
func (gl *GL) GetUniformBlockIndex(program uint32, name string) (uint32, error) {
	var idx uint32
	err := gl.nameCall(FnGetUniformBlockIndex, unsafe.Pointer(&idx), name, unsafe.Pointer(&program))
	return idx, err
}

// BindAttribLocation calls glBindAttribLocation.
func (gl *GL) BindAttribLocation(program, index uint32, name string) error {
	return gl.nameCall(FnBindAttribLocation, nil, name, unsafe.Pointer(&program), unsafe.Pointer(&index))
}

// labelCall runs a (…, GLsizei length, const GLchar *text) call with an
// explicit byte length.
func (gl *GL) labelCall(ep EntryPoint, text string, lead ...unsafe.Pointer) error {
	_, sc, err := gl.begin(ep)
	if err != nil {
		return err
	}
	defer sc.Release()

	enc, err := sc.Codec().Encode(text)
	if err != nil {
		return callErr(ep, err)
	}
	buf := sc.Bytes(len(enc) + 1)
	copy(buf, enc)
	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	n := int32(len(enc))
	return gl.call(ep, nil, append(lead, unsafe.Pointer(&n), unsafe.Pointer(&ptr))...)
}

// ObjectLabel calls glObjectLabel.
func (gl *GL) ObjectLabel(identifier, name uint32, label string) error {
	return gl.labelCall(FnObjectLabel, label, unsafe.Pointer(&identifier), unsafe.Pointer(&name))
}

// PushDebugGroup calls glPushDebugGroup.
func (gl *GL) PushDebugGroup(source, id uint32, message string) error {
	return gl.labelCall(FnPushDebugGroup, message, unsafe.Pointer(&source), unsafe.Pointer(&id))
}

// DebugMessageInsert calls glDebugMessageInsert.
func (gl *GL) DebugMessageInsert(source, typ, id, severity uint32, message string) error {
	return gl.labelCall(FnDebugMessageInsert, message,
		unsafe.Pointer(&source), unsafe.Pointer(&typ), unsafe.Pointer(&id), unsafe.Pointer(&severity))
}
