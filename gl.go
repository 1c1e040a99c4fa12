package glbind

import (
	"unsafe"

	"github.com/gogpu/glbind/internal/marshal"
)

// GL is the marshaling surface. It takes Go slices, strings and structs and
// converts them into the shapes the native ABI expects. Every conversion is
// scoped to one call: inputs are pinned only while the native function runs,
// and results are copied into Go memory before the method returns.
//
// Empty input slices fail with ErrEmptyInput. Entry points that legitimately
// take NULL have dedicated methods (BufferDataSize, TexImage2DAlloc).
type GL struct {
	t *Table
}

func (gl *GL) table() *Table {
	if gl == nil {
		return nil
	}
	return gl.t
}

// Table returns the table gl calls through.
func (gl *GL) Table() *Table { return gl.table() }

func (gl *GL) call(ep EntryPoint, ret unsafe.Pointer, args ...unsafe.Pointer) error {
	return gl.table().call(ep, ret, args)
}

// begin checks that ep is callable and opens a conversion scope for it.
// The caller must Release the scope.
func (gl *GL) begin(ep EntryPoint) (*Table, *marshal.Scope, error) {
	t := gl.table()
	if _, err := t.lookup(ep); err != nil {
		return nil, nil, err
	}
	return t, t.scope(), nil
}

func (gl *GL) u32(ep EntryPoint, a uint32) error {
	return gl.call(ep, nil, unsafe.Pointer(&a))
}

func (gl *GL) u32x2(ep EntryPoint, a, b uint32) error {
	return gl.call(ep, nil, unsafe.Pointer(&a), unsafe.Pointer(&b))
}

func (gl *GL) u32x3(ep EntryPoint, a, b, c uint32) error {
	return gl.call(ep, nil, unsafe.Pointer(&a), unsafe.Pointer(&b), unsafe.Pointer(&c))
}

func (gl *GL) retU32(ep EntryPoint, args ...unsafe.Pointer) (uint32, error) {
	var ret uint32
	err := gl.call(ep, unsafe.Pointer(&ret), args...)
	return ret, err
}

func (gl *GL) retBool(ep EntryPoint, args ...unsafe.Pointer) (bool, error) {
	var ret uint8
	err := gl.call(ep, unsafe.Pointer(&ret), args...)
	return ret != 0, err
}

// GetError calls glGetError.
func (gl *GL) GetError() (uint32, error) { return gl.retU32(FnGetError) }

// Enable calls glEnable.
func (gl *GL) Enable(capability uint32) error { return gl.u32(FnEnable, capability) }

// Disable calls glDisable.
func (gl *GL) Disable(capability uint32) error { return gl.u32(FnDisable, capability) }

// IsEnabled calls glIsEnabled.
func (gl *GL) IsEnabled(capability uint32) (bool, error) {
	return gl.retBool(FnIsEnabled, unsafe.Pointer(&capability))
}

// Clear calls glClear.
func (gl *GL) Clear(mask uint32) error { return gl.u32(FnClear, mask) }

// ClearColor calls glClearColor.
func (gl *GL) ClearColor(red, green, blue, alpha float32) error {
	return gl.call(FnClearColor, nil,
		unsafe.Pointer(&red), unsafe.Pointer(&green), unsafe.Pointer(&blue), unsafe.Pointer(&alpha))
}

// ClearDepth calls glClearDepth.
func (gl *GL) ClearDepth(depth float64) error {
	return gl.call(FnClearDepth, nil, unsafe.Pointer(&depth))
}

// Viewport calls glViewport.
func (gl *GL) Viewport(x, y, width, height int32) error {
	return gl.call(FnViewport, nil,
		unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// Scissor calls glScissor.
func (gl *GL) Scissor(x, y, width, height int32) error {
	return gl.call(FnScissor, nil,
		unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// DepthFunc calls glDepthFunc.
func (gl *GL) DepthFunc(fn uint32) error { return gl.u32(FnDepthFunc, fn) }

// DepthMask calls glDepthMask.
func (gl *GL) DepthMask(flag bool) error {
	b := boolByte(flag)
	return gl.call(FnDepthMask, nil, unsafe.Pointer(&b))
}

// CullFace calls glCullFace.
func (gl *GL) CullFace(mode uint32) error { return gl.u32(FnCullFace, mode) }

// BlendFunc calls glBlendFunc.
func (gl *GL) BlendFunc(sfactor, dfactor uint32) error {
	return gl.u32x2(FnBlendFunc, sfactor, dfactor)
}

// PixelStorei calls glPixelStorei.
func (gl *GL) PixelStorei(pname uint32, param int32) error {
	return gl.call(FnPixelStorei, nil, unsafe.Pointer(&pname), unsafe.Pointer(&param))
}

// Flush calls glFlush.
func (gl *GL) Flush() error { return gl.call(FnFlush, nil) }

// Finish calls glFinish.
func (gl *GL) Finish() error { return gl.call(FnFinish, nil) }

// DrawArrays calls glDrawArrays.
func (gl *GL) DrawArrays(mode uint32, first, count int32) error {
	return gl.call(FnDrawArrays, nil, unsafe.Pointer(&mode), unsafe.Pointer(&first), unsafe.Pointer(&count))
}

// DrawArraysInstanced calls glDrawArraysInstanced.
func (gl *GL) DrawArraysInstanced(mode uint32, first, count, instances int32) error {
	return gl.call(FnDrawArraysInstanced, nil,
		unsafe.Pointer(&mode), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&instances))
}

// DrawElements calls glDrawElements with indices read from the bound element
// buffer starting at byte offset.
func (gl *GL) DrawElements(mode uint32, count int32, typ uint32, offset int) error {
	off := uintptr(offset)
	return gl.call(FnDrawElements, nil,
		unsafe.Pointer(&mode), unsafe.Pointer(&count), unsafe.Pointer(&typ), unsafe.Pointer(&off))
}

// DrawElementsInstanced calls glDrawElementsInstanced with an element buffer
// offset.
func (gl *GL) DrawElementsInstanced(mode uint32, count int32, typ uint32, offset int, instances int32) error {
	off := uintptr(offset)
	return gl.call(FnDrawElementsInstanced, nil,
		unsafe.Pointer(&mode), unsafe.Pointer(&count), unsafe.Pointer(&typ), unsafe.Pointer(&off),
		unsafe.Pointer(&instances))
}

// BindBuffer calls glBindBuffer.
func (gl *GL) BindBuffer(target, buffer uint32) error {
	return gl.u32x2(FnBindBuffer, target, buffer)
}

// BindBufferBase calls glBindBufferBase.
func (gl *GL) BindBufferBase(target, index, buffer uint32) error {
	return gl.u32x3(FnBindBufferBase, target, index, buffer)
}

// IsBuffer calls glIsBuffer.
func (gl *GL) IsBuffer(buffer uint32) (bool, error) {
	return gl.retBool(FnIsBuffer, unsafe.Pointer(&buffer))
}

// BindVertexArray calls glBindVertexArray.
func (gl *GL) BindVertexArray(array uint32) error { return gl.u32(FnBindVertexArray, array) }

// EnableVertexAttribArray calls glEnableVertexAttribArray.
func (gl *GL) EnableVertexAttribArray(index uint32) error {
	return gl.u32(FnEnableVertexAttribArray, index)
}

// DisableVertexAttribArray calls glDisableVertexAttribArray.
func (gl *GL) DisableVertexAttribArray(index uint32) error {
	return gl.u32(FnDisableVertexAttribArray, index)
}

// VertexAttribFormat calls glVertexAttribFormat.
func (gl *GL) VertexAttribFormat(index uint32, size int32, typ uint32, normalized bool, relativeOffset uint32) error {
	norm := boolByte(normalized)
	return gl.call(FnVertexAttribFormat, nil,
		unsafe.Pointer(&index), unsafe.Pointer(&size), unsafe.Pointer(&typ), unsafe.Pointer(&norm),
		unsafe.Pointer(&relativeOffset))
}

// VertexAttribBinding calls glVertexAttribBinding.
func (gl *GL) VertexAttribBinding(index, binding uint32) error {
	return gl.u32x2(FnVertexAttribBinding, index, binding)
}

// BindVertexBuffer calls glBindVertexBuffer.
func (gl *GL) BindVertexBuffer(binding, buffer uint32, offset int, stride int32) error {
	off := int64(offset)
	return gl.call(FnBindVertexBuffer, nil,
		unsafe.Pointer(&binding), unsafe.Pointer(&buffer), unsafe.Pointer(&off), unsafe.Pointer(&stride))
}

// VertexAttribDivisor calls glVertexAttribDivisor.
func (gl *GL) VertexAttribDivisor(index, divisor uint32) error {
	return gl.u32x2(FnVertexAttribDivisor, index, divisor)
}

// ActiveTexture calls glActiveTexture.
func (gl *GL) ActiveTexture(texture uint32) error { return gl.u32(FnActiveTexture, texture) }

// BindTexture calls glBindTexture.
func (gl *GL) BindTexture(target, texture uint32) error {
	return gl.u32x2(FnBindTexture, target, texture)
}

// TexParameteri calls glTexParameteri.
func (gl *GL) TexParameteri(target, pname uint32, param int32) error {
	return gl.call(FnTexParameteri, nil, unsafe.Pointer(&target), unsafe.Pointer(&pname), unsafe.Pointer(&param))
}

// TexStorage2D calls glTexStorage2D.
func (gl *GL) TexStorage2D(target uint32, levels int32, internalFormat uint32, width, height int32) error {
	return gl.call(FnTexStorage2D, nil,
		unsafe.Pointer(&target), unsafe.Pointer(&levels), unsafe.Pointer(&internalFormat),
		unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// GenerateMipmap calls glGenerateMipmap.
func (gl *GL) GenerateMipmap(target uint32) error { return gl.u32(FnGenerateMipmap, target) }

// BindFramebuffer calls glBindFramebuffer.
func (gl *GL) BindFramebuffer(target, framebuffer uint32) error {
	return gl.u32x2(FnBindFramebuffer, target, framebuffer)
}

// FramebufferTexture2D calls glFramebufferTexture2D.
func (gl *GL) FramebufferTexture2D(target, attachment, texTarget, texture uint32, level int32) error {
	return gl.call(FnFramebufferTexture2D, nil,
		unsafe.Pointer(&target), unsafe.Pointer(&attachment), unsafe.Pointer(&texTarget),
		unsafe.Pointer(&texture), unsafe.Pointer(&level))
}

// CheckFramebufferStatus calls glCheckFramebufferStatus.
func (gl *GL) CheckFramebufferStatus(target uint32) (uint32, error) {
	return gl.retU32(FnCheckFramebufferStatus, unsafe.Pointer(&target))
}

// CreateShader calls glCreateShader.
func (gl *GL) CreateShader(typ uint32) (uint32, error) {
	return gl.retU32(FnCreateShader, unsafe.Pointer(&typ))
}

// DeleteShader calls glDeleteShader.
func (gl *GL) DeleteShader(shader uint32) error { return gl.u32(FnDeleteShader, shader) }

// CompileShader calls glCompileShader.
func (gl *GL) CompileShader(shader uint32) error { return gl.u32(FnCompileShader, shader) }

// CreateProgram calls glCreateProgram.
func (gl *GL) CreateProgram() (uint32, error) { return gl.retU32(FnCreateProgram) }

// DeleteProgram calls glDeleteProgram.
func (gl *GL) DeleteProgram(program uint32) error { return gl.u32(FnDeleteProgram, program) }

// AttachShader calls glAttachShader.
func (gl *GL) AttachShader(program, shader uint32) error {
	return gl.u32x2(FnAttachShader, program, shader)
}

// DetachShader calls glDetachShader.
func (gl *GL) DetachShader(program, shader uint32) error {
	return gl.u32x2(FnDetachShader, program, shader)
}

// LinkProgram calls glLinkProgram.
func (gl *GL) LinkProgram(program uint32) error { return gl.u32(FnLinkProgram, program) }

// ValidateProgram calls glValidateProgram.
func (gl *GL) ValidateProgram(program uint32) error {
	return gl.u32(FnValidateProgram, program)
}

// UseProgram calls glUseProgram.
func (gl *GL) UseProgram(program uint32) error { return gl.u32(FnUseProgram, program) }

// Uniform1i calls glUniform1i.
func (gl *GL) Uniform1i(location, v int32) error {
	return gl.call(FnUniform1i, nil, unsafe.Pointer(&location), unsafe.Pointer(&v))
}

// Uniform1f calls glUniform1f.
func (gl *GL) Uniform1f(location int32, v float32) error {
	return gl.call(FnUniform1f, nil, unsafe.Pointer(&location), unsafe.Pointer(&v))
}

// Uniform4f calls glUniform4f.
func (gl *GL) Uniform4f(location int32, x, y, z, w float32) error {
	return gl.call(FnUniform4f, nil,
		unsafe.Pointer(&location), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z), unsafe.Pointer(&w))
}

// UniformBlockBinding calls glUniformBlockBinding.
func (gl *GL) UniformBlockBinding(program, blockIndex, binding uint32) error {
	return gl.u32x3(FnUniformBlockBinding, program, blockIndex, binding)
}

// DispatchCompute calls glDispatchCompute.
func (gl *GL) DispatchCompute(x, y, z uint32) error {
	return gl.u32x3(FnDispatchCompute, x, y, z)
}

// MemoryBarrier calls glMemoryBarrier.
func (gl *GL) MemoryBarrier(barriers uint32) error {
	return gl.u32(FnMemoryBarrier, barriers)
}

// PopDebugGroup calls glPopDebugGroup.
func (gl *GL) PopDebugGroup() error { return gl.call(FnPopDebugGroup, nil) }
