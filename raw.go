package glbind

import "unsafe"

// Raw is the pass-through surface. Arguments travel in native shape: no
// copying, no validation and no pinning. Pointers handed to Raw must stay
// valid for the duration of the call and must not point to Go memory that
// can move; callers that pass Go memory pin it themselves.
type Raw struct {
	t *Table
}

func (r *Raw) table() *Table {
	if r == nil {
		return nil
	}
	return r.t
}

// Call invokes any bound entry point. args[i] points at the i-th argument
// value and ret at storage for the result (nil for void).
func (r *Raw) Call(ep EntryPoint, ret unsafe.Pointer, args ...unsafe.Pointer) error {
	return r.table().call(ep, ret, args)
}

func (r *Raw) call0(ep EntryPoint) error {
	return r.table().call(ep, nil, nil)
}

func (r *Raw) callU32(ep EntryPoint, a uint32) error {
	return r.table().call(ep, nil, []unsafe.Pointer{unsafe.Pointer(&a)})
}

func (r *Raw) callU32x2(ep EntryPoint, a, b uint32) error {
	return r.table().call(ep, nil, []unsafe.Pointer{unsafe.Pointer(&a), unsafe.Pointer(&b)})
}

// genDelete covers the glGen*/glDelete* shape: (GLsizei n, GLuint *names).
func (r *Raw) genDelete(ep EntryPoint, n int32, names *uint32) error {
	return r.table().call(ep, nil, []unsafe.Pointer{unsafe.Pointer(&n), unsafe.Pointer(&names)})
}

// GetError calls glGetError.
func (r *Raw) GetError() (uint32, error) {
	var ret uint32
	err := r.table().call(FnGetError, unsafe.Pointer(&ret), nil)
	return ret, err
}

// GetString calls glGetString and returns the native pointer.
func (r *Raw) GetString(name uint32) (unsafe.Pointer, error) {
	var ret unsafe.Pointer
	err := r.table().call(FnGetString, unsafe.Pointer(&ret), []unsafe.Pointer{unsafe.Pointer(&name)})
	return ret, err
}

// GetIntegerv calls glGetIntegerv.
func (r *Raw) GetIntegerv(pname uint32, data *int32) error {
	return r.table().call(FnGetIntegerv, nil, []unsafe.Pointer{unsafe.Pointer(&pname), unsafe.Pointer(&data)})
}

// Enable calls glEnable.
func (r *Raw) Enable(capability uint32) error { return r.callU32(FnEnable, capability) }

// Disable calls glDisable.
func (r *Raw) Disable(capability uint32) error { return r.callU32(FnDisable, capability) }

// Clear calls glClear.
func (r *Raw) Clear(mask uint32) error { return r.callU32(FnClear, mask) }

// ClearColor calls glClearColor.
func (r *Raw) ClearColor(red, green, blue, alpha float32) error {
	return r.table().call(FnClearColor, nil, []unsafe.Pointer{
		unsafe.Pointer(&red), unsafe.Pointer(&green), unsafe.Pointer(&blue), unsafe.Pointer(&alpha),
	})
}

// Viewport calls glViewport.
func (r *Raw) Viewport(x, y, width, height int32) error {
	return r.table().call(FnViewport, nil, []unsafe.Pointer{
		unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height),
	})
}

// Flush calls glFlush.
func (r *Raw) Flush() error { return r.call0(FnFlush) }

// Finish calls glFinish.
func (r *Raw) Finish() error { return r.call0(FnFinish) }

// DrawArrays calls glDrawArrays.
func (r *Raw) DrawArrays(mode uint32, first, count int32) error {
	return r.table().call(FnDrawArrays, nil, []unsafe.Pointer{
		unsafe.Pointer(&mode), unsafe.Pointer(&first), unsafe.Pointer(&count),
	})
}

// DrawElements calls glDrawElements. indices is a byte offset into the bound
// element buffer or a client address.
func (r *Raw) DrawElements(mode uint32, count int32, typ uint32, indices uintptr) error {
	return r.table().call(FnDrawElements, nil, []unsafe.Pointer{
		unsafe.Pointer(&mode), unsafe.Pointer(&count), unsafe.Pointer(&typ), unsafe.Pointer(&indices),
	})
}

// GenBuffers calls glGenBuffers.
func (r *Raw) GenBuffers(n int32, buffers *uint32) error {
	return r.genDelete(FnGenBuffers, n, buffers)
}

// DeleteBuffers calls glDeleteBuffers.
func (r *Raw) DeleteBuffers(n int32, buffers *uint32) error {
	return r.genDelete(FnDeleteBuffers, n, buffers)
}

// BindBuffer calls glBindBuffer.
func (r *Raw) BindBuffer(target, buffer uint32) error {
	return r.callU32x2(FnBindBuffer, target, buffer)
}

// BufferData calls glBufferData.
func (r *Raw) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) error {
	sz := int64(size)
	return r.table().call(FnBufferData, nil, []unsafe.Pointer{
		unsafe.Pointer(&target), unsafe.Pointer(&sz), unsafe.Pointer(&data), unsafe.Pointer(&usage),
	})
}

// BufferSubData calls glBufferSubData.
func (r *Raw) BufferSubData(target uint32, offset, size int, data unsafe.Pointer) error {
	off, sz := int64(offset), int64(size)
	return r.table().call(FnBufferSubData, nil, []unsafe.Pointer{
		unsafe.Pointer(&target), unsafe.Pointer(&off), unsafe.Pointer(&sz), unsafe.Pointer(&data),
	})
}

// MapBufferRange calls glMapBufferRange and returns the mapped address.
func (r *Raw) MapBufferRange(target uint32, offset, length int, access uint32) (unsafe.Pointer, error) {
	off, n := int64(offset), int64(length)
	var ret unsafe.Pointer
	err := r.table().call(FnMapBufferRange, unsafe.Pointer(&ret), []unsafe.Pointer{
		unsafe.Pointer(&target), unsafe.Pointer(&off), unsafe.Pointer(&n), unsafe.Pointer(&access),
	})
	return ret, err
}

// UnmapBuffer calls glUnmapBuffer.
func (r *Raw) UnmapBuffer(target uint32) (bool, error) {
	var ret uint8
	err := r.table().call(FnUnmapBuffer, unsafe.Pointer(&ret), []unsafe.Pointer{unsafe.Pointer(&target)})
	return ret != 0, err
}

// GenVertexArrays calls glGenVertexArrays.
func (r *Raw) GenVertexArrays(n int32, arrays *uint32) error {
	return r.genDelete(FnGenVertexArrays, n, arrays)
}

// BindVertexArray calls glBindVertexArray.
func (r *Raw) BindVertexArray(array uint32) error {
	return r.callU32(FnBindVertexArray, array)
}

// VertexAttribPointer calls glVertexAttribPointer. offset is a byte offset
// into the bound array buffer.
func (r *Raw) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) error {
	norm := boolByte(normalized)
	return r.table().call(FnVertexAttribPointer, nil, []unsafe.Pointer{
		unsafe.Pointer(&index), unsafe.Pointer(&size), unsafe.Pointer(&typ),
		unsafe.Pointer(&norm), unsafe.Pointer(&stride), unsafe.Pointer(&offset),
	})
}

// EnableVertexAttribArray calls glEnableVertexAttribArray.
func (r *Raw) EnableVertexAttribArray(index uint32) error {
	return r.callU32(FnEnableVertexAttribArray, index)
}

// CreateShader calls glCreateShader.
func (r *Raw) CreateShader(typ uint32) (uint32, error) {
	var ret uint32
	err := r.table().call(FnCreateShader, unsafe.Pointer(&ret), []unsafe.Pointer{unsafe.Pointer(&typ)})
	return ret, err
}

// ShaderSource calls glShaderSource. strings is a native array of count
// char pointers; lengths may be nil.
func (r *Raw) ShaderSource(shader uint32, count int32, strings unsafe.Pointer, lengths *int32) error {
	return r.table().call(FnShaderSource, nil, []unsafe.Pointer{
		unsafe.Pointer(&shader), unsafe.Pointer(&count), unsafe.Pointer(&strings), unsafe.Pointer(&lengths),
	})
}

// CompileShader calls glCompileShader.
func (r *Raw) CompileShader(shader uint32) error { return r.callU32(FnCompileShader, shader) }

// GetShaderiv calls glGetShaderiv.
func (r *Raw) GetShaderiv(shader, pname uint32, params *int32) error {
	return r.table().call(FnGetShaderiv, nil, []unsafe.Pointer{
		unsafe.Pointer(&shader), unsafe.Pointer(&pname), unsafe.Pointer(&params),
	})
}

// GetShaderInfoLog calls glGetShaderInfoLog.
func (r *Raw) GetShaderInfoLog(shader uint32, bufSize int32, length *int32, infoLog *byte) error {
	return r.table().call(FnGetShaderInfoLog, nil, []unsafe.Pointer{
		unsafe.Pointer(&shader), unsafe.Pointer(&bufSize), unsafe.Pointer(&length), unsafe.Pointer(&infoLog),
	})
}

// CreateProgram calls glCreateProgram.
func (r *Raw) CreateProgram() (uint32, error) {
	var ret uint32
	err := r.table().call(FnCreateProgram, unsafe.Pointer(&ret), nil)
	return ret, err
}

// AttachShader calls glAttachShader.
func (r *Raw) AttachShader(program, shader uint32) error {
	return r.callU32x2(FnAttachShader, program, shader)
}

// LinkProgram calls glLinkProgram.
func (r *Raw) LinkProgram(program uint32) error { return r.callU32(FnLinkProgram, program) }

// UseProgram calls glUseProgram.
func (r *Raw) UseProgram(program uint32) error { return r.callU32(FnUseProgram, program) }

// GetUniformLocation calls glGetUniformLocation. name must be
// NUL-terminated.
func (r *Raw) GetUniformLocation(program uint32, name *byte) (int32, error) {
	var ret int32
	err := r.table().call(FnGetUniformLocation, unsafe.Pointer(&ret), []unsafe.Pointer{
		unsafe.Pointer(&program), unsafe.Pointer(&name),
	})
	return ret, err
}

// Uniform4fv calls glUniform4fv.
func (r *Raw) Uniform4fv(location, count int32, value *float32) error {
	return r.table().call(FnUniform4fv, nil, []unsafe.Pointer{
		unsafe.Pointer(&location), unsafe.Pointer(&count), unsafe.Pointer(&value),
	})
}

// UniformMatrix4fv calls glUniformMatrix4fv.
func (r *Raw) UniformMatrix4fv(location, count int32, transpose bool, value *float32) error {
	tr := boolByte(transpose)
	return r.table().call(FnUniformMatrix4fv, nil, []unsafe.Pointer{
		unsafe.Pointer(&location), unsafe.Pointer(&count), unsafe.Pointer(&tr), unsafe.Pointer(&value),
	})
}

// MultiDrawElements calls glMultiDrawElements. indices is a native array of
// drawcount index addresses.
func (r *Raw) MultiDrawElements(mode uint32, count *int32, typ uint32, indices unsafe.Pointer, drawcount int32) error {
	return r.table().call(FnMultiDrawElements, nil, []unsafe.Pointer{
		unsafe.Pointer(&mode), unsafe.Pointer(&count), unsafe.Pointer(&typ),
		unsafe.Pointer(&indices), unsafe.Pointer(&drawcount),
	})
}

// DrawArraysIndirect calls glDrawArraysIndirect. indirect is an offset into
// the bound draw-indirect buffer or a client address.
func (r *Raw) DrawArraysIndirect(mode uint32, indirect uintptr) error {
	return r.table().call(FnDrawArraysIndirect, nil, []unsafe.Pointer{
		unsafe.Pointer(&mode), unsafe.Pointer(&indirect),
	})
}

// DrawElementsIndirect calls glDrawElementsIndirect.
func (r *Raw) DrawElementsIndirect(mode, typ uint32, indirect uintptr) error {
	return r.table().call(FnDrawElementsIndirect, nil, []unsafe.Pointer{
		unsafe.Pointer(&mode), unsafe.Pointer(&typ), unsafe.Pointer(&indirect),
	})
}

// FenceSync calls glFenceSync.
func (r *Raw) FenceSync(condition, flags uint32) (Sync, error) {
	var ret Sync
	err := r.table().call(FnFenceSync, unsafe.Pointer(&ret), []unsafe.Pointer{
		unsafe.Pointer(&condition), unsafe.Pointer(&flags),
	})
	return ret, err
}

// ClientWaitSync calls glClientWaitSync.
func (r *Raw) ClientWaitSync(sync Sync, flags uint32, timeout uint64) (uint32, error) {
	var ret uint32
	err := r.table().call(FnClientWaitSync, unsafe.Pointer(&ret), []unsafe.Pointer{
		unsafe.Pointer(&sync), unsafe.Pointer(&flags), unsafe.Pointer(&timeout),
	})
	return ret, err
}

// DeleteSync calls glDeleteSync.
func (r *Raw) DeleteSync(sync Sync) error {
	return r.table().call(FnDeleteSync, nil, []unsafe.Pointer{unsafe.Pointer(&sync)})
}

// DispatchCompute calls glDispatchCompute.
func (r *Raw) DispatchCompute(x, y, z uint32) error {
	return r.table().call(FnDispatchCompute, nil, []unsafe.Pointer{
		unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z),
	})
}

// ReadPixels calls glReadPixels.
func (r *Raw) ReadPixels(x, y, width, height int32, format, typ uint32, pixels unsafe.Pointer) error {
	return r.table().call(FnReadPixels, nil, []unsafe.Pointer{
		unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height),
		unsafe.Pointer(&format), unsafe.Pointer(&typ), unsafe.Pointer(&pixels),
	})
}

// TexImage2D calls glTexImage2D. pixels may be nil.
func (r *Raw) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, typ uint32, pixels unsafe.Pointer) error {
	return r.table().call(FnTexImage2D, nil, []unsafe.Pointer{
		unsafe.Pointer(&target), unsafe.Pointer(&level), unsafe.Pointer(&internalFormat),
		unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&border),
		unsafe.Pointer(&format), unsafe.Pointer(&typ), unsafe.Pointer(&pixels),
	})
}

// DebugMessageCallback calls glDebugMessageCallback. callback is a native
// function address, e.g. one made with goffi's NewCallback.
func (r *Raw) DebugMessageCallback(callback, userParam uintptr) error {
	return r.table().call(FnDebugMessageCallback, nil, []unsafe.Pointer{
		unsafe.Pointer(&callback), unsafe.Pointer(&userParam),
	})
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
