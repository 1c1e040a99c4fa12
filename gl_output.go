package glbind

import (
	"unsafe"

	"github.com/gogpu/glbind/internal/marshal"
)

// maxCapacity bounds growable outputs so bufSize fits a GLsizei.
const maxCapacity = 1 << 30

// fillOut runs a (GLenum pname, T *data) style call, filling out in place.
func fillOut[T any](gl *GL, ep EntryPoint, out []T, lead ...unsafe.Pointer) error {
	_, sc, err := gl.begin(ep)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, out)
	if err != nil {
		return callErr(ep, err)
	}
	return gl.call(ep, nil, append(lead, unsafe.Pointer(&ptr))...)
}

// GetIntegerv calls glGetIntegerv, writing into out.
func (gl *GL) GetIntegerv(pname uint32, out []int32) error {
	return fillOut(gl, FnGetIntegerv, out, unsafe.Pointer(&pname))
}

// GetInteger returns a single-valued integer state.
func (gl *GL) GetInteger(pname uint32) (int32, error) {
	var v [1]int32
	err := gl.GetIntegerv(pname, v[:])
	return v[0], err
}

// GetInteger64v calls glGetInteger64v, writing into out.
func (gl *GL) GetInteger64v(pname uint32, out []int64) error {
	return fillOut(gl, FnGetInteger64v, out, unsafe.Pointer(&pname))
}

// GetInteger64 returns a single-valued 64-bit integer state.
func (gl *GL) GetInteger64(pname uint32) (int64, error) {
	var v [1]int64
	err := gl.GetInteger64v(pname, v[:])
	return v[0], err
}

// GetFloatv calls glGetFloatv, writing into out.
func (gl *GL) GetFloatv(pname uint32, out []float32) error {
	return fillOut(gl, FnGetFloatv, out, unsafe.Pointer(&pname))
}

// GetIntegeri calls glGetIntegeri_v for a single indexed value.
func (gl *GL) GetIntegeri(target, index uint32) (int32, error) {
	var v [1]int32
	err := fillOut(gl, FnGetIntegeriV, v[:], unsafe.Pointer(&target), unsafe.Pointer(&index))
	return v[0], err
}

// GetShaderiv returns a shader parameter.
func (gl *GL) GetShaderiv(shader, pname uint32) (int32, error) {
	var v [1]int32
	err := fillOut(gl, FnGetShaderiv, v[:], unsafe.Pointer(&shader), unsafe.Pointer(&pname))
	return v[0], err
}

// GetProgramiv returns a program parameter.
func (gl *GL) GetProgramiv(program, pname uint32) (int32, error) {
	var v [1]int32
	err := fillOut(gl, FnGetProgramiv, v[:], unsafe.Pointer(&program), unsafe.Pointer(&pname))
	return v[0], err
}

// namesOut runs a (GLsizei n, GLuint *names) generator call.
func (gl *GL) namesOut(ep EntryPoint, out []uint32, lead ...unsafe.Pointer) error {
	n := int32(len(out))
	return fillOut(gl, ep, out, append(lead, unsafe.Pointer(&n))...)
}

func (gl *GL) oneName(ep EntryPoint, lead ...unsafe.Pointer) (uint32, error) {
	var v [1]uint32
	err := gl.namesOut(ep, v[:], lead...)
	return v[0], err
}

// GenBuffers calls glGenBuffers, filling out with len(out) new names.
func (gl *GL) GenBuffers(out []uint32) error { return gl.namesOut(FnGenBuffers, out) }

// GenBuffer returns one new buffer name.
func (gl *GL) GenBuffer() (uint32, error) { return gl.oneName(FnGenBuffers) }

// CreateBuffers calls glCreateBuffers.
func (gl *GL) CreateBuffers(out []uint32) error { return gl.namesOut(FnCreateBuffers, out) }

// CreateBuffer returns one new initialised buffer name.
func (gl *GL) CreateBuffer() (uint32, error) { return gl.oneName(FnCreateBuffers) }

// GenVertexArrays calls glGenVertexArrays.
func (gl *GL) GenVertexArrays(out []uint32) error {
	return gl.namesOut(FnGenVertexArrays, out)
}

// GenVertexArray returns one new vertex array name.
func (gl *GL) GenVertexArray() (uint32, error) { return gl.oneName(FnGenVertexArrays) }

// CreateVertexArrays calls glCreateVertexArrays.
func (gl *GL) CreateVertexArrays(out []uint32) error {
	return gl.namesOut(FnCreateVertexArrays, out)
}

// GenTextures calls glGenTextures.
func (gl *GL) GenTextures(out []uint32) error { return gl.namesOut(FnGenTextures, out) }

// GenTexture returns one new texture name.
func (gl *GL) GenTexture() (uint32, error) { return gl.oneName(FnGenTextures) }

// CreateTextures calls glCreateTextures.
func (gl *GL) CreateTextures(target uint32, out []uint32) error {
	_, sc, err := gl.begin(FnCreateTextures)
	if err != nil {
		return err
	}
	defer sc.Release()

	ptr, err := marshal.Slice(sc, out)
	if err != nil {
		return callErr(FnCreateTextures, err)
	}
	n := int32(len(out))
	return gl.call(FnCreateTextures, nil, unsafe.Pointer(&target), unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

// GenFramebuffers calls glGenFramebuffers.
func (gl *GL) GenFramebuffers(out []uint32) error {
	return gl.namesOut(FnGenFramebuffers, out)
}

// GenFramebuffer returns one new framebuffer name.
func (gl *GL) GenFramebuffer() (uint32, error) { return gl.oneName(FnGenFramebuffers) }

// ReadPixels calls glReadPixels into out. out must be large enough for the
// requested rectangle; use ReadPixelsFormat to size it from a texture format.
func (gl *GL) ReadPixels(x, y, width, height int32, format, typ uint32, out []byte) error {
	return fillOut(gl, FnReadPixels, out,
		unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height),
		unsafe.Pointer(&format), unsafe.Pointer(&typ))
}

// GetBufferSubData calls glGetBufferSubData, reading len(out) bytes from
// offset.
func (gl *GL) GetBufferSubData(target uint32, offset int, out []byte) error {
	off, size := int64(offset), int64(len(out))
	return fillOut(gl, FnGetBufferSubData, out,
		unsafe.Pointer(&target), unsafe.Pointer(&off), unsafe.Pointer(&size))
}

// growText runs a (…, GLsizei bufSize, GLsizei *length, GLchar *buf) call.
// capacity counts bytes of native text; one extra byte holds the
// terminator. The result is trimmed to the reported length, and a character
// the driver cut at capacity is dropped.
func (gl *GL) growText(ep EntryPoint, capacity int, lead ...unsafe.Pointer) (string, error) {
	t, sc, err := gl.begin(ep)
	if err != nil {
		return "", err
	}
	defer sc.Release()

	capacity = min(t.capacityOr(capacity), maxCapacity)
	buf := sc.Bytes(capacity + 1)
	length := sc.Int32s(1)
	bufSize := int32(capacity + 1)
	bufPtr := unsafe.Pointer(unsafe.SliceData(buf))
	lenPtr := unsafe.Pointer(unsafe.SliceData(length))

	args := append(lead, unsafe.Pointer(&bufSize), unsafe.Pointer(&lenPtr), unsafe.Pointer(&bufPtr))
	if err := t.call(ep, nil, args); err != nil {
		return "", err
	}
	n := int(length[0])
	if n < 0 || n > capacity {
		return "", &LengthError{Entry: ep, Length: n, Capacity: capacity}
	}
	s, err := sc.CutText(buf, n, capacity)
	if err != nil {
		return "", callErr(ep, err)
	}
	return s, nil
}

// GetShaderInfoLog returns up to capacity bytes of the shader's info
// log. capacity <= 0 selects the table default.
func (gl *GL) GetShaderInfoLog(shader uint32, capacity int) (string, error) {
	return gl.growText(FnGetShaderInfoLog, capacity, unsafe.Pointer(&shader))
}

// GetProgramInfoLog returns up to capacity bytes of the program's
// info log.
func (gl *GL) GetProgramInfoLog(program uint32, capacity int) (string, error) {
	return gl.growText(FnGetProgramInfoLog, capacity, unsafe.Pointer(&program))
}

// GetShaderSource returns up to capacity bytes of the shader's source.
func (gl *GL) GetShaderSource(shader uint32, capacity int) (string, error) {
	return gl.growText(FnGetShaderSource, capacity, unsafe.Pointer(&shader))
}

// GetObjectLabel returns up to capacity bytes of an object label.
func (gl *GL) GetObjectLabel(identifier, name uint32, capacity int) (string, error) {
	return gl.growText(FnGetObjectLabel, capacity, unsafe.Pointer(&identifier), unsafe.Pointer(&name))
}

// ShaderInfoLog returns the full info log, sized with INFO_LOG_LENGTH.
func (gl *GL) ShaderInfoLog(shader uint32) (string, error) {
	n, err := gl.GetShaderiv(shader, INFO_LOG_LENGTH)
	if err != nil {
		return "", err
	}
	if n <= 1 {
		return "", nil
	}
	return gl.GetShaderInfoLog(shader, int(n)-1)
}

// ProgramInfoLog returns the full info log, sized with INFO_LOG_LENGTH.
func (gl *GL) ProgramInfoLog(program uint32) (string, error) {
	n, err := gl.GetProgramiv(program, INFO_LOG_LENGTH)
	if err != nil {
		return "", err
	}
	if n <= 1 {
		return "", nil
	}
	return gl.GetProgramInfoLog(program, int(n)-1)
}

// GetActiveUniform describes the active uniform at index. capacity bounds
// the name length in bytes.
func (gl *GL) GetActiveUniform(program, index uint32, capacity int) (ActiveUniform, error) {
	t, sc, err := gl.begin(FnGetActiveUniform)
	if err != nil {
		return ActiveUniform{}, err
	}
	defer sc.Release()

	capacity = min(t.capacityOr(capacity), maxCapacity)
	buf := sc.Bytes(capacity + 1)
	ints := sc.Int32s(2) // length, size
	typ := sc.Uint32s(1)
	bufSize := int32(capacity + 1)
	lenPtr := unsafe.Pointer(&ints[0])
	sizePtr := unsafe.Pointer(&ints[1])
	typPtr := unsafe.Pointer(unsafe.SliceData(typ))
	bufPtr := unsafe.Pointer(unsafe.SliceData(buf))

	if err := t.call(FnGetActiveUniform, nil, []unsafe.Pointer{
		unsafe.Pointer(&program), unsafe.Pointer(&index), unsafe.Pointer(&bufSize),
		unsafe.Pointer(&lenPtr), unsafe.Pointer(&sizePtr), unsafe.Pointer(&typPtr), unsafe.Pointer(&bufPtr),
	}); err != nil {
		return ActiveUniform{}, err
	}
	n := int(ints[0])
	if n < 0 || n > capacity {
		return ActiveUniform{}, &LengthError{Entry: FnGetActiveUniform, Length: n, Capacity: capacity}
	}
	name, err := sc.CutText(buf, n, capacity)
	if err != nil {
		return ActiveUniform{}, callErr(FnGetActiveUniform, err)
	}
	return ActiveUniform{Name: name, Size: ints[1], Type: typ[0]}, nil
}

// GetProgramBinary returns up to capacity bytes of the program binary and
// its format.
func (gl *GL) GetProgramBinary(program uint32, capacity int) ([]byte, uint32, error) {
	t, sc, err := gl.begin(FnGetProgramBinary)
	if err != nil {
		return nil, 0, err
	}
	defer sc.Release()

	capacity = min(t.capacityOr(capacity), maxCapacity)
	buf := sc.Bytes(capacity)
	length := sc.Int32s(1)
	format := sc.Uint32s(1)
	bufSize := int32(capacity)
	lenPtr := unsafe.Pointer(unsafe.SliceData(length))
	fmtPtr := unsafe.Pointer(unsafe.SliceData(format))
	bufPtr := unsafe.Pointer(unsafe.SliceData(buf))

	if err := t.call(FnGetProgramBinary, nil, []unsafe.Pointer{
		unsafe.Pointer(&program), unsafe.Pointer(&bufSize),
		unsafe.Pointer(&lenPtr), unsafe.Pointer(&fmtPtr), unsafe.Pointer(&bufPtr),
	}); err != nil {
		return nil, 0, err
	}
	n := int(length[0])
	if n < 0 || n > capacity {
		return nil, 0, &LengthError{Entry: FnGetProgramBinary, Length: n, Capacity: capacity}
	}
	out := make([]byte, n)
	copy(out, buf[:n])
	return out, format[0], nil
}

// ProgramBinaryData returns the whole program binary, sized with
// PROGRAM_BINARY_LENGTH.
func (gl *GL) ProgramBinaryData(program uint32) ([]byte, uint32, error) {
	n, err := gl.GetProgramiv(program, PROGRAM_BINARY_LENGTH)
	if err != nil {
		return nil, 0, err
	}
	if n <= 0 {
		return nil, 0, nil
	}
	return gl.GetProgramBinary(program, int(n))
}

// GetDebugMessageLog fetches up to count messages from the debug log.
// capacity bounds the combined message text in bytes; count <= 0
// fetches up to 16 messages.
func (gl *GL) GetDebugMessageLog(count, capacity int) ([]DebugMessage, error) {
	t, sc, err := gl.begin(FnGetDebugMessageLog)
	if err != nil {
		return nil, err
	}
	defer sc.Release()

	if count <= 0 {
		count = 16
	}
	capacity = min(t.capacityOr(capacity), maxCapacity)
	buf := sc.Bytes(capacity + 1)
	meta := sc.Uint32s(4 * count) // sources, types, ids, severities
	lengths := sc.Int32s(count)

	n := uint32(count)
	bufSize := int32(capacity + 1)
	srcPtr := unsafe.Pointer(&meta[0])
	typPtr := unsafe.Pointer(&meta[count])
	idPtr := unsafe.Pointer(&meta[2*count])
	sevPtr := unsafe.Pointer(&meta[3*count])
	lenPtr := unsafe.Pointer(unsafe.SliceData(lengths))
	bufPtr := unsafe.Pointer(unsafe.SliceData(buf))

	var got uint32
	if err := t.call(FnGetDebugMessageLog, unsafe.Pointer(&got), []unsafe.Pointer{
		unsafe.Pointer(&n), unsafe.Pointer(&bufSize),
		unsafe.Pointer(&srcPtr), unsafe.Pointer(&typPtr), unsafe.Pointer(&idPtr), unsafe.Pointer(&sevPtr),
		unsafe.Pointer(&lenPtr), unsafe.Pointer(&bufPtr),
	}); err != nil {
		return nil, err
	}
	if int(got) > count {
		return nil, &LengthError{Entry: FnGetDebugMessageLog, Length: int(got), Capacity: count}
	}

	msgs := make([]DebugMessage, got)
	off := 0
	for i := range msgs {
		// Lengths include each message's terminator.
		l := int(lengths[i])
		if l < 1 || off+l > capacity+1 {
			return nil, &LengthError{Entry: FnGetDebugMessageLog, Length: off + l, Capacity: capacity + 1}
		}
		text, err := sc.Text(buf[off:], l-1)
		if err != nil {
			return nil, callErr(FnGetDebugMessageLog, err)
		}
		msgs[i] = DebugMessage{
			Source:   meta[i],
			Type:     meta[count+i],
			ID:       meta[2*count+i],
			Severity: meta[3*count+i],
			Message:  text,
		}
		off += l
	}
	return msgs, nil
}

// staticString decodes a NUL-terminated string owned by the driver.
func (gl *GL) staticString(ep EntryPoint, args ...unsafe.Pointer) (string, error) {
	t, sc, err := gl.begin(ep)
	if err != nil {
		return "", err
	}
	defer sc.Release()

	var p unsafe.Pointer
	if err := t.call(ep, unsafe.Pointer(&p), args); err != nil {
		return "", err
	}
	if p == nil {
		return "", callErr(ep, ErrNullString)
	}
	s, err := sc.GoString(p)
	if err != nil {
		return "", callErr(ep, err)
	}
	return s, nil
}

// GetString calls glGetString.
func (gl *GL) GetString(name uint32) (string, error) {
	return gl.staticString(FnGetString, unsafe.Pointer(&name))
}

// GetStringi calls glGetStringi.
func (gl *GL) GetStringi(name, index uint32) (string, error) {
	return gl.staticString(FnGetStringi, unsafe.Pointer(&name), unsafe.Pointer(&index))
}

// Extensions lists the context's extensions via NUM_EXTENSIONS and
// glGetStringi.
func (gl *GL) Extensions() ([]string, error) {
	n, err := gl.GetInteger(NUM_EXTENSIONS)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, max(n, 0))
	for i := int32(0); i < n; i++ {
		s, err := gl.GetStringi(EXTENSIONS, uint32(i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
