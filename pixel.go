package glbind

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
)

// PixelLayout is the OpenGL spelling of a texture format: the internal
// format for storage, plus the client format and type of pixel transfers.
type PixelLayout struct {
	InternalFormat uint32
	Format         uint32
	Type           uint32
	BytesPerPixel  int
}

// transferAlignment is the GL default for PACK_ALIGNMENT and
// UNPACK_ALIGNMENT.
const transferAlignment = 4

// RowSize returns the byte length of one row of width pixels, padded to the
// default 4-byte transfer alignment.
func (l PixelLayout) RowSize(width int) int {
	n := width * l.BytesPerPixel
	return (n + transferAlignment - 1) &^ (transferAlignment - 1)
}

// ImageSize returns the byte length of a width x height transfer.
func (l PixelLayout) ImageSize(width, height int) int {
	return l.RowSize(width) * height
}

var pixelLayouts = map[gputypes.TextureFormat]PixelLayout{
	gputypes.TextureFormatR8Unorm:             {R8, RED, UNSIGNED_BYTE, 1},
	gputypes.TextureFormatRG8Unorm:            {RG8, RG, UNSIGNED_BYTE, 2},
	gputypes.TextureFormatRGBA8Unorm:          {RGBA8, RGBA, UNSIGNED_BYTE, 4},
	gputypes.TextureFormatRGBA8UnormSrgb:      {SRGB8_ALPHA8, RGBA, UNSIGNED_BYTE, 4},
	gputypes.TextureFormatRGBA8Uint:           {RGBA8UI, RGBA_INTEGER, UNSIGNED_BYTE, 4},
	gputypes.TextureFormatBGRA8Unorm:          {RGBA8, BGRA, UNSIGNED_BYTE, 4},
	gputypes.TextureFormatBGRA8UnormSrgb:      {SRGB8_ALPHA8, BGRA, UNSIGNED_BYTE, 4},
	gputypes.TextureFormatR16Float:            {R16F, RED, HALF_FLOAT, 2},
	gputypes.TextureFormatRG16Float:           {RG16F, RG, HALF_FLOAT, 4},
	gputypes.TextureFormatRGBA16Float:         {RGBA16F, RGBA, HALF_FLOAT, 8},
	gputypes.TextureFormatR32Float:            {R32F, RED, FLOAT, 4},
	gputypes.TextureFormatRG32Float:           {RG32F, RG, FLOAT, 8},
	gputypes.TextureFormatRGBA32Float:         {RGBA32F, RGBA, FLOAT, 16},
	gputypes.TextureFormatR32Uint:             {R32UI, RED_INTEGER, UNSIGNED_INT, 4},
	gputypes.TextureFormatDepth16Unorm:        {DEPTH_COMPONENT16, DEPTH_COMPONENT, UNSIGNED_SHORT, 2},
	gputypes.TextureFormatDepth32Float:        {DEPTH_COMPONENT32F, DEPTH_COMPONENT, FLOAT, 4},
	gputypes.TextureFormatDepth24PlusStencil8: {DEPTH24_STENCIL8, DEPTH_STENCIL, UNSIGNED_INT_24_8, 4},
}

// PixelLayoutOf maps a WebGPU texture format to its OpenGL layout.
func PixelLayoutOf(f gputypes.TextureFormat) (PixelLayout, error) {
	l, ok := pixelLayouts[f]
	if !ok {
		return PixelLayout{}, fmt.Errorf("%w: texture format %s", ErrUnsupportedFormat, f)
	}
	return l, nil
}

// VertexLayout is the OpenGL spelling of a vertex attribute format.
type VertexLayout struct {
	Size       int32 // components
	Type       uint32
	Normalized bool
	Integer    bool // must be bound with an integer attribute call
}

// VertexLayoutOf maps a WebGPU vertex format to its OpenGL layout.
func VertexLayoutOf(f gputypes.VertexFormat) (VertexLayout, error) {
	switch f {
	case gputypes.VertexFormatUint8x2:
		return VertexLayout{2, UNSIGNED_BYTE, false, true}, nil
	case gputypes.VertexFormatUint8x4:
		return VertexLayout{4, UNSIGNED_BYTE, false, true}, nil
	case gputypes.VertexFormatSint8x2:
		return VertexLayout{2, BYTE, false, true}, nil
	case gputypes.VertexFormatSint8x4:
		return VertexLayout{4, BYTE, false, true}, nil
	case gputypes.VertexFormatUnorm8x2:
		return VertexLayout{2, UNSIGNED_BYTE, true, false}, nil
	case gputypes.VertexFormatUnorm8x4:
		return VertexLayout{4, UNSIGNED_BYTE, true, false}, nil
	case gputypes.VertexFormatSnorm8x2:
		return VertexLayout{2, BYTE, true, false}, nil
	case gputypes.VertexFormatSnorm8x4:
		return VertexLayout{4, BYTE, true, false}, nil
	case gputypes.VertexFormatUint16x2:
		return VertexLayout{2, UNSIGNED_SHORT, false, true}, nil
	case gputypes.VertexFormatUint16x4:
		return VertexLayout{4, UNSIGNED_SHORT, false, true}, nil
	case gputypes.VertexFormatSint16x2:
		return VertexLayout{2, SHORT, false, true}, nil
	case gputypes.VertexFormatSint16x4:
		return VertexLayout{4, SHORT, false, true}, nil
	case gputypes.VertexFormatUnorm16x2:
		return VertexLayout{2, UNSIGNED_SHORT, true, false}, nil
	case gputypes.VertexFormatUnorm16x4:
		return VertexLayout{4, UNSIGNED_SHORT, true, false}, nil
	case gputypes.VertexFormatSnorm16x2:
		return VertexLayout{2, SHORT, true, false}, nil
	case gputypes.VertexFormatSnorm16x4:
		return VertexLayout{4, SHORT, true, false}, nil
	case gputypes.VertexFormatFloat16x2:
		return VertexLayout{2, HALF_FLOAT, false, false}, nil
	case gputypes.VertexFormatFloat16x4:
		return VertexLayout{4, HALF_FLOAT, false, false}, nil
	case gputypes.VertexFormatFloat32:
		return VertexLayout{1, FLOAT, false, false}, nil
	case gputypes.VertexFormatFloat32x2:
		return VertexLayout{2, FLOAT, false, false}, nil
	case gputypes.VertexFormatFloat32x3:
		return VertexLayout{3, FLOAT, false, false}, nil
	case gputypes.VertexFormatFloat32x4:
		return VertexLayout{4, FLOAT, false, false}, nil
	case gputypes.VertexFormatUint32:
		return VertexLayout{1, UNSIGNED_INT, false, true}, nil
	case gputypes.VertexFormatUint32x2:
		return VertexLayout{2, UNSIGNED_INT, false, true}, nil
	case gputypes.VertexFormatUint32x3:
		return VertexLayout{3, UNSIGNED_INT, false, true}, nil
	case gputypes.VertexFormatUint32x4:
		return VertexLayout{4, UNSIGNED_INT, false, true}, nil
	case gputypes.VertexFormatSint32:
		return VertexLayout{1, INT, false, true}, nil
	case gputypes.VertexFormatSint32x2:
		return VertexLayout{2, INT, false, true}, nil
	case gputypes.VertexFormatSint32x3:
		return VertexLayout{3, INT, false, true}, nil
	case gputypes.VertexFormatSint32x4:
		return VertexLayout{4, INT, false, true}, nil
	default:
		return VertexLayout{}, fmt.Errorf("%w: vertex format %s", ErrUnsupportedFormat, f)
	}
}

// VertexAttribFormatOf sets up attribute index from a WebGPU vertex format,
// choosing glVertexAttribFormat or glVertexAttribIFormat.
func (gl *GL) VertexAttribFormatOf(index uint32, f gputypes.VertexFormat, relativeOffset uint32) error {
	l, err := VertexLayoutOf(f)
	if err != nil {
		return err
	}
	if l.Integer {
		return gl.call(FnVertexAttribIFormat, nil,
			unsafe.Pointer(&index), unsafe.Pointer(&l.Size), unsafe.Pointer(&l.Type), unsafe.Pointer(&relativeOffset))
	}
	return gl.VertexAttribFormat(index, l.Size, l.Type, l.Normalized, relativeOffset)
}

// ReadPixelsFormat reads a width x height rectangle in the layout of a
// WebGPU texture format. Rows are padded to the default 4-byte
// PACK_ALIGNMENT.
func (gl *GL) ReadPixelsFormat(x, y, width, height int32, f gputypes.TextureFormat) ([]byte, error) {
	l, err := PixelLayoutOf(f)
	if err != nil {
		return nil, err
	}
	out := make([]byte, l.ImageSize(int(width), int(height)))
	if err := gl.ReadPixels(x, y, width, height, l.Format, l.Type, out); err != nil {
		return nil, err
	}
	return out, nil
}

// TexImage2DFormat uploads data as a texture in the layout of a WebGPU
// texture format. len(data) must equal the 4-byte aligned image size.
func (gl *GL) TexImage2DFormat(target uint32, level, width, height int32, f gputypes.TextureFormat, data []byte) error {
	l, err := PixelLayoutOf(f)
	if err != nil {
		return err
	}
	if want := l.ImageSize(int(width), int(height)); len(data) != want {
		return callErr(FnTexImage2D, fmt.Errorf("%w: %d bytes for a %dx%d %s image, want %d",
			ErrLengthMismatch, len(data), width, height, f, want))
	}
	return gl.TexImage2D(target, level, int32(l.InternalFormat), width, height, l.Format, l.Type, data)
}
