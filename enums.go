package glbind

// OpenGL enumerants used by the marshaling surface and its callers.
// Values are not validated against the driver.
// OpenGL constants use ALL_CAPS by industry convention.
//
//nolint:revive
const (
	FALSE = 0
	TRUE  = 1

	// Data types
	BYTE              = 0x1400
	UNSIGNED_BYTE     = 0x1401
	SHORT             = 0x1402
	UNSIGNED_SHORT    = 0x1403
	INT               = 0x1404
	UNSIGNED_INT      = 0x1405
	FLOAT             = 0x1406
	HALF_FLOAT        = 0x140B
	UNSIGNED_INT_24_8 = 0x84FA

	// Errors
	NO_ERROR          = 0
	INVALID_ENUM      = 0x0500
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502
	OUT_OF_MEMORY     = 0x0505

	// Primitives
	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005

	// Clear bits
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	// Capabilities
	BLEND        = 0x0BE2
	CULL_FACE    = 0x0B44
	DEPTH_TEST   = 0x0B71
	SCISSOR_TEST = 0x0C11

	// Strings
	VENDOR                   = 0x1F00
	RENDERER                 = 0x1F01
	VERSION                  = 0x1F02
	EXTENSIONS               = 0x1F03
	SHADING_LANGUAGE_VERSION = 0x8B8C
	NUM_EXTENSIONS           = 0x821D
	MAJOR_VERSION            = 0x821B
	MINOR_VERSION            = 0x821C

	// Buffers
	ARRAY_BUFFER          = 0x8892
	ELEMENT_ARRAY_BUFFER  = 0x8893
	UNIFORM_BUFFER        = 0x8A11
	SHADER_STORAGE_BUFFER = 0x90D2
	DRAW_INDIRECT_BUFFER  = 0x8F3F
	STREAM_DRAW           = 0x88E0
	STATIC_DRAW           = 0x88E4
	DYNAMIC_DRAW          = 0x88E8
	MAP_READ_BIT          = 0x0001
	MAP_WRITE_BIT         = 0x0002

	// Shaders and programs
	FRAGMENT_SHADER           = 0x8B30
	VERTEX_SHADER             = 0x8B31
	GEOMETRY_SHADER           = 0x8DD9
	COMPUTE_SHADER            = 0x91B9
	COMPILE_STATUS            = 0x8B81
	LINK_STATUS               = 0x8B82
	INFO_LOG_LENGTH           = 0x8B84
	ACTIVE_UNIFORMS           = 0x8B86
	FLOAT_VEC4                = 0x8B52
	FLOAT_MAT4                = 0x8B5C
	ACTIVE_UNIFORM_MAX_LENGTH = 0x8B87
	SHADER_SOURCE_LENGTH      = 0x8B88
	PROGRAM_BINARY_LENGTH     = 0x8741
	INTERLEAVED_ATTRIBS       = 0x8C8C
	SEPARATE_ATTRIBS          = 0x8C8D
	INVALID_INDEX             = 0xFFFFFFFF

	// Textures
	TEXTURE_2D         = 0x0DE1
	TEXTURE0           = 0x84C0
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_MAG_FILTER = 0x2800
	NEAREST            = 0x2600
	LINEAR             = 0x2601
	UNPACK_ALIGNMENT   = 0x0CF5
	PACK_ALIGNMENT     = 0x0D05

	// Pixel formats
	DEPTH_COMPONENT = 0x1902
	RED             = 0x1903
	RGB             = 0x1907
	RGBA            = 0x1908
	BGRA            = 0x80E1
	RG              = 0x8227
	RG_INTEGER      = 0x8228
	RED_INTEGER     = 0x8D94
	RGBA_INTEGER    = 0x8D99
	DEPTH_STENCIL   = 0x84F9

	// Internal formats
	RGBA8              = 0x8058
	R8                 = 0x8229
	RG8                = 0x822B
	R16F               = 0x822D
	R32F               = 0x822E
	RG16F              = 0x822F
	RG32F              = 0x8230
	R32UI              = 0x8236
	RGBA32F            = 0x8814
	RGBA16F            = 0x881A
	SRGB8_ALPHA8       = 0x8C43
	RGBA8UI            = 0x8D7C
	DEPTH_COMPONENT16  = 0x81A5
	DEPTH_COMPONENT32F = 0x8CAC
	DEPTH24_STENCIL8   = 0x88F0

	// Framebuffers
	FRAMEBUFFER          = 0x8D40
	COLOR_ATTACHMENT0    = 0x8CE0
	DEPTH_ATTACHMENT     = 0x8D00
	FRAMEBUFFER_COMPLETE = 0x8CD5

	// Sync
	SYNC_GPU_COMMANDS_COMPLETE = 0x9117
	SYNC_FLUSH_COMMANDS_BIT    = 0x00000001
	ALREADY_SIGNALED           = 0x911A
	TIMEOUT_EXPIRED            = 0x911B
	CONDITION_SATISFIED        = 0x911C
	WAIT_FAILED                = 0x911D
	TIMEOUT_IGNORED            = 0xFFFFFFFFFFFFFFFF

	// Debug output
	DEBUG_OUTPUT                 = 0x92E0
	DEBUG_OUTPUT_SYNCHRONOUS     = 0x8242
	DEBUG_SOURCE_API             = 0x8246
	DEBUG_SOURCE_SHADER_COMPILER = 0x8248
	DEBUG_SOURCE_APPLICATION     = 0x824A
	DEBUG_TYPE_ERROR             = 0x824C
	DEBUG_TYPE_PERFORMANCE       = 0x8250
	DEBUG_TYPE_MARKER            = 0x8268
	DEBUG_SEVERITY_HIGH          = 0x9146
	DEBUG_SEVERITY_MEDIUM        = 0x9147
	DEBUG_SEVERITY_LOW           = 0x9148
	DEBUG_SEVERITY_NOTIFICATION  = 0x826B
	MAX_DEBUG_MESSAGE_LENGTH     = 0x9143
	DEBUG_LOGGED_MESSAGES        = 0x9145

	// Object identifiers
	BUFFER  = 0x82E0
	SHADER  = 0x82E1
	PROGRAM = 0x82E2

	// Barriers
	ALL_BARRIER_BITS = 0xFFFFFFFF
)
