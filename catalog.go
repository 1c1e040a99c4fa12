package glbind

import (
	"fmt"

	"github.com/gogpu/glbind/abi"
)

// EntryPoint identifies one catalogue entry. Values are dense indices into
// the catalogue in declaration order.
type EntryPoint uint16

// Entry points, in catalogue order (GL version, then registry order).
const (
	FnCullFace EntryPoint = iota
	FnFrontFace
	FnHint
	FnLineWidth
	FnPointSize
	FnPolygonMode
	FnScissor
	FnTexParameterf
	FnTexParameteri
	FnTexImage1D
	FnTexImage2D
	FnDrawBuffer
	FnClear
	FnClearColor
	FnClearStencil
	FnClearDepth
	FnStencilMask
	FnColorMask
	FnDepthMask
	FnDisable
	FnEnable
	FnFinish
	FnFlush
	FnBlendFunc
	FnLogicOp
	FnStencilFunc
	FnStencilOp
	FnDepthFunc
	FnPixelStoref
	FnPixelStorei
	FnReadBuffer
	FnReadPixels
	FnGetBooleanv
	FnGetDoublev
	FnGetError
	FnGetFloatv
	FnGetIntegerv
	FnGetString
	FnGetTexImage
	FnIsEnabled
	FnDepthRange
	FnViewport
	FnBegin
	FnEnd
	FnVertex3f
	FnColor4f
	FnMatrixMode
	FnLoadIdentity
	FnNewList
	FnEndList
	FnDrawArrays
	FnDrawElements
	FnPolygonOffset
	FnCopyTexImage2D
	FnTexSubImage2D
	FnBindTexture
	FnDeleteTextures
	FnGenTextures
	FnIsTexture
	FnVertexPointer
	FnEnableClientState
	FnDrawRangeElements
	FnTexImage3D
	FnTexSubImage3D
	FnActiveTexture
	FnSampleCoverage
	FnCompressedTexImage2D
	FnClientActiveTexture
	FnBlendFuncSeparate
	FnMultiDrawArrays
	FnMultiDrawElements
	FnPointParameterf
	FnBlendColor
	FnBlendEquation
	FnGenQueries
	FnDeleteQueries
	FnBeginQuery
	FnEndQuery
	FnGetQueryObjectuiv
	FnBindBuffer
	FnDeleteBuffers
	FnGenBuffers
	FnIsBuffer
	FnBufferData
	FnBufferSubData
	FnGetBufferSubData
	FnMapBuffer
	FnUnmapBuffer
	FnBlendEquationSeparate
	FnDrawBuffers
	FnStencilOpSeparate
	FnStencilFuncSeparate
	FnStencilMaskSeparate
	FnAttachShader
	FnBindAttribLocation
	FnCompileShader
	FnCreateProgram
	FnCreateShader
	FnDeleteProgram
	FnDeleteShader
	FnDetachShader
	FnDisableVertexAttribArray
	FnEnableVertexAttribArray
	FnGetActiveUniform
	FnGetAttribLocation
	FnGetProgramiv
	FnGetProgramInfoLog
	FnGetShaderiv
	FnGetShaderInfoLog
	FnGetShaderSource
	FnGetUniformLocation
	FnIsProgram
	FnIsShader
	FnLinkProgram
	FnShaderSource
	FnUseProgram
	FnUniform1f
	FnUniform2f
	FnUniform4f
	FnUniform1i
	FnUniform1fv
	FnUniform4fv
	FnUniform1iv
	FnUniformMatrix4fv
	FnValidateProgram
	FnVertexAttribPointer
	FnUniformMatrix2x3fv
	FnUniformMatrix3x4fv
	FnColorMaski
	FnGetIntegeriV
	FnEnablei
	FnDisablei
	FnBeginTransformFeedback
	FnEndTransformFeedback
	FnBindBufferRange
	FnBindBufferBase
	FnTransformFeedbackVaryings
	FnVertexAttribIPointer
	FnBindFragDataLocation
	FnClearBufferiv
	FnClearBufferfv
	FnClearBufferfi
	FnGetStringi
	FnBindRenderbuffer
	FnDeleteRenderbuffers
	FnGenRenderbuffers
	FnRenderbufferStorage
	FnBindFramebuffer
	FnDeleteFramebuffers
	FnGenFramebuffers
	FnCheckFramebufferStatus
	FnFramebufferTexture2D
	FnFramebufferRenderbuffer
	FnGenerateMipmap
	FnBlitFramebuffer
	FnRenderbufferStorageMultisample
	FnFramebufferTextureLayer
	FnMapBufferRange
	FnFlushMappedBufferRange
	FnBindVertexArray
	FnDeleteVertexArrays
	FnGenVertexArrays
	FnIsVertexArray
	FnDrawArraysInstanced
	FnDrawElementsInstanced
	FnTexBuffer
	FnPrimitiveRestartIndex
	FnCopyBufferSubData
	FnGetUniformIndices
	FnGetActiveUniformsiv
	FnGetUniformBlockIndex
	FnGetActiveUniformBlockiv
	FnUniformBlockBinding
	FnDrawElementsBaseVertex
	FnDrawElementsInstancedBaseVertex
	FnProvokingVertex
	FnFenceSync
	FnIsSync
	FnDeleteSync
	FnClientWaitSync
	FnWaitSync
	FnGetInteger64v
	FnGetSynciv
	FnFramebufferTexture
	FnTexImage2DMultisample
	FnSampleMaski
	FnBindFragDataLocationIndexed
	FnGenSamplers
	FnDeleteSamplers
	FnBindSampler
	FnSamplerParameteri
	FnSamplerParameterf
	FnQueryCounter
	FnGetQueryObjectui64v
	FnVertexAttribDivisor
	FnMinSampleShading
	FnBlendEquationi
	FnBlendFunci
	FnDrawArraysIndirect
	FnDrawElementsIndirect
	FnPatchParameteri
	FnBindTransformFeedback
	FnGenTransformFeedbacks
	FnDrawTransformFeedback
	FnReleaseShaderCompiler
	FnShaderBinary
	FnDepthRangef
	FnClearDepthf
	FnGetProgramBinary
	FnProgramBinary
	FnProgramParameteri
	FnUseProgramStages
	FnCreateShaderProgramv
	FnGenProgramPipelines
	FnBindProgramPipeline
	FnViewportIndexedf
	FnDrawArraysInstancedBaseInstance
	FnDrawElementsInstancedBaseInstance
	FnBindImageTexture
	FnMemoryBarrier
	FnTexStorage1D
	FnTexStorage2D
	FnTexStorage3D
	FnClearBufferData
	FnDispatchCompute
	FnDispatchComputeIndirect
	FnCopyImageSubData
	FnInvalidateFramebuffer
	FnMultiDrawArraysIndirect
	FnMultiDrawElementsIndirect
	FnTexStorage2DMultisample
	FnDebugMessageControl
	FnDebugMessageInsert
	FnDebugMessageCallback
	FnGetDebugMessageLog
	FnPushDebugGroup
	FnPopDebugGroup
	FnObjectLabel
	FnGetObjectLabel
	FnGetPointerv
	FnTextureView
	FnVertexAttribFormat
	FnVertexAttribIFormat
	FnBindVertexBuffer
	FnVertexAttribBinding
	FnBufferStorage
	FnClearTexImage
	FnBindBuffersBase
	FnBindTextures
	FnClipControl
	FnCreateBuffers
	FnNamedBufferStorage
	FnNamedBufferData
	FnNamedBufferSubData
	FnCreateFramebuffers
	FnCreateTextures
	FnTextureStorage2D
	FnTextureSubImage2D
	FnBindTextureUnit
	FnCreateVertexArrays
	FnVertexArrayVertexBuffer
	FnVertexArrayElementBuffer
	FnEnableVertexArrayAttrib
	FnGetGraphicsResetStatus
	FnMemoryBarrierByRegion
	FnTextureBarrier
	FnGetnUniformfv
	FnSpecializeShader
	FnMultiDrawArraysIndirectCount
	FnMultiDrawElementsIndirectCount
	FnPolygonOffsetClamp

	numEntryPoints
)

// Name returns the native symbol name, e.g. "glBindVertexArray".
func (ep EntryPoint) Name() string {
	if ep >= numEntryPoints {
		return fmt.Sprintf("EntryPoint(%d)", uint16(ep))
	}
	return catalog[ep].Name
}

func (ep EntryPoint) String() string { return ep.Name() }

// Spec returns the catalogue entry for ep.
func (ep EntryPoint) Spec() (*EntryPointSpec, bool) {
	if ep >= numEntryPoints {
		return nil, false
	}
	return &catalog[ep], true
}

// NumEntryPoints returns the size of the catalogue.
func NumEntryPoints() int { return int(numEntryPoints) }

// EntryPointSpec is one row of the static catalogue.
type EntryPointSpec struct {
	ID         EntryPoint
	Name       string
	Signature  abi.Signature
	Since      Version     // first GL version that provides the entry
	CompatOnly bool        // fixed-function entry removed from the core profile
	Surfaces   SurfaceMode // surfaces that carry the entry
}

// Available reports whether d selects s.
func (s *EntryPointSpec) Available(d Descriptor) bool {
	if s.CompatOnly && d.Profile != ProfileCompat {
		return false
	}
	return d.Version.AtLeast(s.Since) && s.Surfaces&d.surface() != 0
}

func entry(id EntryPoint, since Version, name string, ret abi.Kind, args ...abi.Kind) EntryPointSpec {
	return EntryPointSpec{
		ID:        id,
		Name:      name,
		Signature: abi.Sig(ret, args...),
		Since:     since,
		Surfaces:  SurfaceBoth,
	}
}

// rawOnly marks entries whose arguments are addresses into mapped memory or
// native callbacks. They have no marshaling form.
func (s EntryPointSpec) rawOnly() EntryPointSpec {
	s.Surfaces = SurfaceRawOnly
	return s
}

func (s EntryPointSpec) compatOnly() EntryPointSpec {
	s.CompatOnly = true
	return s
}

var byName = func() map[string]EntryPoint {
	m := make(map[string]EntryPoint, numEntryPoints)
	for i := range catalog {
		m[catalog[i].Name] = EntryPoint(i)
	}
	return m
}()

// LookupEntryPoint finds an entry point by native name ("glClear").
func LookupEntryPoint(name string) (EntryPoint, bool) {
	ep, ok := byName[name]
	return ep, ok
}

// Catalog returns a copy of the full catalogue in declaration order.
func Catalog() []EntryPointSpec {
	out := make([]EntryPointSpec, numEntryPoints)
	copy(out, catalog[:])
	for i := range out {
		out[i].Signature = abi.Sig(out[i].Signature.Return, out[i].Signature.Args...)
	}
	return out
}

var catalog = [numEntryPoints]EntryPointSpec{
	// GL 1.0
	entry(FnCullFace, Version10, "glCullFace", abi.Void, abi.Enum),
	entry(FnFrontFace, Version10, "glFrontFace", abi.Void, abi.Enum),
	entry(FnHint, Version10, "glHint", abi.Void, abi.Enum, abi.Enum),
	entry(FnLineWidth, Version10, "glLineWidth", abi.Void, abi.Float),
	entry(FnPointSize, Version10, "glPointSize", abi.Void, abi.Float),
	entry(FnPolygonMode, Version10, "glPolygonMode", abi.Void, abi.Enum, abi.Enum),
	entry(FnScissor, Version10, "glScissor", abi.Void, abi.Int, abi.Int, abi.Sizei, abi.Sizei),
	entry(FnTexParameterf, Version10, "glTexParameterf", abi.Void, abi.Enum, abi.Enum, abi.Float),
	entry(FnTexParameteri, Version10, "glTexParameteri", abi.Void, abi.Enum, abi.Enum, abi.Int),
	entry(FnTexImage1D, Version10, "glTexImage1D", abi.Void, abi.Enum, abi.Int, abi.Int, abi.Sizei, abi.Int, abi.Enum, abi.Enum, abi.Pointer),
	entry(FnTexImage2D, Version10, "glTexImage2D", abi.Void, abi.Enum, abi.Int, abi.Int, abi.Sizei, abi.Sizei, abi.Int, abi.Enum, abi.Enum, abi.Pointer),
	entry(FnDrawBuffer, Version10, "glDrawBuffer", abi.Void, abi.Enum),
	entry(FnClear, Version10, "glClear", abi.Void, abi.Bitfield),
	entry(FnClearColor, Version10, "glClearColor", abi.Void, abi.Float, abi.Float, abi.Float, abi.Float),
	entry(FnClearStencil, Version10, "glClearStencil", abi.Void, abi.Int),
	entry(FnClearDepth, Version10, "glClearDepth", abi.Void, abi.Double),
	entry(FnStencilMask, Version10, "glStencilMask", abi.Void, abi.Uint),
	entry(FnColorMask, Version10, "glColorMask", abi.Void, abi.Boolean, abi.Boolean, abi.Boolean, abi.Boolean),
	entry(FnDepthMask, Version10, "glDepthMask", abi.Void, abi.Boolean),
	entry(FnDisable, Version10, "glDisable", abi.Void, abi.Enum),
	entry(FnEnable, Version10, "glEnable", abi.Void, abi.Enum),
	entry(FnFinish, Version10, "glFinish", abi.Void),
	entry(FnFlush, Version10, "glFlush", abi.Void),
	entry(FnBlendFunc, Version10, "glBlendFunc", abi.Void, abi.Enum, abi.Enum),
	entry(FnLogicOp, Version10, "glLogicOp", abi.Void, abi.Enum),
	entry(FnStencilFunc, Version10, "glStencilFunc", abi.Void, abi.Enum, abi.Int, abi.Uint),
	entry(FnStencilOp, Version10, "glStencilOp", abi.Void, abi.Enum, abi.Enum, abi.Enum),
	entry(FnDepthFunc, Version10, "glDepthFunc", abi.Void, abi.Enum),
	entry(FnPixelStoref, Version10, "glPixelStoref", abi.Void, abi.Enum, abi.Float),
	entry(FnPixelStorei, Version10, "glPixelStorei", abi.Void, abi.Enum, abi.Int),
	entry(FnReadBuffer, Version10, "glReadBuffer", abi.Void, abi.Enum),
	entry(FnReadPixels, Version10, "glReadPixels", abi.Void, abi.Int, abi.Int, abi.Sizei, abi.Sizei, abi.Enum, abi.Enum, abi.Pointer),
	entry(FnGetBooleanv, Version10, "glGetBooleanv", abi.Void, abi.Enum, abi.Pointer),
	entry(FnGetDoublev, Version10, "glGetDoublev", abi.Void, abi.Enum, abi.Pointer),
	entry(FnGetError, Version10, "glGetError", abi.Enum),
	entry(FnGetFloatv, Version10, "glGetFloatv", abi.Void, abi.Enum, abi.Pointer),
	entry(FnGetIntegerv, Version10, "glGetIntegerv", abi.Void, abi.Enum, abi.Pointer),
	entry(FnGetString, Version10, "glGetString", abi.Pointer, abi.Enum),
	entry(FnGetTexImage, Version10, "glGetTexImage", abi.Void, abi.Enum, abi.Int, abi.Enum, abi.Enum, abi.Pointer),
	entry(FnIsEnabled, Version10, "glIsEnabled", abi.Boolean, abi.Enum),
	entry(FnDepthRange, Version10, "glDepthRange", abi.Void, abi.Double, abi.Double),
	entry(FnViewport, Version10, "glViewport", abi.Void, abi.Int, abi.Int, abi.Sizei, abi.Sizei),
	entry(FnBegin, Version10, "glBegin", abi.Void, abi.Enum).compatOnly(),
	entry(FnEnd, Version10, "glEnd", abi.Void).compatOnly(),
	entry(FnVertex3f, Version10, "glVertex3f", abi.Void, abi.Float, abi.Float, abi.Float).compatOnly(),
	entry(FnColor4f, Version10, "glColor4f", abi.Void, abi.Float, abi.Float, abi.Float, abi.Float).compatOnly(),
	entry(FnMatrixMode, Version10, "glMatrixMode", abi.Void, abi.Enum).compatOnly(),
	entry(FnLoadIdentity, Version10, "glLoadIdentity", abi.Void).compatOnly(),
	entry(FnNewList, Version10, "glNewList", abi.Void, abi.Uint, abi.Enum).compatOnly(),
	entry(FnEndList, Version10, "glEndList", abi.Void).compatOnly(),

	// GL 1.1
	entry(FnDrawArrays, Version11, "glDrawArrays", abi.Void, abi.Enum, abi.Int, abi.Sizei),
	entry(FnDrawElements, Version11, "glDrawElements", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Pointer),
	entry(FnPolygonOffset, Version11, "glPolygonOffset", abi.Void, abi.Float, abi.Float),
	entry(FnCopyTexImage2D, Version11, "glCopyTexImage2D", abi.Void, abi.Enum, abi.Int, abi.Enum, abi.Int, abi.Int, abi.Sizei, abi.Sizei, abi.Int),
	entry(FnTexSubImage2D, Version11, "glTexSubImage2D", abi.Void, abi.Enum, abi.Int, abi.Int, abi.Int, abi.Sizei, abi.Sizei, abi.Enum, abi.Enum, abi.Pointer),
	entry(FnBindTexture, Version11, "glBindTexture", abi.Void, abi.Enum, abi.Uint),
	entry(FnDeleteTextures, Version11, "glDeleteTextures", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnGenTextures, Version11, "glGenTextures", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnIsTexture, Version11, "glIsTexture", abi.Boolean, abi.Uint),
	entry(FnVertexPointer, Version11, "glVertexPointer", abi.Void, abi.Int, abi.Enum, abi.Sizei, abi.Pointer).rawOnly().compatOnly(),
	entry(FnEnableClientState, Version11, "glEnableClientState", abi.Void, abi.Enum).compatOnly(),

	// GL 1.2
	entry(FnDrawRangeElements, Version12, "glDrawRangeElements", abi.Void, abi.Enum, abi.Uint, abi.Uint, abi.Sizei, abi.Enum, abi.Pointer),
	entry(FnTexImage3D, Version12, "glTexImage3D", abi.Void, abi.Enum, abi.Int, abi.Int, abi.Sizei, abi.Sizei, abi.Sizei, abi.Int, abi.Enum, abi.Enum, abi.Pointer),
	entry(FnTexSubImage3D, Version12, "glTexSubImage3D", abi.Void, abi.Enum, abi.Int, abi.Int, abi.Int, abi.Int, abi.Sizei, abi.Sizei, abi.Sizei, abi.Enum, abi.Enum, abi.Pointer),

	// GL 1.3
	entry(FnActiveTexture, Version13, "glActiveTexture", abi.Void, abi.Enum),
	entry(FnSampleCoverage, Version13, "glSampleCoverage", abi.Void, abi.Float, abi.Boolean),
	entry(FnCompressedTexImage2D, Version13, "glCompressedTexImage2D", abi.Void, abi.Enum, abi.Int, abi.Enum, abi.Sizei, abi.Sizei, abi.Int, abi.Sizei, abi.Pointer),
	entry(FnClientActiveTexture, Version13, "glClientActiveTexture", abi.Void, abi.Enum).compatOnly(),

	// GL 1.4
	entry(FnBlendFuncSeparate, Version14, "glBlendFuncSeparate", abi.Void, abi.Enum, abi.Enum, abi.Enum, abi.Enum),
	entry(FnMultiDrawArrays, Version14, "glMultiDrawArrays", abi.Void, abi.Enum, abi.Pointer, abi.Pointer, abi.Sizei),
	entry(FnMultiDrawElements, Version14, "glMultiDrawElements", abi.Void, abi.Enum, abi.Pointer, abi.Enum, abi.Pointer, abi.Sizei),
	entry(FnPointParameterf, Version14, "glPointParameterf", abi.Void, abi.Enum, abi.Float),
	entry(FnBlendColor, Version14, "glBlendColor", abi.Void, abi.Float, abi.Float, abi.Float, abi.Float),
	entry(FnBlendEquation, Version14, "glBlendEquation", abi.Void, abi.Enum),

	// GL 1.5
	entry(FnGenQueries, Version15, "glGenQueries", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnDeleteQueries, Version15, "glDeleteQueries", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnBeginQuery, Version15, "glBeginQuery", abi.Void, abi.Enum, abi.Uint),
	entry(FnEndQuery, Version15, "glEndQuery", abi.Void, abi.Enum),
	entry(FnGetQueryObjectuiv, Version15, "glGetQueryObjectuiv", abi.Void, abi.Uint, abi.Enum, abi.Pointer),
	entry(FnBindBuffer, Version15, "glBindBuffer", abi.Void, abi.Enum, abi.Uint),
	entry(FnDeleteBuffers, Version15, "glDeleteBuffers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnGenBuffers, Version15, "glGenBuffers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnIsBuffer, Version15, "glIsBuffer", abi.Boolean, abi.Uint),
	entry(FnBufferData, Version15, "glBufferData", abi.Void, abi.Enum, abi.Sizeiptr, abi.Pointer, abi.Enum),
	entry(FnBufferSubData, Version15, "glBufferSubData", abi.Void, abi.Enum, abi.Intptr, abi.Sizeiptr, abi.Pointer),
	entry(FnGetBufferSubData, Version15, "glGetBufferSubData", abi.Void, abi.Enum, abi.Intptr, abi.Sizeiptr, abi.Pointer),
	entry(FnMapBuffer, Version15, "glMapBuffer", abi.Pointer, abi.Enum, abi.Enum).rawOnly(),
	entry(FnUnmapBuffer, Version15, "glUnmapBuffer", abi.Boolean, abi.Enum),

	// GL 2.0
	entry(FnBlendEquationSeparate, Version20, "glBlendEquationSeparate", abi.Void, abi.Enum, abi.Enum),
	entry(FnDrawBuffers, Version20, "glDrawBuffers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnStencilOpSeparate, Version20, "glStencilOpSeparate", abi.Void, abi.Enum, abi.Enum, abi.Enum, abi.Enum),
	entry(FnStencilFuncSeparate, Version20, "glStencilFuncSeparate", abi.Void, abi.Enum, abi.Enum, abi.Int, abi.Uint),
	entry(FnStencilMaskSeparate, Version20, "glStencilMaskSeparate", abi.Void, abi.Enum, abi.Uint),
	entry(FnAttachShader, Version20, "glAttachShader", abi.Void, abi.Uint, abi.Uint),
	entry(FnBindAttribLocation, Version20, "glBindAttribLocation", abi.Void, abi.Uint, abi.Uint, abi.Pointer),
	entry(FnCompileShader, Version20, "glCompileShader", abi.Void, abi.Uint),
	entry(FnCreateProgram, Version20, "glCreateProgram", abi.Uint),
	entry(FnCreateShader, Version20, "glCreateShader", abi.Uint, abi.Enum),
	entry(FnDeleteProgram, Version20, "glDeleteProgram", abi.Void, abi.Uint),
	entry(FnDeleteShader, Version20, "glDeleteShader", abi.Void, abi.Uint),
	entry(FnDetachShader, Version20, "glDetachShader", abi.Void, abi.Uint, abi.Uint),
	entry(FnDisableVertexAttribArray, Version20, "glDisableVertexAttribArray", abi.Void, abi.Uint),
	entry(FnEnableVertexAttribArray, Version20, "glEnableVertexAttribArray", abi.Void, abi.Uint),
	entry(FnGetActiveUniform, Version20, "glGetActiveUniform", abi.Void, abi.Uint, abi.Uint, abi.Sizei, abi.Pointer, abi.Pointer, abi.Pointer, abi.Pointer),
	entry(FnGetAttribLocation, Version20, "glGetAttribLocation", abi.Int, abi.Uint, abi.Pointer),
	entry(FnGetProgramiv, Version20, "glGetProgramiv", abi.Void, abi.Uint, abi.Enum, abi.Pointer),
	entry(FnGetProgramInfoLog, Version20, "glGetProgramInfoLog", abi.Void, abi.Uint, abi.Sizei, abi.Pointer, abi.Pointer),
	entry(FnGetShaderiv, Version20, "glGetShaderiv", abi.Void, abi.Uint, abi.Enum, abi.Pointer),
	entry(FnGetShaderInfoLog, Version20, "glGetShaderInfoLog", abi.Void, abi.Uint, abi.Sizei, abi.Pointer, abi.Pointer),
	entry(FnGetShaderSource, Version20, "glGetShaderSource", abi.Void, abi.Uint, abi.Sizei, abi.Pointer, abi.Pointer),
	entry(FnGetUniformLocation, Version20, "glGetUniformLocation", abi.Int, abi.Uint, abi.Pointer),
	entry(FnIsProgram, Version20, "glIsProgram", abi.Boolean, abi.Uint),
	entry(FnIsShader, Version20, "glIsShader", abi.Boolean, abi.Uint),
	entry(FnLinkProgram, Version20, "glLinkProgram", abi.Void, abi.Uint),
	entry(FnShaderSource, Version20, "glShaderSource", abi.Void, abi.Uint, abi.Sizei, abi.Pointer, abi.Pointer),
	entry(FnUseProgram, Version20, "glUseProgram", abi.Void, abi.Uint),
	entry(FnUniform1f, Version20, "glUniform1f", abi.Void, abi.Int, abi.Float),
	entry(FnUniform2f, Version20, "glUniform2f", abi.Void, abi.Int, abi.Float, abi.Float),
	entry(FnUniform4f, Version20, "glUniform4f", abi.Void, abi.Int, abi.Float, abi.Float, abi.Float, abi.Float),
	entry(FnUniform1i, Version20, "glUniform1i", abi.Void, abi.Int, abi.Int),
	entry(FnUniform1fv, Version20, "glUniform1fv", abi.Void, abi.Int, abi.Sizei, abi.Pointer),
	entry(FnUniform4fv, Version20, "glUniform4fv", abi.Void, abi.Int, abi.Sizei, abi.Pointer),
	entry(FnUniform1iv, Version20, "glUniform1iv", abi.Void, abi.Int, abi.Sizei, abi.Pointer),
	entry(FnUniformMatrix4fv, Version20, "glUniformMatrix4fv", abi.Void, abi.Int, abi.Sizei, abi.Boolean, abi.Pointer),
	entry(FnValidateProgram, Version20, "glValidateProgram", abi.Void, abi.Uint),
	entry(FnVertexAttribPointer, Version20, "glVertexAttribPointer", abi.Void, abi.Uint, abi.Int, abi.Enum, abi.Boolean, abi.Sizei, abi.Pointer).rawOnly(),

	// GL 2.1
	entry(FnUniformMatrix2x3fv, Version21, "glUniformMatrix2x3fv", abi.Void, abi.Int, abi.Sizei, abi.Boolean, abi.Pointer),
	entry(FnUniformMatrix3x4fv, Version21, "glUniformMatrix3x4fv", abi.Void, abi.Int, abi.Sizei, abi.Boolean, abi.Pointer),

	// GL 3.0
	entry(FnColorMaski, Version30, "glColorMaski", abi.Void, abi.Uint, abi.Boolean, abi.Boolean, abi.Boolean, abi.Boolean),
	entry(FnGetIntegeriV, Version30, "glGetIntegeri_v", abi.Void, abi.Enum, abi.Uint, abi.Pointer),
	entry(FnEnablei, Version30, "glEnablei", abi.Void, abi.Enum, abi.Uint),
	entry(FnDisablei, Version30, "glDisablei", abi.Void, abi.Enum, abi.Uint),
	entry(FnBeginTransformFeedback, Version30, "glBeginTransformFeedback", abi.Void, abi.Enum),
	entry(FnEndTransformFeedback, Version30, "glEndTransformFeedback", abi.Void),
	entry(FnBindBufferRange, Version30, "glBindBufferRange", abi.Void, abi.Enum, abi.Uint, abi.Uint, abi.Intptr, abi.Sizeiptr),
	entry(FnBindBufferBase, Version30, "glBindBufferBase", abi.Void, abi.Enum, abi.Uint, abi.Uint),
	entry(FnTransformFeedbackVaryings, Version30, "glTransformFeedbackVaryings", abi.Void, abi.Uint, abi.Sizei, abi.Pointer, abi.Enum),
	entry(FnVertexAttribIPointer, Version30, "glVertexAttribIPointer", abi.Void, abi.Uint, abi.Int, abi.Enum, abi.Sizei, abi.Pointer).rawOnly(),
	entry(FnBindFragDataLocation, Version30, "glBindFragDataLocation", abi.Void, abi.Uint, abi.Uint, abi.Pointer),
	entry(FnClearBufferiv, Version30, "glClearBufferiv", abi.Void, abi.Enum, abi.Int, abi.Pointer),
	entry(FnClearBufferfv, Version30, "glClearBufferfv", abi.Void, abi.Enum, abi.Int, abi.Pointer),
	entry(FnClearBufferfi, Version30, "glClearBufferfi", abi.Void, abi.Enum, abi.Int, abi.Float, abi.Int),
	entry(FnGetStringi, Version30, "glGetStringi", abi.Pointer, abi.Enum, abi.Uint),
	entry(FnBindRenderbuffer, Version30, "glBindRenderbuffer", abi.Void, abi.Enum, abi.Uint),
	entry(FnDeleteRenderbuffers, Version30, "glDeleteRenderbuffers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnGenRenderbuffers, Version30, "glGenRenderbuffers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnRenderbufferStorage, Version30, "glRenderbufferStorage", abi.Void, abi.Enum, abi.Enum, abi.Sizei, abi.Sizei),
	entry(FnBindFramebuffer, Version30, "glBindFramebuffer", abi.Void, abi.Enum, abi.Uint),
	entry(FnDeleteFramebuffers, Version30, "glDeleteFramebuffers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnGenFramebuffers, Version30, "glGenFramebuffers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnCheckFramebufferStatus, Version30, "glCheckFramebufferStatus", abi.Enum, abi.Enum),
	entry(FnFramebufferTexture2D, Version30, "glFramebufferTexture2D", abi.Void, abi.Enum, abi.Enum, abi.Enum, abi.Uint, abi.Int),
	entry(FnFramebufferRenderbuffer, Version30, "glFramebufferRenderbuffer", abi.Void, abi.Enum, abi.Enum, abi.Enum, abi.Uint),
	entry(FnGenerateMipmap, Version30, "glGenerateMipmap", abi.Void, abi.Enum),
	entry(FnBlitFramebuffer, Version30, "glBlitFramebuffer", abi.Void, abi.Int, abi.Int, abi.Int, abi.Int, abi.Int, abi.Int, abi.Int, abi.Int, abi.Bitfield, abi.Enum),
	entry(FnRenderbufferStorageMultisample, Version30, "glRenderbufferStorageMultisample", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Sizei, abi.Sizei),
	entry(FnFramebufferTextureLayer, Version30, "glFramebufferTextureLayer", abi.Void, abi.Enum, abi.Enum, abi.Uint, abi.Int, abi.Int),
	entry(FnMapBufferRange, Version30, "glMapBufferRange", abi.Pointer, abi.Enum, abi.Intptr, abi.Sizeiptr, abi.Bitfield).rawOnly(),
	entry(FnFlushMappedBufferRange, Version30, "glFlushMappedBufferRange", abi.Void, abi.Enum, abi.Intptr, abi.Sizeiptr),
	entry(FnBindVertexArray, Version30, "glBindVertexArray", abi.Void, abi.Uint),
	entry(FnDeleteVertexArrays, Version30, "glDeleteVertexArrays", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnGenVertexArrays, Version30, "glGenVertexArrays", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnIsVertexArray, Version30, "glIsVertexArray", abi.Boolean, abi.Uint),

	// GL 3.1
	entry(FnDrawArraysInstanced, Version31, "glDrawArraysInstanced", abi.Void, abi.Enum, abi.Int, abi.Sizei, abi.Sizei),
	entry(FnDrawElementsInstanced, Version31, "glDrawElementsInstanced", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Pointer, abi.Sizei),
	entry(FnTexBuffer, Version31, "glTexBuffer", abi.Void, abi.Enum, abi.Enum, abi.Uint),
	entry(FnPrimitiveRestartIndex, Version31, "glPrimitiveRestartIndex", abi.Void, abi.Uint),
	entry(FnCopyBufferSubData, Version31, "glCopyBufferSubData", abi.Void, abi.Enum, abi.Enum, abi.Intptr, abi.Intptr, abi.Sizeiptr),
	entry(FnGetUniformIndices, Version31, "glGetUniformIndices", abi.Void, abi.Uint, abi.Sizei, abi.Pointer, abi.Pointer),
	entry(FnGetActiveUniformsiv, Version31, "glGetActiveUniformsiv", abi.Void, abi.Uint, abi.Sizei, abi.Pointer, abi.Enum, abi.Pointer),
	entry(FnGetUniformBlockIndex, Version31, "glGetUniformBlockIndex", abi.Uint, abi.Uint, abi.Pointer),
	entry(FnGetActiveUniformBlockiv, Version31, "glGetActiveUniformBlockiv", abi.Void, abi.Uint, abi.Uint, abi.Enum, abi.Pointer),
	entry(FnUniformBlockBinding, Version31, "glUniformBlockBinding", abi.Void, abi.Uint, abi.Uint, abi.Uint),

	// GL 3.2
	entry(FnDrawElementsBaseVertex, Version32, "glDrawElementsBaseVertex", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Pointer, abi.Int),
	entry(FnDrawElementsInstancedBaseVertex, Version32, "glDrawElementsInstancedBaseVertex", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Pointer, abi.Sizei, abi.Int),
	entry(FnProvokingVertex, Version32, "glProvokingVertex", abi.Void, abi.Enum),
	entry(FnFenceSync, Version32, "glFenceSync", abi.Sync, abi.Enum, abi.Bitfield),
	entry(FnIsSync, Version32, "glIsSync", abi.Boolean, abi.Sync),
	entry(FnDeleteSync, Version32, "glDeleteSync", abi.Void, abi.Sync),
	entry(FnClientWaitSync, Version32, "glClientWaitSync", abi.Enum, abi.Sync, abi.Bitfield, abi.Uint64),
	entry(FnWaitSync, Version32, "glWaitSync", abi.Void, abi.Sync, abi.Bitfield, abi.Uint64),
	entry(FnGetInteger64v, Version32, "glGetInteger64v", abi.Void, abi.Enum, abi.Pointer),
	entry(FnGetSynciv, Version32, "glGetSynciv", abi.Void, abi.Sync, abi.Enum, abi.Sizei, abi.Pointer, abi.Pointer),
	entry(FnFramebufferTexture, Version32, "glFramebufferTexture", abi.Void, abi.Enum, abi.Enum, abi.Uint, abi.Int),
	entry(FnTexImage2DMultisample, Version32, "glTexImage2DMultisample", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Sizei, abi.Sizei, abi.Boolean),
	entry(FnSampleMaski, Version32, "glSampleMaski", abi.Void, abi.Uint, abi.Bitfield),

	// GL 3.3
	entry(FnBindFragDataLocationIndexed, Version33, "glBindFragDataLocationIndexed", abi.Void, abi.Uint, abi.Uint, abi.Uint, abi.Pointer),
	entry(FnGenSamplers, Version33, "glGenSamplers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnDeleteSamplers, Version33, "glDeleteSamplers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnBindSampler, Version33, "glBindSampler", abi.Void, abi.Uint, abi.Uint),
	entry(FnSamplerParameteri, Version33, "glSamplerParameteri", abi.Void, abi.Uint, abi.Enum, abi.Int),
	entry(FnSamplerParameterf, Version33, "glSamplerParameterf", abi.Void, abi.Uint, abi.Enum, abi.Float),
	entry(FnQueryCounter, Version33, "glQueryCounter", abi.Void, abi.Uint, abi.Enum),
	entry(FnGetQueryObjectui64v, Version33, "glGetQueryObjectui64v", abi.Void, abi.Uint, abi.Enum, abi.Pointer),
	entry(FnVertexAttribDivisor, Version33, "glVertexAttribDivisor", abi.Void, abi.Uint, abi.Uint),

	// GL 4.0
	entry(FnMinSampleShading, Version40, "glMinSampleShading", abi.Void, abi.Float),
	entry(FnBlendEquationi, Version40, "glBlendEquationi", abi.Void, abi.Uint, abi.Enum),
	entry(FnBlendFunci, Version40, "glBlendFunci", abi.Void, abi.Uint, abi.Enum, abi.Enum),
	entry(FnDrawArraysIndirect, Version40, "glDrawArraysIndirect", abi.Void, abi.Enum, abi.Pointer),
	entry(FnDrawElementsIndirect, Version40, "glDrawElementsIndirect", abi.Void, abi.Enum, abi.Enum, abi.Pointer),
	entry(FnPatchParameteri, Version40, "glPatchParameteri", abi.Void, abi.Enum, abi.Int),
	entry(FnBindTransformFeedback, Version40, "glBindTransformFeedback", abi.Void, abi.Enum, abi.Uint),
	entry(FnGenTransformFeedbacks, Version40, "glGenTransformFeedbacks", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnDrawTransformFeedback, Version40, "glDrawTransformFeedback", abi.Void, abi.Enum, abi.Uint),

	// GL 4.1
	entry(FnReleaseShaderCompiler, Version41, "glReleaseShaderCompiler", abi.Void),
	entry(FnShaderBinary, Version41, "glShaderBinary", abi.Void, abi.Sizei, abi.Pointer, abi.Enum, abi.Pointer, abi.Sizei),
	entry(FnDepthRangef, Version41, "glDepthRangef", abi.Void, abi.Float, abi.Float),
	entry(FnClearDepthf, Version41, "glClearDepthf", abi.Void, abi.Float),
	entry(FnGetProgramBinary, Version41, "glGetProgramBinary", abi.Void, abi.Uint, abi.Sizei, abi.Pointer, abi.Pointer, abi.Pointer),
	entry(FnProgramBinary, Version41, "glProgramBinary", abi.Void, abi.Uint, abi.Enum, abi.Pointer, abi.Sizei),
	entry(FnProgramParameteri, Version41, "glProgramParameteri", abi.Void, abi.Uint, abi.Enum, abi.Int),
	entry(FnUseProgramStages, Version41, "glUseProgramStages", abi.Void, abi.Uint, abi.Bitfield, abi.Uint),
	entry(FnCreateShaderProgramv, Version41, "glCreateShaderProgramv", abi.Uint, abi.Enum, abi.Sizei, abi.Pointer),
	entry(FnGenProgramPipelines, Version41, "glGenProgramPipelines", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnBindProgramPipeline, Version41, "glBindProgramPipeline", abi.Void, abi.Uint),
	entry(FnViewportIndexedf, Version41, "glViewportIndexedf", abi.Void, abi.Uint, abi.Float, abi.Float, abi.Float, abi.Float),

	// GL 4.2
	entry(FnDrawArraysInstancedBaseInstance, Version42, "glDrawArraysInstancedBaseInstance", abi.Void, abi.Enum, abi.Int, abi.Sizei, abi.Sizei, abi.Uint),
	entry(FnDrawElementsInstancedBaseInstance, Version42, "glDrawElementsInstancedBaseInstance", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Pointer, abi.Sizei, abi.Uint),
	entry(FnBindImageTexture, Version42, "glBindImageTexture", abi.Void, abi.Uint, abi.Uint, abi.Int, abi.Boolean, abi.Int, abi.Enum, abi.Enum),
	entry(FnMemoryBarrier, Version42, "glMemoryBarrier", abi.Void, abi.Bitfield),
	entry(FnTexStorage1D, Version42, "glTexStorage1D", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Sizei),
	entry(FnTexStorage2D, Version42, "glTexStorage2D", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Sizei, abi.Sizei),
	entry(FnTexStorage3D, Version42, "glTexStorage3D", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Sizei, abi.Sizei, abi.Sizei),

	// GL 4.3
	entry(FnClearBufferData, Version43, "glClearBufferData", abi.Void, abi.Enum, abi.Enum, abi.Enum, abi.Enum, abi.Pointer),
	entry(FnDispatchCompute, Version43, "glDispatchCompute", abi.Void, abi.Uint, abi.Uint, abi.Uint),
	entry(FnDispatchComputeIndirect, Version43, "glDispatchComputeIndirect", abi.Void, abi.Intptr),
	entry(FnCopyImageSubData, Version43, "glCopyImageSubData", abi.Void, abi.Uint, abi.Enum, abi.Int, abi.Int, abi.Int, abi.Int, abi.Uint, abi.Enum, abi.Int, abi.Int, abi.Int, abi.Int, abi.Sizei, abi.Sizei, abi.Sizei),
	entry(FnInvalidateFramebuffer, Version43, "glInvalidateFramebuffer", abi.Void, abi.Enum, abi.Sizei, abi.Pointer),
	entry(FnMultiDrawArraysIndirect, Version43, "glMultiDrawArraysIndirect", abi.Void, abi.Enum, abi.Pointer, abi.Sizei, abi.Sizei),
	entry(FnMultiDrawElementsIndirect, Version43, "glMultiDrawElementsIndirect", abi.Void, abi.Enum, abi.Enum, abi.Pointer, abi.Sizei, abi.Sizei),
	entry(FnTexStorage2DMultisample, Version43, "glTexStorage2DMultisample", abi.Void, abi.Enum, abi.Sizei, abi.Enum, abi.Sizei, abi.Sizei, abi.Boolean),
	entry(FnDebugMessageControl, Version43, "glDebugMessageControl", abi.Void, abi.Enum, abi.Enum, abi.Enum, abi.Sizei, abi.Pointer, abi.Boolean),
	entry(FnDebugMessageInsert, Version43, "glDebugMessageInsert", abi.Void, abi.Enum, abi.Enum, abi.Uint, abi.Enum, abi.Sizei, abi.Pointer),
	entry(FnDebugMessageCallback, Version43, "glDebugMessageCallback", abi.Void, abi.Pointer, abi.Pointer).rawOnly(),
	entry(FnGetDebugMessageLog, Version43, "glGetDebugMessageLog", abi.Uint, abi.Uint, abi.Sizei, abi.Pointer, abi.Pointer, abi.Pointer, abi.Pointer, abi.Pointer, abi.Pointer),
	entry(FnPushDebugGroup, Version43, "glPushDebugGroup", abi.Void, abi.Enum, abi.Uint, abi.Sizei, abi.Pointer),
	entry(FnPopDebugGroup, Version43, "glPopDebugGroup", abi.Void),
	entry(FnObjectLabel, Version43, "glObjectLabel", abi.Void, abi.Enum, abi.Uint, abi.Sizei, abi.Pointer),
	entry(FnGetObjectLabel, Version43, "glGetObjectLabel", abi.Void, abi.Enum, abi.Uint, abi.Sizei, abi.Pointer, abi.Pointer),
	entry(FnGetPointerv, Version43, "glGetPointerv", abi.Void, abi.Enum, abi.Pointer).rawOnly(),
	entry(FnTextureView, Version43, "glTextureView", abi.Void, abi.Uint, abi.Enum, abi.Uint, abi.Enum, abi.Uint, abi.Uint, abi.Uint, abi.Uint),
	entry(FnVertexAttribFormat, Version43, "glVertexAttribFormat", abi.Void, abi.Uint, abi.Int, abi.Enum, abi.Boolean, abi.Uint),
	entry(FnVertexAttribIFormat, Version43, "glVertexAttribIFormat", abi.Void, abi.Uint, abi.Int, abi.Enum, abi.Uint),
	entry(FnBindVertexBuffer, Version43, "glBindVertexBuffer", abi.Void, abi.Uint, abi.Uint, abi.Intptr, abi.Sizei),
	entry(FnVertexAttribBinding, Version43, "glVertexAttribBinding", abi.Void, abi.Uint, abi.Uint),

	// GL 4.4
	entry(FnBufferStorage, Version44, "glBufferStorage", abi.Void, abi.Enum, abi.Sizeiptr, abi.Pointer, abi.Bitfield),
	entry(FnClearTexImage, Version44, "glClearTexImage", abi.Void, abi.Uint, abi.Int, abi.Enum, abi.Enum, abi.Pointer),
	entry(FnBindBuffersBase, Version44, "glBindBuffersBase", abi.Void, abi.Enum, abi.Uint, abi.Sizei, abi.Pointer),
	entry(FnBindTextures, Version44, "glBindTextures", abi.Void, abi.Uint, abi.Sizei, abi.Pointer),

	// GL 4.5
	entry(FnClipControl, Version45, "glClipControl", abi.Void, abi.Enum, abi.Enum),
	entry(FnCreateBuffers, Version45, "glCreateBuffers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnNamedBufferStorage, Version45, "glNamedBufferStorage", abi.Void, abi.Uint, abi.Sizeiptr, abi.Pointer, abi.Bitfield),
	entry(FnNamedBufferData, Version45, "glNamedBufferData", abi.Void, abi.Uint, abi.Sizeiptr, abi.Pointer, abi.Enum),
	entry(FnNamedBufferSubData, Version45, "glNamedBufferSubData", abi.Void, abi.Uint, abi.Intptr, abi.Sizeiptr, abi.Pointer),
	entry(FnCreateFramebuffers, Version45, "glCreateFramebuffers", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnCreateTextures, Version45, "glCreateTextures", abi.Void, abi.Enum, abi.Sizei, abi.Pointer),
	entry(FnTextureStorage2D, Version45, "glTextureStorage2D", abi.Void, abi.Uint, abi.Sizei, abi.Enum, abi.Sizei, abi.Sizei),
	entry(FnTextureSubImage2D, Version45, "glTextureSubImage2D", abi.Void, abi.Uint, abi.Int, abi.Int, abi.Int, abi.Sizei, abi.Sizei, abi.Enum, abi.Enum, abi.Pointer),
	entry(FnBindTextureUnit, Version45, "glBindTextureUnit", abi.Void, abi.Uint, abi.Uint),
	entry(FnCreateVertexArrays, Version45, "glCreateVertexArrays", abi.Void, abi.Sizei, abi.Pointer),
	entry(FnVertexArrayVertexBuffer, Version45, "glVertexArrayVertexBuffer", abi.Void, abi.Uint, abi.Uint, abi.Uint, abi.Intptr, abi.Sizei),
	entry(FnVertexArrayElementBuffer, Version45, "glVertexArrayElementBuffer", abi.Void, abi.Uint, abi.Uint),
	entry(FnEnableVertexArrayAttrib, Version45, "glEnableVertexArrayAttrib", abi.Void, abi.Uint, abi.Uint),
	entry(FnGetGraphicsResetStatus, Version45, "glGetGraphicsResetStatus", abi.Enum),
	entry(FnMemoryBarrierByRegion, Version45, "glMemoryBarrierByRegion", abi.Void, abi.Bitfield),
	entry(FnTextureBarrier, Version45, "glTextureBarrier", abi.Void),
	entry(FnGetnUniformfv, Version45, "glGetnUniformfv", abi.Void, abi.Uint, abi.Int, abi.Sizei, abi.Pointer),

	// GL 4.6
	entry(FnSpecializeShader, Version46, "glSpecializeShader", abi.Void, abi.Uint, abi.Pointer, abi.Uint, abi.Pointer, abi.Pointer),
	entry(FnMultiDrawArraysIndirectCount, Version46, "glMultiDrawArraysIndirectCount", abi.Void, abi.Enum, abi.Pointer, abi.Intptr, abi.Sizei, abi.Sizei),
	entry(FnMultiDrawElementsIndirectCount, Version46, "glMultiDrawElementsIndirectCount", abi.Void, abi.Enum, abi.Enum, abi.Pointer, abi.Intptr, abi.Sizei, abi.Sizei),
	entry(FnPolygonOffsetClamp, Version46, "glPolygonOffsetClamp", abi.Void, abi.Float, abi.Float, abi.Float),
}
