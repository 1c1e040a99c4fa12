// Package shader translates WGSL to GLSL with naga and uploads the result
// through a bound GL surface.
//
// Example:
//
//	id, err := shader.Compile(gl, shader.Vertex, src, shader.Options{})
//	var ce *shader.CompileError
//	if errors.As(err, &ce) {
//	    log.Print(ce.Log)
//	}
package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/glbind"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
)

// Errors returned by Translate and Compile.
var (
	ErrVersion   = errors.New("shader: GL version has no GLSL target")
	ErrStage     = errors.New("shader: stage not supported by the GLSL version")
	ErrTranslate = errors.New("shader: WGSL translation failed")
)

// Stage is a GL shader type.
type Stage uint32

// Shader stages.
const (
	Vertex   Stage = glbind.VERTEX_SHADER
	Fragment Stage = glbind.FRAGMENT_SHADER
	Compute  Stage = glbind.COMPUTE_SHADER
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	case Compute:
		return "compute"
	default:
		return fmt.Sprintf("stage(0x%X)", uint32(s))
	}
}

// Options configures translation.
type Options struct {
	// Version is the target GL version. Compile uses the table's descriptor
	// version when it is zero; Translate falls back to GL 3.3.
	Version glbind.Version

	// EntryPoint selects the WGSL entry point. Empty picks the first one.
	EntryPoint string

	// ClipSpace rewrites gl_Position from WebGPU clip space (Y down, Z in
	// [0,1]) to the GL convention.
	ClipSpace bool

	// Validate runs naga's IR validator before code generation.
	Validate bool
}

var glslVersions = map[glbind.Version]glsl.Version{
	glbind.Version33: glsl.Version330,
	glbind.Version40: glsl.Version400,
	glbind.Version41: glsl.Version410,
	glbind.Version42: glsl.Version420,
	glbind.Version43: glsl.Version430,
	glbind.Version44: {Major: 4, Minor: 40},
	glbind.Version45: glsl.Version450,
	glbind.Version46: glsl.Version460,
}

// GLSLVersion returns the GLSL language version shipped with GL version v.
// Versions before 3.3 have no naga target.
func GLSLVersion(v glbind.Version) (glsl.Version, error) {
	gv, ok := glslVersions[v]
	if !ok {
		return glsl.Version{}, fmt.Errorf("%w: GL %s", ErrVersion, v)
	}
	return gv, nil
}

// Translate compiles WGSL source to GLSL.
func Translate(wgsl string, opts Options) (string, error) {
	src, _, err := translate(wgsl, 0, opts)
	return src, err
}

func translate(wgsl string, stage Stage, opts Options) (string, glsl.TranslationInfo, error) {
	v := opts.Version
	if v.IsZero() {
		v = glbind.Version33
	}
	gv, err := GLSLVersion(v)
	if err != nil {
		return "", glsl.TranslationInfo{}, err
	}
	if stage == Compute && !gv.SupportsCompute() {
		return "", glsl.TranslationInfo{}, fmt.Errorf("%w: %s needs GLSL 430, have %s", ErrStage, stage, gv)
	}

	ast, err := naga.Parse(wgsl)
	if err != nil {
		return "", glsl.TranslationInfo{}, fmt.Errorf("%w: %w", ErrTranslate, err)
	}
	module, err := naga.LowerWithSource(ast, wgsl)
	if err != nil {
		return "", glsl.TranslationInfo{}, fmt.Errorf("%w: %w", ErrTranslate, err)
	}
	if opts.Validate {
		verrs, err := naga.Validate(module)
		if err != nil {
			return "", glsl.TranslationInfo{}, fmt.Errorf("%w: %w", ErrTranslate, err)
		}
		if len(verrs) > 0 {
			errs := make([]error, len(verrs))
			for i, e := range verrs {
				errs[i] = e
			}
			return "", glsl.TranslationInfo{}, fmt.Errorf("%w: %w", ErrTranslate, errors.Join(errs...))
		}
	}

	gopts := glsl.DefaultOptions()
	gopts.LangVersion = gv
	gopts.EntryPoint = opts.EntryPoint
	if opts.ClipSpace {
		gopts.WriterFlags |= glsl.WriterFlagAdjustCoordinateSpace
	}
	src, info, err := glsl.Compile(module, gopts)
	if err != nil {
		return "", glsl.TranslationInfo{}, fmt.Errorf("%w: %w", ErrTranslate, err)
	}
	return src, info, nil
}

// CompileError reports a shader the driver rejected.
type CompileError struct {
	Stage  Stage
	Shader uint32
	Log    string
	Source string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("shader: %s shader %d failed to compile", e.Stage, e.Shader)
	}
	return fmt.Sprintf("shader: %s shader %d failed to compile: %s", e.Stage, e.Shader, e.Log)
}

// Compile translates wgsl, uploads it to a new shader object and compiles it.
// The shader object is deleted when compilation fails.
func Compile(gl *glbind.GL, stage Stage, wgsl string, opts Options) (uint32, error) {
	if opts.Version.IsZero() && gl != nil {
		opts.Version = gl.Table().Descriptor().Version
	}
	src, info, err := translate(wgsl, stage, opts)
	if err != nil {
		return 0, err
	}
	glbind.Logger().Debug("shader: translated",
		"stage", stage,
		"glsl", info.RequiredVersion.String(),
		"extensions", info.UsedExtensions)

	return CompileGLSL(gl, stage, src)
}

// CompileGLSL uploads GLSL source to a new shader object and compiles it.
func CompileGLSL(gl *glbind.GL, stage Stage, src string) (uint32, error) {
	id, err := gl.CreateShader(uint32(stage))
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("shader: glCreateShader(%s) returned 0", stage)
	}
	if err := gl.ShaderSource(id, src); err != nil {
		return 0, withCleanup(err, gl.DeleteShader(id))
	}
	if err := gl.CompileShader(id); err != nil {
		return 0, withCleanup(err, gl.DeleteShader(id))
	}
	ok, err := gl.GetShaderiv(id, glbind.COMPILE_STATUS)
	if err != nil {
		return 0, withCleanup(err, gl.DeleteShader(id))
	}
	if ok != 0 {
		return id, nil
	}

	ce := &CompileError{Stage: stage, Shader: id, Source: src}
	ce.Log, err = gl.ShaderInfoLog(id)
	return 0, withCleanup(ce, err, gl.DeleteShader(id))
}

// withCleanup returns primary unchanged unless cleanup steps failed too.
func withCleanup(primary error, more ...error) error {
	if err := errors.Join(more...); err != nil {
		return errors.Join(primary, err)
	}
	return primary
}
