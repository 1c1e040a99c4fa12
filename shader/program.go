package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/glbind"
)

// LinkError reports a program the driver failed to link.
type LinkError struct {
	Program uint32
	Log     string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("shader: program %d failed to link", e.Program)
	}
	return fmt.Sprintf("shader: program %d failed to link: %s", e.Program, e.Log)
}

// Link creates a program from compiled shaders and links it. The shaders are
// detached afterwards; deleting them stays with the caller. The program is
// deleted when linking fails.
func Link(gl *glbind.GL, shaders ...uint32) (uint32, error) {
	prog, err := gl.CreateProgram()
	if err != nil {
		return 0, err
	}
	if prog == 0 {
		return 0, errors.New("shader: glCreateProgram returned 0")
	}
	for _, s := range shaders {
		if err := gl.AttachShader(prog, s); err != nil {
			return 0, withCleanup(err, gl.DeleteProgram(prog))
		}
	}
	linkErr := gl.LinkProgram(prog)
	for _, s := range shaders {
		if err := gl.DetachShader(prog, s); err != nil && linkErr == nil {
			linkErr = err
		}
	}
	if linkErr != nil {
		return 0, withCleanup(linkErr, gl.DeleteProgram(prog))
	}

	ok, err := gl.GetProgramiv(prog, glbind.LINK_STATUS)
	if err != nil {
		return 0, withCleanup(err, gl.DeleteProgram(prog))
	}
	if ok != 0 {
		return prog, nil
	}
	le := &LinkError{Program: prog}
	le.Log, err = gl.ProgramInfoLog(prog)
	return 0, withCleanup(le, err, gl.DeleteProgram(prog))
}
