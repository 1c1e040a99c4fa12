// Package abi describes the native shape of OpenGL entry points.
//
// A [Signature] lists the scalar [Kind] of the return value and of every
// argument in declaration order. Signatures are pure data: the binding layer
// turns them into prepared call interfaces, and two entry points with the same
// signature share one prepared interface.
package abi

import (
	"strings"
)

// Kind is the native type of one argument or return value.
// Kinds are named after the GL scalar typedefs they stand for.
type Kind uint8

// Native kinds.
const (
	Void     Kind = iota // void (return only)
	Boolean              // GLboolean, 8-bit unsigned
	Byte                 // GLbyte
	Ubyte                // GLubyte
	Short                // GLshort
	Ushort               // GLushort
	Enum                 // GLenum, 32-bit unsigned
	Bitfield             // GLbitfield, 32-bit unsigned
	Int                  // GLint, 32-bit signed
	Uint                 // GLuint, 32-bit unsigned
	Sizei                // GLsizei, 32-bit signed
	Float                // GLfloat
	Double               // GLdouble
	Int64                // GLint64
	Uint64               // GLuint64
	Intptr               // GLintptr, pointer-sized signed
	Sizeiptr             // GLsizeiptr, pointer-sized signed
	Pointer              // any data pointer (const void*, GLchar*, GLint*, ...)
	Sync                 // GLsync, opaque pointer-sized handle
	numKinds
)

var kindNames = [numKinds]string{
	Void:     "void",
	Boolean:  "GLboolean",
	Byte:     "GLbyte",
	Ubyte:    "GLubyte",
	Short:    "GLshort",
	Ushort:   "GLushort",
	Enum:     "GLenum",
	Bitfield: "GLbitfield",
	Int:      "GLint",
	Uint:     "GLuint",
	Sizei:    "GLsizei",
	Float:    "GLfloat",
	Double:   "GLdouble",
	Int64:    "GLint64",
	Uint64:   "GLuint64",
	Intptr:   "GLintptr",
	Sizeiptr: "GLsizeiptr",
	Pointer:  "void*",
	Sync:     "GLsync",
}

// keyChars gives each kind a one-byte code for Signature.Key.
const keyChars = "vbcChHeBiuzfdlLpsPS"

// String returns the GL spelling of the kind.
func (k Kind) String() string {
	if k >= numKinds {
		return "invalid"
	}
	return kindNames[k]
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k < numKinds }

// Size returns the native width of the kind in bytes on a 64-bit target.
// Void has size 0.
func (k Kind) Size() uintptr {
	switch k {
	case Void:
		return 0
	case Boolean, Byte, Ubyte:
		return 1
	case Short, Ushort:
		return 2
	case Enum, Bitfield, Int, Uint, Sizei, Float:
		return 4
	default:
		return 8
	}
}

// IsFloat reports whether the kind travels in a floating-point register.
func (k Kind) IsFloat() bool { return k == Float || k == Double }

// IsAddress reports whether the kind is pointer-sized and carries an address
// or an opaque handle.
func (k Kind) IsAddress() bool { return k == Pointer || k == Sync }

// Signature is the native shape of an entry point.
type Signature struct {
	Return Kind
	Args   []Kind
}

// Sig builds a Signature. The argument slice is copied.
func Sig(ret Kind, args ...Kind) Signature {
	a := make([]Kind, len(args))
	copy(a, args)
	return Signature{Return: ret, Args: a}
}

// Key returns a compact string that is equal for equal signatures.
// It is suitable as a map key.
func (s Signature) Key() string {
	var b strings.Builder
	b.Grow(len(s.Args) + 2)
	b.WriteByte(s.Return.keyChar())
	b.WriteByte(':')
	for _, a := range s.Args {
		b.WriteByte(a.keyChar())
	}
	return b.String()
}

func (k Kind) keyChar() byte {
	if k >= numKinds {
		return '?'
	}
	return keyChars[k]
}

// Valid reports whether every kind is known and Void appears only as the
// return kind.
func (s Signature) Valid() bool {
	if !s.Return.Valid() {
		return false
	}
	for _, a := range s.Args {
		if !a.Valid() || a == Void {
			return false
		}
	}
	return true
}

// String renders the signature as a C prototype without a name,
// e.g. "void(GLenum, GLuint)".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Return.String())
	b.WriteByte('(')
	for i, a := range s.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether two signatures describe the same native shape.
func (s Signature) Equal(o Signature) bool {
	if s.Return != o.Return || len(s.Args) != len(o.Args) {
		return false
	}
	for i := range s.Args {
		if s.Args[i] != o.Args[i] {
			return false
		}
	}
	return true
}
