package glbind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/glbind/internal/marshal"
)

// Configuration errors. Every descriptor failure is a *ConfigError that
// matches ErrInvalidConfig and one of the more specific sentinels below.
var (
	ErrInvalidConfig        = errors.New("glbind: invalid configuration")
	ErrNoVersion            = errors.New("glbind: no version selected")
	ErrMultipleVersions     = errors.New("glbind: more than one version selected")
	ErrUnsupportedVersion   = errors.New("glbind: unsupported version")
	ErrNoProfile            = errors.New("glbind: no profile selected")
	ErrMultipleProfiles     = errors.New("glbind: more than one profile selected")
	ErrUnsupportedProfile   = errors.New("glbind: unsupported profile")
	ErrContradictoryProfile = errors.New("glbind: profile contradicts version")
)

// Binding and call errors.
var (
	// ErrUnresolved is matched by *UnresolvedError.
	ErrUnresolved = errors.New("glbind: entry points could not be resolved")

	// ErrNotBound is returned by every call made before a table is ready.
	ErrNotBound = errors.New("glbind: binding table is not ready")

	// ErrAlreadyBound is returned by Init when the global table is ready.
	ErrAlreadyBound = errors.New("glbind: already bound")

	// ErrUnavailable is matched by *UnavailableError.
	ErrUnavailable = errors.New("glbind: entry point not selected by descriptor")

	// ErrSurfaceDisabled is returned when a surface is not enabled by the
	// descriptor's surface mode.
	ErrSurfaceDisabled = errors.New("glbind: surface disabled by descriptor")

	// ErrWrongThread is returned when thread checking is on and a call is
	// made from a thread other than the one that bound the table.
	ErrWrongThread = errors.New("glbind: call from a thread other than the binding thread")

	// ErrNoNativeAdapter is returned when no native call adapter is
	// available on this platform and no adapter was supplied.
	ErrNoNativeAdapter = errors.New("glbind: no native call adapter for this platform")
)

// Marshaling errors.
var (
	ErrEmptyInput        = marshal.ErrEmptyInput
	ErrEmbeddedNUL       = marshal.ErrEmbeddedNUL
	ErrLengthMismatch    = errors.New("glbind: paired arrays differ in length")
	ErrLengthOutOfRange  = errors.New("glbind: native length outside buffer capacity")
	ErrNullString        = errors.New("glbind: native returned a null string")
	ErrUnsupportedFormat = errors.New("glbind: format has no OpenGL mapping")
	ErrDecode            = marshal.ErrDecode
	ErrEncode            = marshal.ErrEncode
)

// ConfigError reports an invalid capability configuration.
type ConfigError struct {
	Field  string // "version", "profile" or "surface"
	Reason string
	Err    error // specific sentinel
}

func (e *ConfigError) Error() string {
	return "glbind: invalid " + e.Field + ": " + e.Reason
}

// Unwrap returns the specific sentinel and ErrInvalidConfig.
func (e *ConfigError) Unwrap() []error {
	if e.Err == nil || e.Err == ErrInvalidConfig {
		return []error{ErrInvalidConfig}
	}
	return []error{e.Err, ErrInvalidConfig}
}

func configErr(field, reason string, err error) error {
	return &ConfigError{Field: field, Reason: reason, Err: err}
}

// UnresolvedError lists every selected entry point the resolver could not
// provide. Names are in catalogue order.
type UnresolvedError struct {
	Descriptor Descriptor
	Names      []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("glbind: %d entry point(s) unresolved for %s: %s",
		len(e.Names), e.Descriptor, strings.Join(e.Names, ", "))
}

// Is reports whether target is ErrUnresolved.
func (e *UnresolvedError) Is(target error) bool { return target == ErrUnresolved }

// AdaptError reports an entry point whose address resolved but could not be
// turned into a callable.
type AdaptError struct {
	Name string
	Err  error
}

func (e *AdaptError) Error() string {
	return "glbind: adapt " + e.Name + ": " + e.Err.Error()
}

func (e *AdaptError) Unwrap() error { return e.Err }

// UnavailableError is returned when a call names an entry point the table's
// descriptor did not select.
type UnavailableError struct {
	Entry      EntryPoint
	Descriptor Descriptor
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("glbind: %s is not available for %s", e.Entry, e.Descriptor)
}

// Is reports whether target is ErrUnavailable.
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// DecodeError reports native text that is not valid in the table's text
// encoding.
type DecodeError struct {
	Entry  EntryPoint
	Offset int // byte offset of the first undecodable byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("glbind: %s: decode text at byte %d: %v", e.Entry, e.Offset, e.Err)
}

// Unwrap returns ErrDecode and the underlying codec error.
func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }

// LengthError reports a native length that fell outside the caller's buffer.
type LengthError struct {
	Entry    EntryPoint
	Length   int
	Capacity int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("glbind: %s: native length %d outside capacity %d", e.Entry, e.Length, e.Capacity)
}

// Is reports whether target is ErrLengthOutOfRange.
func (e *LengthError) Is(target error) bool { return target == ErrLengthOutOfRange }

// callErr attaches the entry-point name to a marshaling failure.
func callErr(ep EntryPoint, err error) error {
	if err == nil {
		return nil
	}
	var de *marshal.DecodeError
	if errors.As(err, &de) {
		return &DecodeError{Entry: ep, Offset: de.Offset, Err: de.Err}
	}
	return fmt.Errorf("glbind: %s: %w", ep, err)
}
