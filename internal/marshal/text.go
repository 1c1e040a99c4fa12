package marshal

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Text errors.
var (
	ErrEmbeddedNUL = errors.New("glbind: string contains NUL")
	ErrDecode      = errors.New("glbind: native text is not valid in the text encoding")
	ErrEncode      = errors.New("glbind: string cannot be represented in the text encoding")
)

// DecodeError reports the byte offset at which decoding failed.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode text at byte %d: %v", e.Offset, e.Err)
}

// Unwrap returns ErrDecode and the codec error.
func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }

// Codec converts between Go strings and native text.
// The zero Codec is strict UTF-8: invalid input is an error, never replaced.
type Codec struct {
	enc encoding.Encoding
}

// UTF8 returns the strict UTF-8 codec.
func UTF8() Codec { return Codec{} }

// NewCodec returns a codec for enc. A nil enc selects strict UTF-8.
func NewCodec(enc encoding.Encoding) Codec { return Codec{enc: enc} }

// IsUTF8 reports whether c is the strict UTF-8 codec.
func (c Codec) IsUTF8() bool { return c.enc == nil }

// Encode converts s to native bytes, without a terminator.
func (c Codec) Encode(s string) ([]byte, error) {
	var t transform.Transformer = encoding.UTF8Validator
	if c.enc != nil {
		t = c.enc.NewEncoder()
	}
	out, n, err := transform.Bytes(t, []byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: at byte %d: %w", ErrEncode, n, err)
	}
	if bytes.IndexByte(out, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}
	return out, nil
}

// Decode converts native bytes to a Go string. b must not include the
// terminator.
func (c Codec) Decode(b []byte) (string, error) {
	var t transform.Transformer = encoding.UTF8Validator
	if c.enc != nil {
		t = c.enc.NewDecoder()
	}
	out, n, err := transform.Bytes(t, b)
	if err != nil {
		return "", &DecodeError{Offset: n, Err: err}
	}
	return string(out), nil
}

// TrimPartial drops an incomplete UTF-8 sequence at the end of b, as left by
// a driver that cut the text at the buffer size. Single-byte encodings are
// returned unchanged.
func (c Codec) TrimPartial(b []byte) []byte {
	if !c.IsUTF8() {
		return b
	}
	i := len(b) - 1
	for i >= 0 && len(b)-i < utf8.UTFMax && !utf8.RuneStart(b[i]) {
		i--
	}
	if i >= 0 && !utf8.FullRune(b[i:]) {
		return b[:i]
	}
	return b
}
