package marshal

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestUTF8RoundTrip(t *testing.T) {
	c := UTF8()
	in := "héllo, 世界"
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out != in {
		t.Errorf("Decode(Encode(%q)) = %q", in, out)
	}
}

func TestUTF8DecodeIsStrict(t *testing.T) {
	tests := map[string][]byte{
		"leading":   {0xff, 'a'},
		"middle":    {'a', 'b', 0xc3, 0x28},
		"truncated": {'a', 0xe4, 0xb8},
	}
	for name, b := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := UTF8().Decode(b)
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("Decode() = %q, %v; want ErrDecode", s, err)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatal("error is not a *DecodeError")
			}
			if de.Offset < 0 || de.Offset > len(b) {
				t.Errorf("Offset = %d out of range", de.Offset)
			}
		})
	}
}

func TestEncodeRejects(t *testing.T) {
	if _, err := UTF8().Encode("a\x00b"); !errors.Is(err, ErrEmbeddedNUL) {
		t.Errorf("embedded NUL: error = %v", err)
	}
	if _, err := UTF8().Encode("a\xffb"); !errors.Is(err, ErrEncode) {
		t.Errorf("invalid UTF-8: error = %v", err)
	}
	if _, err := NewCodec(charmap.ISO8859_1).Encode("世界"); !errors.Is(err, ErrEncode) {
		t.Errorf("unrepresentable rune: error = %v", err)
	}
}

func TestLatin1Codec(t *testing.T) {
	c := NewCodec(charmap.ISO8859_1)
	if c.IsUTF8() {
		t.Fatal("IsUTF8() = true for ISO-8859-1")
	}
	b, err := c.Encode("café")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if len(b) != 4 || b[3] != 0xE9 {
		t.Errorf("Encode() = % x, want 63 61 66 e9", b)
	}
	s, err := c.Decode([]byte{0xE9, 't', 0xE9})
	if err != nil || s != "été" {
		t.Errorf("Decode() = %q, %v", s, err)
	}
}

func TestTrimPartial(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "hello", "hello"},
		{"complete two-byte", "hé", "hé"},
		{"cut two-byte", "h\xc3", "h"},
		{"cut three-byte after one", "a\xe4", "a"},
		{"cut three-byte after two", "a\xe4\xb8", "a"},
		{"complete four-byte", "a😀", "a😀"},
		{"cut four-byte after three", "a\xf0\x9f\x98", "a"},
		{"only partial", "\xc3", ""},
		{"empty", "", ""},
		{"invalid lead kept", "a\xff", "a\xff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(UTF8().TrimPartial([]byte(tt.in))); got != tt.want {
				t.Errorf("TrimPartial(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	latin := []byte{'a', 0xc3}
	if got := NewCodec(charmap.ISO8859_1).TrimPartial(latin); len(got) != 2 {
		t.Errorf("single-byte codec trimmed to % x", got)
	}
}
