package abi

import "testing"

func TestKindSize(t *testing.T) {
	tests := []struct {
		kind Kind
		want uintptr
	}{
		{Void, 0},
		{Boolean, 1},
		{Ushort, 2},
		{Enum, 4},
		{Float, 4},
		{Double, 8},
		{Uint64, 8},
		{Sizeiptr, 8},
		{Pointer, 8},
		{Sync, 8},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeyCharsCoverAllKinds(t *testing.T) {
	if len(keyChars) != int(numKinds) {
		t.Fatalf("keyChars has %d entries, want %d", len(keyChars), numKinds)
	}
	seen := make(map[byte]Kind)
	for k := Kind(0); k < numKinds; k++ {
		c := k.keyChar()
		if prev, ok := seen[c]; ok {
			t.Errorf("kinds %v and %v share key char %q", prev, k, c)
		}
		seen[c] = k
	}
}

func TestSignatureKey(t *testing.T) {
	a := Sig(Void, Enum, Uint)
	b := Sig(Void, Enum, Uint)
	c := Sig(Void, Uint, Enum)
	d := Sig(Uint, Enum, Uint)

	if a.Key() != b.Key() {
		t.Errorf("equal signatures have different keys: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() == c.Key() {
		t.Error("argument order must change the key")
	}
	if a.Key() == d.Key() {
		t.Error("return kind must change the key")
	}
	if !a.Equal(b) || a.Equal(c) {
		t.Error("Equal disagrees with Key")
	}
}

func TestSigCopiesArgs(t *testing.T) {
	args := []Kind{Enum, Int}
	s := Sig(Void, args...)
	args[0] = Double
	if s.Args[0] != Enum {
		t.Error("Sig must copy its argument slice")
	}
}

func TestSignatureString(t *testing.T) {
	s := Sig(Void, Enum, Sizei, Pointer)
	if got, want := s.String(), "void(GLenum, GLsizei, void*)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSignatureValid(t *testing.T) {
	if !Sig(Void).Valid() {
		t.Error("void() should be valid")
	}
	if Sig(Void, Void).Valid() {
		t.Error("void argument should be invalid")
	}
	if (Signature{Return: Kind(200)}).Valid() {
		t.Error("unknown return kind should be invalid")
	}
}
