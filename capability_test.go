package glbind

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr error
	}{
		{"4.5", Version45, nil},
		{" 3.3 ", Version33, nil},
		{"1.0", Version10, nil},
		{"4.6", Version46, nil},
		{"4.7", Version{}, ErrUnsupportedVersion},
		{"2.2", Version{}, ErrUnsupportedVersion},
		{"5.0", Version{}, ErrUnsupportedVersion},
		{"45", Version{}, ErrUnsupportedVersion},
		{"four.five", Version{}, ErrUnsupportedVersion},
		{"", Version{}, ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseVersion(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error %v should also match ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		v, o Version
		want bool
	}{
		{Version45, Version45, true},
		{Version45, Version46, false},
		{Version46, Version45, true},
		{Version40, Version33, true},
		{Version33, Version40, false},
		{Version21, Version15, true},
	}
	for _, tt := range tests {
		if got := tt.v.AtLeast(tt.o); got != tt.want {
			t.Errorf("%v.AtLeast(%v) = %v, want %v", tt.v, tt.o, got, tt.want)
		}
	}
}

func TestSupportedVersionsOrdered(t *testing.T) {
	vs := SupportedVersions()
	if len(vs) != 19 {
		t.Fatalf("len(SupportedVersions()) = %d, want 19", len(vs))
	}
	for i := 1; i < len(vs); i++ {
		if vs[i-1].AtLeast(vs[i]) {
			t.Errorf("versions not ascending at %d: %v then %v", i, vs[i-1], vs[i])
		}
	}
	vs[0] = Version{9, 9}
	if SupportedVersions()[0] != Version10 {
		t.Error("SupportedVersions returned shared storage")
	}
}

func TestParseProfile(t *testing.T) {
	for in, want := range map[string]Profile{"core": ProfileCore, "CORE": ProfileCore, "compat": ProfileCompat, "compatibility": ProfileCompat} {
		got, err := ParseProfile(in)
		if err != nil || got != want {
			t.Errorf("ParseProfile(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseProfile("es"); !errors.Is(err, ErrUnsupportedProfile) {
		t.Errorf("ParseProfile(es) error = %v, want ErrUnsupportedProfile", err)
	}
}

func TestParseSurfaceMode(t *testing.T) {
	tests := map[string]SurfaceMode{
		"raw-only":        SurfaceRawOnly,
		"marshaling-only": SurfaceMarshalingOnly,
		"both":            SurfaceBoth,
		"":                SurfaceBoth,
	}
	for in, want := range tests {
		got, err := ParseSurfaceMode(in)
		if err != nil || got != want {
			t.Errorf("ParseSurfaceMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseSurfaceMode("neither"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseSurfaceMode(neither) error = %v, want ErrInvalidConfig", err)
	}
}

func TestSurfaceModeBits(t *testing.T) {
	if !SurfaceBoth.HasRaw() || !SurfaceBoth.HasMarshaling() {
		t.Error("SurfaceBoth should enable both surfaces")
	}
	if SurfaceRawOnly.HasMarshaling() || !SurfaceRawOnly.HasRaw() {
		t.Error("SurfaceRawOnly bits wrong")
	}
	if SurfaceMarshalingOnly.HasRaw() || !SurfaceMarshalingOnly.HasMarshaling() {
		t.Error("SurfaceMarshalingOnly bits wrong")
	}
}

func TestNewDescriptor(t *testing.T) {
	tests := []struct {
		name    string
		opts    []DescriptorOption
		want    Descriptor
		wantErr error
	}{
		{
			name: "core 4.5 defaults to both surfaces",
			opts: []DescriptorOption{WithVersion(Version45), WithProfile(ProfileCore)},
			want: Descriptor{Version45, ProfileCore, SurfaceBoth},
		},
		{
			name: "explicit surface",
			opts: []DescriptorOption{WithVersion(Version33), WithProfile(ProfileCore), WithSurface(SurfaceRawOnly)},
			want: Descriptor{Version33, ProfileCore, SurfaceRawOnly},
		},
		{
			name: "same version twice is one selection",
			opts: []DescriptorOption{WithVersion(Version45), WithVersion(Version45), WithProfile(ProfileCore)},
			want: Descriptor{Version45, ProfileCore, SurfaceBoth},
		},
		{
			name:    "no version",
			opts:    []DescriptorOption{WithProfile(ProfileCore)},
			wantErr: ErrNoVersion,
		},
		{
			name:    "two versions",
			opts:    []DescriptorOption{WithVersion(Version45), WithVersion(Version33), WithProfile(ProfileCore)},
			wantErr: ErrMultipleVersions,
		},
		{
			name:    "no profile",
			opts:    []DescriptorOption{WithVersion(Version45)},
			wantErr: ErrNoProfile,
		},
		{
			name:    "two profiles",
			opts:    []DescriptorOption{WithVersion(Version45), WithProfile(ProfileCore), WithProfile(ProfileCompat)},
			wantErr: ErrMultipleProfiles,
		},
		{
			name:    "compat rejected",
			opts:    []DescriptorOption{WithVersion(Version45), WithProfile(ProfileCompat)},
			wantErr: ErrUnsupportedProfile,
		},
		{
			name:    "core before profiles existed",
			opts:    []DescriptorOption{WithVersion(Version21), WithProfile(ProfileCore)},
			wantErr: ErrContradictoryProfile,
		},
		{
			name:    "version out of range",
			opts:    []DescriptorOption{WithVersion(Version{4, 7}), WithProfile(ProfileCore)},
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "two surfaces",
			opts:    []DescriptorOption{WithVersion(Version45), WithProfile(ProfileCore), WithSurface(SurfaceRawOnly), WithSurface(SurfaceBoth)},
			wantErr: ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDescriptor(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error %v should match ErrInvalidConfig", err)
				}
				var ce *ConfigError
				if !errors.As(err, &ce) {
					t.Errorf("error %T is not *ConfigError", err)
				}
				if got != (Descriptor{}) {
					t.Errorf("descriptor = %v on error, want zero", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDescriptor: %v", err)
			}
			if got != tt.want {
				t.Errorf("NewDescriptor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDescriptorValidateZeroSurface(t *testing.T) {
	d := Descriptor{Version: Version33, Profile: ProfileCore}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if d.surface() != SurfaceBoth {
		t.Errorf("zero surface = %v, want both", d.surface())
	}
	d.Surface = 8
	if err := d.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate with bad surface = %v, want ErrInvalidConfig", err)
	}
}

func TestMustDescriptorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustDescriptor did not panic on invalid options")
		}
	}()
	MustDescriptor(WithProfile(ProfileCore))
}

func TestDescriptorString(t *testing.T) {
	d := MustDescriptor(WithVersion(Version45), WithProfile(ProfileCore))
	if got, want := d.String(), "GL 4.5 core (both)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
