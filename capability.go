package glbind

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an OpenGL version from the supported range.
type Version struct {
	Major uint8
	Minor uint8
}

// Supported OpenGL versions.
var (
	Version10 = Version{1, 0}
	Version11 = Version{1, 1}
	Version12 = Version{1, 2}
	Version13 = Version{1, 3}
	Version14 = Version{1, 4}
	Version15 = Version{1, 5}
	Version20 = Version{2, 0}
	Version21 = Version{2, 1}
	Version30 = Version{3, 0}
	Version31 = Version{3, 1}
	Version32 = Version{3, 2}
	Version33 = Version{3, 3}
	Version40 = Version{4, 0}
	Version41 = Version{4, 1}
	Version42 = Version{4, 2}
	Version43 = Version{4, 3}
	Version44 = Version{4, 4}
	Version45 = Version{4, 5}
	Version46 = Version{4, 6}
)

var supportedVersions = []Version{
	Version10, Version11, Version12, Version13, Version14, Version15,
	Version20, Version21,
	Version30, Version31, Version32, Version33,
	Version40, Version41, Version42, Version43, Version44, Version45, Version46,
}

// SupportedVersions returns the enumerated version range in ascending order.
func SupportedVersions() []Version {
	out := make([]Version, len(supportedVersions))
	copy(out, supportedVersions)
	return out
}

// IsZero reports whether no version was set.
func (v Version) IsZero() bool { return v == Version{} }

// Supported reports whether v is in the enumerated range.
func (v Version) Supported() bool {
	for _, s := range supportedVersions {
		if s == v {
			return true
		}
	}
	return false
}

// AtLeast reports whether v >= o.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	return v.Minor >= o.Minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses "major.minor" (e.g. "4.5").
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return Version{}, configErr("version", fmt.Sprintf("%q is not major.minor", s), ErrUnsupportedVersion)
	}
	ma, err1 := strconv.ParseUint(major, 10, 8)
	mi, err2 := strconv.ParseUint(minor, 10, 8)
	if err1 != nil || err2 != nil {
		return Version{}, configErr("version", fmt.Sprintf("%q is not major.minor", s), ErrUnsupportedVersion)
	}
	v := Version{uint8(ma), uint8(mi)}
	if !v.Supported() {
		return Version{}, configErr("version", v.String()+" is outside the supported range", ErrUnsupportedVersion)
	}
	return v, nil
}

// Profile selects the OpenGL context profile.
type Profile uint8

// Profiles. The zero value means "not selected".
const (
	ProfileCore Profile = iota + 1
	ProfileCompat
)

func (p Profile) String() string {
	switch p {
	case ProfileCore:
		return "core"
	case ProfileCompat:
		return "compat"
	default:
		return "none"
	}
}

// ParseProfile parses "core" or "compat".
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "core":
		return ProfileCore, nil
	case "compat", "compatibility":
		return ProfileCompat, nil
	default:
		return 0, configErr("profile", fmt.Sprintf("unknown profile %q", s), ErrUnsupportedProfile)
	}
}

// SurfaceMode selects which calling surfaces a table exposes. It is a bit
// mask: SurfaceBoth is SurfaceRawOnly|SurfaceMarshalingOnly. Entry-point specs
// use the same mask to record which surfaces carry them.
type SurfaceMode uint8

// Surface modes.
const (
	SurfaceRawOnly SurfaceMode = 1 << iota
	SurfaceMarshalingOnly

	SurfaceBoth = SurfaceRawOnly | SurfaceMarshalingOnly
)

func (m SurfaceMode) String() string {
	switch m {
	case SurfaceRawOnly:
		return "raw-only"
	case SurfaceMarshalingOnly:
		return "marshaling-only"
	case SurfaceBoth:
		return "both"
	default:
		return "none"
	}
}

// HasRaw reports whether the raw surface is enabled.
func (m SurfaceMode) HasRaw() bool { return m&SurfaceRawOnly != 0 }

// HasMarshaling reports whether the marshaling surface is enabled.
func (m SurfaceMode) HasMarshaling() bool { return m&SurfaceMarshalingOnly != 0 }

// ParseSurfaceMode parses "raw-only", "marshaling-only" or "both".
func ParseSurfaceMode(s string) (SurfaceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw-only", "raw":
		return SurfaceRawOnly, nil
	case "marshaling-only", "marshaling":
		return SurfaceMarshalingOnly, nil
	case "both", "":
		return SurfaceBoth, nil
	default:
		return 0, configErr("surface", fmt.Sprintf("unknown surface mode %q", s), ErrInvalidConfig)
	}
}

// profilesSince is the first version with context profiles.
var profilesSince = Version32

// Descriptor is the fixed capability configuration that decides which entry
// points must resolve. Build it with NewDescriptor; a descriptor is a value
// and is never mutated by this package.
type Descriptor struct {
	Version Version
	Profile Profile
	Surface SurfaceMode
}

func (d Descriptor) String() string {
	return fmt.Sprintf("GL %s %s (%s)", d.Version, d.Profile, d.Surface)
}

// Validate checks the descriptor. A zero Surface is treated as SurfaceBoth.
func (d Descriptor) Validate() error {
	if d.Version.IsZero() {
		return configErr("version", "no version selected", ErrNoVersion)
	}
	if !d.Version.Supported() {
		return configErr("version", d.Version.String()+" is outside the supported range", ErrUnsupportedVersion)
	}
	switch d.Profile {
	case 0:
		return configErr("profile", "no profile selected", ErrNoProfile)
	case ProfileCompat:
		return configErr("profile", "compat profile is not supported", ErrUnsupportedProfile)
	case ProfileCore:
	default:
		return configErr("profile", fmt.Sprintf("unknown profile %d", d.Profile), ErrUnsupportedProfile)
	}
	if !d.Version.AtLeast(profilesSince) {
		return configErr("profile",
			fmt.Sprintf("core profile requires GL %s or later, got %s", profilesSince, d.Version),
			ErrContradictoryProfile)
	}
	if d.Surface&^SurfaceBoth != 0 {
		return configErr("surface", fmt.Sprintf("unknown surface mode %d", d.Surface), ErrInvalidConfig)
	}
	return nil
}

func (d Descriptor) surface() SurfaceMode {
	if d.Surface == 0 {
		return SurfaceBoth
	}
	return d.Surface
}

// DescriptorOption configures NewDescriptor.
type DescriptorOption func(*descriptorBuilder)

type descriptorBuilder struct {
	versions []Version
	profiles []Profile
	surfaces []SurfaceMode
}

// WithVersion selects the GL version.
func WithVersion(v Version) DescriptorOption {
	return func(b *descriptorBuilder) { b.versions = appendUnique(b.versions, v) }
}

// WithProfile selects the GL profile.
func WithProfile(p Profile) DescriptorOption {
	return func(b *descriptorBuilder) { b.profiles = appendUnique(b.profiles, p) }
}

// WithSurface selects the exposed surfaces. The default is SurfaceBoth.
func WithSurface(m SurfaceMode) DescriptorOption {
	return func(b *descriptorBuilder) { b.surfaces = appendUnique(b.surfaces, m) }
}

// NewDescriptor builds and validates a descriptor. Exactly one version and one
// profile must be selected: selecting two different versions (or profiles)
// is rejected rather than resolved by precedence.
//
// Example:
//
//	d, err := glbind.NewDescriptor(
//	    glbind.WithVersion(glbind.Version45),
//	    glbind.WithProfile(glbind.ProfileCore),
//	)
func NewDescriptor(opts ...DescriptorOption) (Descriptor, error) {
	var b descriptorBuilder
	for _, opt := range opts {
		opt(&b)
	}

	var d Descriptor
	switch len(b.versions) {
	case 0:
		return Descriptor{}, configErr("version", "no version selected", ErrNoVersion)
	case 1:
		d.Version = b.versions[0]
	default:
		return Descriptor{}, configErr("version", fmt.Sprintf("%d versions selected", len(b.versions)), ErrMultipleVersions)
	}
	switch len(b.profiles) {
	case 0:
		return Descriptor{}, configErr("profile", "no profile selected", ErrNoProfile)
	case 1:
		d.Profile = b.profiles[0]
	default:
		return Descriptor{}, configErr("profile", fmt.Sprintf("%d profiles selected", len(b.profiles)), ErrMultipleProfiles)
	}
	switch len(b.surfaces) {
	case 0:
		d.Surface = SurfaceBoth
	case 1:
		d.Surface = b.surfaces[0]
	default:
		return Descriptor{}, configErr("surface", fmt.Sprintf("%d surface modes selected", len(b.surfaces)), ErrInvalidConfig)
	}

	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// MustDescriptor is like NewDescriptor but panics on error.
// Intended for package-level variables with constant options.
func MustDescriptor(opts ...DescriptorOption) Descriptor {
	d, err := NewDescriptor(opts...)
	if err != nil {
		panic(err)
	}
	return d
}

func appendUnique[T comparable](s []T, v T) []T {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
