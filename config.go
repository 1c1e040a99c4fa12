package glbind

import (
	"errors"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton; validators cache struct metadata.
var validate = validator.New()

// Config is the textual form of a Descriptor, as read from flags or the
// environment. Version and Profile accept a comma-separated list so that a
// conflicting selection is reported instead of silently resolved.
type Config struct {
	Version string `json:"version" validate:"required" jsonschema:"required,description=OpenGL version as major.minor,example=4.5"`
	Profile string `json:"profile" validate:"required" jsonschema:"required,enum=core,enum=compat,description=Context profile"`
	Surface string `json:"surface,omitempty" validate:"omitempty,oneof=raw-only marshaling-only both" jsonschema:"enum=raw-only,enum=marshaling-only,enum=both,default=both"`
}

// Environment variables read by ConfigFromEnv.
const (
	EnvVersion = "GLBIND_VERSION"
	EnvProfile = "GLBIND_PROFILE"
	EnvSurface = "GLBIND_SURFACE"
)

// ConfigFromEnv reads GLBIND_VERSION, GLBIND_PROFILE and GLBIND_SURFACE.
func ConfigFromEnv() Config {
	return Config{
		Version: os.Getenv(EnvVersion),
		Profile: os.Getenv(EnvProfile),
		Surface: os.Getenv(EnvSurface),
	}
}

// Descriptor validates c and builds the descriptor it names.
func (c Config) Descriptor() (Descriptor, error) {
	if err := validate.Struct(c); err != nil {
		return Descriptor{}, configValidationErr(err)
	}

	var opts []DescriptorOption
	for _, s := range splitList(c.Version) {
		v, err := ParseVersion(s)
		if err != nil {
			return Descriptor{}, err
		}
		opts = append(opts, WithVersion(v))
	}
	for _, s := range splitList(c.Profile) {
		p, err := ParseProfile(s)
		if err != nil {
			return Descriptor{}, err
		}
		opts = append(opts, WithProfile(p))
	}
	if c.Surface != "" {
		m, err := ParseSurfaceMode(c.Surface)
		if err != nil {
			return Descriptor{}, err
		}
		opts = append(opts, WithSurface(m))
	}
	return NewDescriptor(opts...)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// configValidationErr maps the first validator failure to a ConfigError.
func configValidationErr(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return configErr("config", err.Error(), ErrInvalidConfig)
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch {
	case field == "version" && fe.Tag() == "required":
		return configErr(field, "no version selected", ErrNoVersion)
	case field == "profile" && fe.Tag() == "required":
		return configErr(field, "no profile selected", ErrNoProfile)
	default:
		return configErr(field, "failed "+fe.Tag()+" check: "+fe.Param(), ErrInvalidConfig)
	}
}
