package styles

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	plumeerrors "github.com/plumekit/plume/pkg/errors"
)

// ManifestFileName is the file a style pack directory must carry.
const ManifestFileName = "pack.yaml"

// Manifest describes a style pack: its identity and the colours it
// contributes.
type Manifest struct {
	Name        string            `yaml:"name" validate:"required,pack_name"`
	Version     string            `yaml:"version" validate:"required,semver"`
	Description string            `yaml:"description"`
	Platforms   []string          `yaml:"platforms" validate:"dive,pack_name"`
	Palette     map[string]string `yaml:"palette" validate:"dive,hexcolor"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	packNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator used for
// manifest validation.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("pack_name", func(fl validator.FieldLevel) bool {
			return packNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// ParseManifest decodes and validates a pack manifest. path is only used
// for error context.
func ParseManifest(path string, data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, plumeerrors.NewParseError(path, err)
	}
	if err := validatorInstance().Struct(m); err != nil {
		return Manifest{}, plumeerrors.NewValidationError("", "invalid pack manifest", err)
	}
	return m, nil
}

// SupportsPlatform reports whether the pack ships overrides for the given
// platform identifier. An empty platform list means the pack is
// platform-agnostic.
func (m Manifest) SupportsPlatform(platformID string) bool {
	if len(m.Platforms) == 0 {
		return true
	}
	for _, p := range m.Platforms {
		if p == platformID {
			return true
		}
	}
	return false
}
