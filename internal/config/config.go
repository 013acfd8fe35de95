// Package config loads the plugin's runtime configuration: the active
// style, a platform override, and where to look for installed style packs.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	plumeerrors "github.com/plumekit/plume/pkg/errors"
)

// Environment overrides, applied after any config file.
const (
	StyleEnv    = "PLUME_STYLE"
	PlatformEnv = "PLUME_PLATFORM"
)

// Config is the merged runtime configuration.
type Config struct {
	Style      string    `koanf:"style"`
	Platform   string    `koanf:"platform" validate:"omitempty,oneof=desktop compact tv"`
	IconTheme  string    `koanf:"icon_theme"`
	StylePaths []string  `koanf:"style_paths"`
	Log        LogConfig `koanf:"log"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// DefaultPaths returns the config files tried in order of priority, last
// wins: the XDG config file, then a plume.toml in the working directory.
func DefaultPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "plume", "config.toml"),
		"plume.toml",
	}
}

// Load reads configuration from path, or from DefaultPaths when path is
// empty. Missing files are skipped; environment overrides are applied
// last.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	paths := DefaultPaths()
	if path != "" {
		paths = []string{path}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
			return nil, plumeerrors.NewParseError(p, err)
		}
	}

	cfg := &Config{
		Log: LogConfig{Level: "info", Format: "console"},
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, plumeerrors.NewParseError(strings.Join(paths, ","), err)
	}

	if style := os.Getenv(StyleEnv); style != "" {
		cfg.Style = style
	}
	if platform := os.Getenv(PlatformEnv); platform != "" {
		cfg.Platform = platform
	}

	for i, p := range cfg.StylePaths {
		cfg.StylePaths[i] = expandPath(p)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return nil, plumeerrors.NewValidationError("", "invalid configuration", err)
	}
	return cfg, nil
}

func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
