package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plumeerrors "github.com/plumekit/plume/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReadsTOML(t *testing.T) {
	path := writeConfig(t, `
style = "slate"
platform = "compact"
icon_theme = "plume-builtin"
style_paths = ["/opt/plume/styles"]

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "slate", cfg.Style)
	assert.Equal(t, "compact", cfg.Platform)
	assert.Equal(t, "plume-builtin", cfg.IconTheme)
	assert.Equal(t, []string{"/opt/plume/styles"}, cfg.StylePaths)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Style)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "style = \"slate\"\nplatform = \"desktop\"\n")
	t.Setenv(StyleEnv, "mist")
	t.Setenv(PlatformEnv, "tv")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mist", cfg.Style)
	assert.Equal(t, "tv", cfg.Platform)
}

func TestLoadRejectsUnknownPlatform(t *testing.T) {
	path := writeConfig(t, "platform = \"wristwatch\"\n")

	_, err := Load(path)
	require.Error(t, err)

	var validationErr *plumeerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "style = [broken\n")

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *plumeerrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := writeConfig(t, "style_paths = [\"~/styles\", \"/abs/styles\"]\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "styles"), cfg.StylePaths[0])
	assert.Equal(t, "/abs/styles", cfg.StylePaths[1])
}
