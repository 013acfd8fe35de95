package registry

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumekit/plume/assets"
	"github.com/plumekit/plume/pkg/styles"
)

func TestRegisterTypesPublishesWholeTable(t *testing.T) {
	t.Parallel()

	selector := styles.NewSelector(assets.FS, assets.BasePath, nil, nil)
	plugin := NewPlugin(selector, nil)
	reg := NewRegistry()

	require.NoError(t, plugin.RegisterTypes(reg))

	components := reg.Components()
	require.Len(t, components, ComponentCount())

	card, ok := reg.Lookup(URI, "Card")
	require.True(t, ok)
	assert.Equal(t, "Card.toml", card.Path)
}

func TestRegisterTypesResolvesOverrides(t *testing.T) {
	t.Parallel()

	selector := styles.NewSelector(assets.FS, assets.BasePath, styles.Fixed("slate"), styles.Fixed("compact"))
	plugin := NewPlugin(selector, nil)
	reg := NewRegistry()

	require.NoError(t, plugin.RegisterTypes(reg))

	// Card has a slate style override, Dialog a compact platform override,
	// Page only a base definition.
	card, _ := reg.Lookup(URI, "Card")
	assert.Equal(t, "styles/slate/Card.toml", card.Path)

	dialog, _ := reg.Lookup(URI, "Dialog")
	assert.Equal(t, "platform/compact/Dialog.toml", dialog.Path)

	page, _ := reg.Lookup(URI, "Page")
	assert.Equal(t, "Page.toml", page.Path)
}

func TestRegisterTypesStopsOnEngineError(t *testing.T) {
	t.Parallel()

	selector := styles.NewSelector(assets.FS, assets.BasePath, nil, nil)
	plugin := NewPlugin(selector, nil)

	reg := NewRegistry()
	// Pre-register a name from the table to force a collision.
	require.NoError(t, reg.RegisterComponent(URI, "Card", 0, 9, "elsewhere"))

	err := plugin.RegisterTypes(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Card")
}

func TestIconSearchPaths(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"ui/styles/slate/icons/app.txt": &fstest.MapFile{Data: []byte("icon")},
	}
	selector := styles.NewSelector(fsys, "ui", styles.Fixed("slate"), nil)
	plugin := NewPlugin(selector, nil)

	assert.Equal(t, []string{"ui/styles/slate/icons"}, plugin.IconSearchPaths())

	// With no tier carrying icons the base path is still seeded.
	bare := NewPlugin(styles.NewSelector(fstest.MapFS{}, "ui", nil, nil), nil)
	assert.Equal(t, []string{"ui/icons"}, bare.IconSearchPaths())
}
