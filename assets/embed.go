// Package assets ships the built-in component definitions: the base tier
// that every logical component falls back to, plus a sample style tier and
// the platform overrides for compact screens.
package assets

import "embed"

//go:embed *.toml styles platform icons
var FS embed.FS

// BasePath is the resource root inside FS for the style selector.
const BasePath = "."
