// Package styles resolves logical component names to the concrete
// definition file that implements them, honoring platform and style
// overrides, and discovers style packs installed on the system.
package styles

import (
	"io/fs"
	"path"
)

// Provider supplies a runtime value such as the active style name or the
// current platform identifier.
type Provider func() string

// Fixed returns a Provider that always yields name.
func Fixed(name string) Provider {
	return func() string { return name }
}

// Selector maps logical component file names onto the best-matching
// concrete path inside a resource tree. Candidates are tried in order,
// first existing match wins:
//
//  1. <base>/platform/<platformID>/<file>
//  2. <base>/styles/<styleName>/<file>
//  3. <base>/<file>
//
// The base tier is the universal fallback and is expected to always be
// populated; a name that exists in no tier resolves to the base path and
// the failure surfaces at whatever consumes it.
//
// Resolution is deterministic and side-effect-free for fixed inputs, so a
// Selector is safe for concurrent readers once constructed.
type Selector struct {
	fsys     fs.FS
	basePath string
	style    Provider
	platform Provider
}

// NewSelector builds a Selector over fsys rooted at basePath. The style
// and platform providers are consulted on every resolution; either may be
// nil to skip its tier.
func NewSelector(fsys fs.FS, basePath string, style, platform Provider) *Selector {
	return &Selector{
		fsys:     fsys,
		basePath: path.Clean(basePath),
		style:    style,
		platform: platform,
	}
}

// ComponentPath resolves a logical component file name.
func (s *Selector) ComponentPath(fileName string) string {
	for _, candidate := range s.candidates(fileName) {
		if s.exists(candidate) {
			return candidate
		}
	}
	return s.join(fileName)
}

// ResolveFilePath resolves a non-component resource path (icon
// directories, asset folders) with the same tier order. It never fails:
// with no matching tier it returns the base-tier path unchanged, which
// suits paths that need not exist yet, like search-path seeding.
func (s *Selector) ResolveFilePath(relativePath string) string {
	for _, candidate := range s.candidates(relativePath) {
		if s.exists(candidate) {
			return candidate
		}
	}
	return s.join(relativePath)
}

// BasePath returns the resource tree root.
func (s *Selector) BasePath() string {
	return s.basePath
}

// StyleName returns the active style name, or "" when no provider is set.
func (s *Selector) StyleName() string {
	if s.style == nil {
		return ""
	}
	return s.style()
}

// PlatformID returns the current platform identifier, or "" when no
// provider is set.
func (s *Selector) PlatformID() string {
	if s.platform == nil {
		return ""
	}
	return s.platform()
}

func (s *Selector) candidates(name string) []string {
	candidates := make([]string, 0, 3)
	if platform := s.PlatformID(); platform != "" {
		candidates = append(candidates, s.join("platform", platform, name))
	}
	if style := s.StyleName(); style != "" {
		candidates = append(candidates, s.join("styles", style, name))
	}
	return append(candidates, s.join(name))
}

func (s *Selector) join(elems ...string) string {
	return path.Join(append([]string{s.basePath}, elems...)...)
}

func (s *Selector) exists(p string) bool {
	if s.fsys == nil {
		return false
	}
	_, err := fs.Stat(s.fsys, p)
	return err == nil
}
