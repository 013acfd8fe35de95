package styles

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/plumekit/plume/internal/logger"
)

// Pack is a style pack discovered on disk: its manifest plus the directory
// holding its component overrides. The directory doubles as the base path
// of a Selector scoped to the pack.
type Pack struct {
	Manifest Manifest
	Dir      string
}

// StylePathEnv overrides the pack search path list (os.PathListSeparator
// separated) when set.
const StylePathEnv = "PLUME_STYLE_PATH"

// SearchPaths returns the directories scanned for style packs, highest
// priority first: the env override if set, then per-user and system XDG
// data directories.
func SearchPaths() []string {
	if env := os.Getenv(StylePathEnv); env != "" {
		return filepath.SplitList(env)
	}

	paths := []string{filepath.Join(xdg.DataHome, "plume", "styles")}
	for _, dir := range xdg.DataDirs {
		paths = append(paths, filepath.Join(dir, "plume", "styles"))
	}
	return paths
}

// Finder locates style packs by name across a list of search paths,
// memoizing results for the process lifetime. Lookups that find nothing
// are cached too, so the directory scan runs at most once per name.
//
// The cache is init-once-per-key: the first Find for a name decides its
// entry for good. Installing a pack after its name was probed requires a
// new Finder.
type Finder struct {
	paths []string
	log   *logger.Logger
	packs map[string]*Pack
}

// NewFinder builds a Finder over the given search paths. A nil log
// disables discovery logging.
func NewFinder(paths []string, log *logger.Logger) *Finder {
	if log == nil {
		log = logger.Nop()
	}
	return &Finder{
		paths: paths,
		log:   log.Component("styles"),
		packs: make(map[string]*Pack),
	}
}

// Find returns the pack for name, or nil if no search path carries one.
// The first directory whose name matches wins; later search paths never
// override an earlier hit.
func (f *Finder) Find(name string) *Pack {
	if pack, probed := f.packs[name]; probed {
		return pack
	}

	// Negative entry first, so a failed scan is never repeated.
	f.packs[name] = nil

	if name == "" {
		return nil
	}

	for _, searchPath := range f.paths {
		entries, err := os.ReadDir(searchPath)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() || !strings.Contains(entry.Name(), name) {
				continue
			}
			dir := filepath.Join(searchPath, entry.Name())
			pack, err := loadPack(dir)
			if err != nil {
				f.log.WithFields(map[string]any{"dir": dir}).Error(err, "skipping unloadable style pack")
				continue
			}
			f.log.WithFields(map[string]any{"pack": pack.Manifest.Name, "dir": dir}).Debug("loaded style pack")
			// First hit wins; later search paths never override it.
			f.packs[name] = pack
			return pack
		}
	}

	if f.packs[name] == nil {
		f.log.WithFields(map[string]any{"pack": name}).Debug("no style pack found")
	}
	return f.packs[name]
}

// List scans every search path and returns all loadable packs, sorted by
// name. When the same pack name appears in several search paths the
// earliest path wins, matching Find. List bypasses the memo cache.
func (f *Finder) List() []*Pack {
	seen := make(map[string]struct{})
	var packs []*Pack
	for _, searchPath := range f.paths {
		entries, err := os.ReadDir(searchPath)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(searchPath, entry.Name())
			pack, err := loadPack(dir)
			if err != nil {
				f.log.WithFields(map[string]any{"dir": dir}).Debug("skipping unloadable style pack")
				continue
			}
			if _, dup := seen[pack.Manifest.Name]; dup {
				continue
			}
			seen[pack.Manifest.Name] = struct{}{}
			packs = append(packs, pack)
		}
	}
	sort.Slice(packs, func(i, j int) bool { return packs[i].Manifest.Name < packs[j].Manifest.Name })
	return packs
}

func loadPack(dir string) (*Pack, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, err
	}
	manifest, err := ParseManifest(filepath.Join(dir, ManifestFileName), data)
	if err != nil {
		return nil, err
	}
	return &Pack{Manifest: manifest, Dir: dir}, nil
}

// Selector builds a Selector rooted at the pack directory, so component
// lookups inside the pack honor the same platform-tier precedence as the
// built-in assets.
func (p *Pack) Selector(platform Provider) *Selector {
	return NewSelector(os.DirFS(p.Dir), ".", nil, platform)
}
