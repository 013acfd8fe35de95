package registry

import (
	"fmt"

	"github.com/plumekit/plume/internal/logger"
	"github.com/plumekit/plume/pkg/styles"
)

// URI is the namespace all built-in components register under.
const URI = "plume.kit"

// componentEntry pairs a logical component name with the definition file
// the selector resolves and the version it was introduced at.
type componentEntry struct {
	name  string
	file  string
	major int
	minor int
}

// The built-in component set. Version pairs record when a component
// joined the set, so hosts can gate imports the same way the versioned
// registration of the original toolkit does.
var componentTable = []componentEntry{
	{"AbstractCard", "AbstractCard.toml", 1, 0},
	{"ActionToolBar", "ActionToolBar.toml", 1, 0},
	{"Card", "Card.toml", 1, 0},
	{"ContextDrawer", "ContextDrawer.toml", 1, 0},
	{"FormLayout", "FormLayout.toml", 1, 0},
	{"GlobalDrawer", "GlobalDrawer.toml", 1, 0},
	{"Heading", "Heading.toml", 1, 0},
	{"InlineMessage", "InlineMessage.toml", 1, 0},
	{"OverlaySheet", "OverlaySheet.toml", 1, 0},
	{"Page", "Page.toml", 1, 0},
	{"ScrollablePage", "ScrollablePage.toml", 1, 0},
	{"Separator", "Separator.toml", 1, 0},

	// 1.1
	{"PasswordField", "PasswordField.toml", 1, 1},
	{"PlaceholderMessage", "PlaceholderMessage.toml", 1, 1},
	{"SearchField", "SearchField.toml", 1, 1},

	// 1.2
	{"Chip", "Chip.toml", 1, 2},
	{"Dialog", "Dialog.toml", 1, 2},
	{"MenuDialog", "MenuDialog.toml", 1, 2},
	{"NavigationTabBar", "NavigationTabBar.toml", 1, 2},
	{"NavigationTabButton", "NavigationTabButton.toml", 1, 2},
	{"PromptDialog", "PromptDialog.toml", 1, 2},
}

// Plugin registers the built-in component set with a host engine, each
// name resolved through the style selector at registration time.
type Plugin struct {
	selector *styles.Selector
	log      *logger.Logger
}

// NewPlugin builds a Plugin over the given selector. A nil log disables
// registration logging.
func NewPlugin(selector *styles.Selector, log *logger.Logger) *Plugin {
	if log == nil {
		log = logger.Nop()
	}
	return &Plugin{selector: selector, log: log.Component("registry")}
}

// ComponentPath resolves a logical component file name through the
// plugin's selector.
func (p *Plugin) ComponentPath(fileName string) string {
	return p.selector.ComponentPath(fileName)
}

// RegisterTypes publishes the whole component table to the engine. The
// first registration failure aborts; partially registered tables are the
// engine's problem to unwind.
func (p *Plugin) RegisterTypes(engine Engine) error {
	for _, entry := range componentTable {
		path := p.selector.ComponentPath(entry.file)
		if err := engine.RegisterComponent(URI, entry.name, entry.major, entry.minor, path); err != nil {
			return fmt.Errorf("registering %s: %w", entry.name, err)
		}
		p.log.WithFields(map[string]any{"name": entry.name, "path": path}).Debug("registered component")
	}
	return nil
}

// IconSearchPaths returns the directories icon lookups should consult,
// style and platform tiers first. The paths need not exist yet; they seed
// a search list.
func (p *Plugin) IconSearchPaths() []string {
	return []string{p.selector.ResolveFilePath("icons")}
}

// ComponentCount reports the size of the built-in table.
func ComponentCount() int {
	return len(componentTable)
}
