// Package registry is the component registration surface: the plugin
// publishes each logical component name, version pair, and resolved
// definition path to a host engine at startup.
package registry

import (
	"fmt"
	"sort"
	"sync"

	plumeerrors "github.com/plumekit/plume/pkg/errors"
)

// Engine is the host-side consumer of component registrations.
type Engine interface {
	RegisterComponent(uri, name string, major, minor int, path string) error
}

// Component is one registered component.
type Component struct {
	URI   string
	Name  string
	Major int
	Minor int
	Path  string
}

// Version renders the registration version pair.
func (c Component) Version() string {
	return fmt.Sprintf("%d.%d", c.Major, c.Minor)
}

// Registry is a thread-safe Engine implementation, used by the CLI and by
// hosts that want a queryable component table.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Component
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]Component)}
}

// RegisterComponent records a component. Registering the same uri/name
// twice is an error.
func (r *Registry) RegisterComponent(uri, name string, major, minor int, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := uri + "/" + name
	if _, exists := r.components[key]; exists {
		return plumeerrors.NewRegistryError(name, fmt.Errorf("component already registered under %s", uri))
	}

	r.components[key] = Component{URI: uri, Name: name, Major: major, Minor: minor, Path: path}
	return nil
}

// Lookup retrieves a component by uri and logical name.
func (r *Registry) Lookup(uri, name string) (Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.components[uri+"/"+name]
	return c, ok
}

// Components returns all registrations sorted by name.
func (r *Registry) Components() []Component {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Component, 0, len(r.components))
	for _, c := range r.components {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
