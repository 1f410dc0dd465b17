package form

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbind/pkg/model"
)

// DefaultFieldType names the built-in field implementation.
const DefaultFieldType = "field"

// FieldRenderer is the contract field implementations satisfy: opening
// markup on Begin, closing markup on End. Begin and End are strictly paired
// through the session's field stack.
type FieldRenderer interface {
	Begin() string
	End() string
}

// FieldFactory constructs a field implementation bound to a model attribute.
// The options map is the fully merged field configuration.
type FieldFactory func(owner *Form, m model.Model, attribute string, options map[string]any) FieldRenderer

// Registry resolves field implementations by type name. Callers can register
// replacements or additional types; the latest registration for a name wins.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FieldFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]FieldFactory)}
}

// NewDefaultRegistry creates a registry with the built-in field type
// registered.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(DefaultFieldType, func(owner *Form, m model.Model, attribute string, options map[string]any) FieldRenderer {
		return newField(owner, m, attribute, options)
	})
	return registry
}

// Register adds or replaces the factory for a type name. Empty names and nil
// factories are ignored.
func (r *Registry) Register(name string, factory FieldFactory) {
	name = strings.TrimSpace(name)
	if r == nil || name == "" || factory == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Resolve returns the factory registered under the type name.
func (r *Registry) Resolve(name string) (FieldFactory, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[strings.TrimSpace(name)]
	return factory, ok
}

// Names lists the registered type names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an isolated copy so per-session registrations do not leak
// into shared registries.
func (r *Registry) Clone() *Registry {
	cloned := NewRegistry()
	if r == nil {
		return cloned
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name, factory := range r.factories {
		cloned.factories[name] = factory
	}
	return cloned
}
