package module

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"GoNLP/internal/value"
)

var (
	ErrNotFound  = errors.New("module not found")
	ErrDuplicate = errors.New("module already registered")
)

// Registry manages analyzer definitions by name within one namespace.
// Lookups accept either the bare name or the namespace-qualified name.
type Registry struct {
	namespace string

	mu   sync.RWMutex
	defs map[string]Definition
}

// NewRegistry creates an empty Registry for the given namespace.
func NewRegistry(namespace string) *Registry {
	return &Registry{
		namespace: namespace,
		defs:      make(map[string]Definition),
	}
}

// Namespace returns the registry's namespace, e.g. "nlp.sentiment".
func (r *Registry) Namespace() string {
	return r.namespace
}

// QualifiedName returns "<namespace>.<name>".
func (r *Registry) QualifiedName(name string) string {
	if r.namespace == "" {
		return name
	}
	return r.namespace + "." + name
}

// Register adds a definition to the registry.
func (r *Registry) Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// Get returns the definition registered under name. The name may carry
// the registry's namespace prefix.
func (r *Registry) Get(name string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if def, ok := r.defs[name]; ok {
		return def, nil
	}
	if r.namespace != "" {
		if bare, ok := strings.CutPrefix(name, r.namespace+"."); ok {
			if def, ok := r.defs[bare]; ok {
				return def, nil
			}
		}
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names returns the bare names of all registered definitions, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all registered definitions sorted by name.
func (r *Registry) Definitions() []Definition {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(names))
	for _, name := range names {
		if def, ok := r.defs[name]; ok {
			out = append(out, def)
		}
	}
	return out
}

// Invoke looks up name, validates input against the definition's input
// type and runs its handler.
func (r *Registry) Invoke(name string, input value.Value) (value.Value, error) {
	def, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	out, err := def.Call(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", def.Name, err)
	}
	return out, nil
}
