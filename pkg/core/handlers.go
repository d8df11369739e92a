// core/handlers.go
package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
)

// Registry maps endpoint names to the modules that serve them. It replaces
// scanning a directory for handler files: modules are listed explicitly at
// startup.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]endpoint.Module
}

// NewRegistry builds a registry from mods, failing on the first invalid or
// duplicate module.
func NewRegistry(mods ...endpoint.Module) (*Registry, error) {
	r := &Registry{modules: make(map[string]endpoint.Module, len(mods))}
	for _, m := range mods {
		if err := r.Add(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add makes a module available under its name.
func (r *Registry) Add(m endpoint.Module) error {
	name := strings.TrimSpace(m.Name)
	if name == "" || strings.ContainsAny(name, "/ \t") {
		return fmt.Errorf("%w: name %q", ErrInvalidModule, m.Name)
	}
	if m.Register == nil {
		return fmt.Errorf("%w: %q has no Register func", ErrInvalidModule, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.modules[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateModule, name)
	}
	m.Name = name
	r.modules[name] = m
	return nil
}

// Lookup retrieves a registered module by name.
func (r *Registry) Lookup(name string) (endpoint.Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[name]
	return m, ok
}

// Names returns registered module names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.modules))
	for n := range r.modules {
		out = append(out, n)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}
