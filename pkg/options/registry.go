package options

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultValidators is the registry used by schemas without WithValidators.
var DefaultValidators = NewRegistry()

// Registry maps validator names to their check functions. Schemas resolve
// Self and Use validators against it.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{checks: make(map[string]CheckFunc)}
}

// Register adds a named check. Names may only be registered once.
func (r *Registry) Register(name string, fn CheckFunc) error {
	if fn == nil {
		return fmt.Errorf("validator %q: check is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checks[name]; exists {
		return fmt.Errorf("validator %q already registered", name)
	}
	r.checks[name] = fn
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fn CheckFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Lookup returns the check registered under name.
func (r *Registry) Lookup(name string) (CheckFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.checks[name]
	return fn, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
