package stage

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound reports a lookup for an unregistered stage name.
var ErrNotFound = errors.New("stage: not found")

// Registry stores stages by name, providing discovery and duplication
// safeguards. The CLI uses one to select formatters.
type Registry struct {
	mu     sync.RWMutex
	stages map[string]Stage
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		stages: make(map[string]Stage),
	}
}

// Register adds a stage by its Name(). Duplicate names return an error.
func (r *Registry) Register(s Stage) error {
	if s == nil {
		return fmt.Errorf("stage: stage is required")
	}
	name := s.Name()
	if name == "" {
		return fmt.Errorf("stage: stage name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stages[name]; exists {
		return fmt.Errorf("stage: %q already registered", name)
	}

	r.stages[name] = s
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(s Stage) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Get retrieves a stage by name.
func (r *Registry) Get(name string) (Stage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s, nil
}

// List returns a sorted list of stage names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.stages))
	for name := range r.stages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a stage is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.stages[name]
	return ok
}
