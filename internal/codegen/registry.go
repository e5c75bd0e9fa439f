package codegen

import (
	"fmt"

	"github.com/quadem/paramgen/internal/config"
)

// Factory builds a generator from the run configuration
type Factory func(cfg *config.Config) Generator

// Registry manages the available generators in emission order
type Registry struct {
	factories map[string]Factory
	order     []string
}

// NewRegistry creates a new, empty generator registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a generator factory. Registering an existing name replaces
// the factory but keeps its original position.
func (r *Registry) Register(name string, factory Factory) {
	if _, exists := r.factories[name]; !exists {
		r.order = append(r.order, name)
	}
	r.factories[name] = factory
}

// Get returns the named generator
func (r *Registry) Get(name string, cfg *config.Config) (Generator, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}

	return factory(cfg), nil
}

// Names returns the registered generator names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Generators builds every registered generator in registration order
func (r *Registry) Generators(cfg *config.Config) []Generator {
	gens := make([]Generator, 0, len(r.order))
	for _, name := range r.order {
		gens = append(gens, r.factories[name](cfg))
	}
	return gens
}
