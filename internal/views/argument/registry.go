// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package argument

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a fresh handler for one request.
type Factory func(deps Dependencies, options Options) (Handler, error)

// Registry maps stable plugin names to factories. Views refer to handlers only
// by these names.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry every built-in plugin
// registers itself with at init time.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a factory under id. Registering the same id twice is an error.
func (registry *Registry) Register(id string, factory Factory) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.factories[id]; exists {
		return fmt.Errorf("argument: plugin %q already registered", id)
	}
	registry.factories[id] = factory
	return nil
}

// MustRegister is Register for init-time wiring; it panics on duplicates.
func (registry *Registry) MustRegister(id string, factory Factory) {
	if err := registry.Register(id, factory); err != nil {
		panic(err)
	}
}

// Has reports whether id is registered.
func (registry *Registry) Has(id string) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	_, ok := registry.factories[id]
	return ok
}

// New instantiates the plugin registered under id.
func (registry *Registry) New(id string, deps Dependencies, options Options) (Handler, error) {
	registry.mu.RLock()
	factory, ok := registry.factories[id]
	registry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("argument: unknown plugin %q", id)
	}
	return factory(deps.withDefaults(), options)
}

// IDs lists registered plugin names in sorted order.
func (registry *Registry) IDs() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	ids := make([]string, 0, len(registry.factories))
	for id := range registry.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
