package datasets

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]*Spec)
	mu       sync.RWMutex
)

// Register adds a dataset spec to the registry.
func Register(spec *Spec) {
	mu.Lock()
	defer mu.Unlock()
	registry[spec.Name] = spec
}

// Get retrieves a dataset spec by name.
func Get(name string) (*Spec, error) {
	mu.RLock()
	defer mu.RUnlock()

	spec, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset: %s", name)
	}
	return spec, nil
}

// List returns all registered dataset names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered specs in pipeline order: dimensions first,
// alphabetical within role. The loader depends on this ordering.
func All() []*Spec {
	mu.RLock()
	defer mu.RUnlock()

	specs := make([]*Spec, 0, len(registry))
	for _, spec := range registry {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		if specs[i].Role != specs[j].Role {
			return specs[i].Role == RoleDimension
		}
		return specs[i].Name < specs[j].Name
	})
	return specs
}
