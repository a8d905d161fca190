package patch

import (
	"fmt"
	"sync"
)

var (
	mu      sync.RWMutex
	ordered []Patch
	byName  = make(map[string]Patch)
)

// Register adds a patch to the catalog. Registration order is application
// order within each group; patches are applied exactly in the sequence the
// catalog registers them.
func Register(p Patch) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := byName[p.Name]; exists {
		panic(fmt.Sprintf("patch %s already registered", p.Name))
	}
	byName[p.Name] = p
	ordered = append(ordered, p)
}

// List returns the patches of one group in registration order.
func List(group Group) []Patch {
	mu.RLock()
	defer mu.RUnlock()
	var out []Patch
	for _, p := range ordered {
		if p.Group == group {
			out = append(out, p)
		}
	}
	return out
}

// All returns every registered patch in registration order.
func All() []Patch {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Patch, len(ordered))
	copy(out, ordered)
	return out
}

func Resolve(name string) (Patch, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := byName[name]
	if !ok {
		return Patch{}, fmt.Errorf("patch not found: %s", name)
	}
	return p, nil
}
