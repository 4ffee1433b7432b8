package gen

import (
	"fmt"
	"sort"
	"sync"
)

// OutputFile represents a single generated file.
type OutputFile struct {
	Path    string // Relative path within output directory
	Content []byte
}

// Generator is the interface all code generators implement.
// Each generator produces the wrapper module for one output flavor
// (documented JavaScript or annotated TypeScript).
type Generator interface {
	// Name returns the generator name (e.g., "javascript", "typescript").
	Name() string

	// Generate produces output files for the given binding model.
	Generate(ctx *Context) ([]*OutputFile, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Generator{}
)

// Register adds a generator factory to the registry.
// Typically called from init() in each generator's file.
func Register(name string, factory func() Generator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("generator %q already registered", name))
	}
	registry[name] = factory
}

// Get returns a new instance of the named generator.
func Get(name string) (Generator, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// All returns the names of all registered generators, sorted.
func All() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GeneratorsForMode returns the generator names for an output mode
// selection: "js", "ts", or "both".
func GeneratorsForMode(mode string) []string {
	switch mode {
	case "js":
		return []string{"javascript"}
	case "ts":
		return []string{"typescript"}
	case "both":
		return []string{"javascript", "typescript"}
	default:
		return nil
	}
}
