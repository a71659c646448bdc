// Package noise provides the coherent 2D noise primitives sampled by the
// terrain generator. Primitives are registered by name so configuration can
// select one without importing its implementation.
package noise

import (
	"fmt"
	"sort"
)

// Source evaluates a coherent noise field. Values fall roughly in [-1, 1].
type Source interface {
	Eval2(x, y float64) float64
}

// Factory constructs a Source from a seed.
type Factory func(seed int64) Source

// Default names the primitive used when none is configured.
const Default = "simplex"

var sources = map[string]Factory{}

// Register adds a primitive factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources lists the registered primitive names in sorted order.
func Sources() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is a registered primitive. The empty name
// resolves to Default.
func Known(name string) bool {
	if name == "" {
		name = Default
	}
	_, ok := sources[name]
	return ok
}

// New builds the named primitive.
func New(name string, seed int64) (Source, error) {
	if name == "" {
		name = Default
	}
	f, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown noise primitive %q", name)
	}
	return f(seed), nil
}

// Unit remaps a raw sample from [-1, 1] to [0, 1], clamping overshoot.
func Unit(z float64) float64 {
	v := (z + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
