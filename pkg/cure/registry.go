package cure

import (
	"sort"

	"cure-colormap/pkg/gradient"
)

// Registry maps character aliases to gradients.
// Every alias of a character points at the same *gradient.Gradient.
// Names are matched exactly: case and script matter.
type Registry struct {
	byName map[string]*gradient.Gradient
	order  []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*gradient.Gradient),
	}
}

// Builtin returns a registry holding every built-in character.
// Gradients are shared with the package-level Character values.
func Builtin() *Registry {
	r := NewRegistry()
	for _, c := range Characters() {
		r.Add(c)
	}
	return r
}

// Register builds a gradient from colors and binds it to every name.
// On a build error nothing is registered and the gradient is nil.
// With no names the gradient is still built and returned.
// A name that is already present is overwritten.
func (r *Registry) Register(mode gradient.Mode, colors []string, names ...string) (*gradient.Gradient, error) {
	g, err := gradient.Build(mode, colors)
	if err != nil {
		return nil, err
	}
	r.bind(g, names)
	return g, nil
}

// Add binds an already built character under all of its names.
func (r *Registry) Add(c *Character) {
	r.bind(c.Gradient, c.Names)
}

func (r *Registry) bind(g *gradient.Gradient, names []string) {
	for _, name := range names {
		if _, exists := r.byName[name]; !exists {
			r.order = append(r.order, name)
		}
		r.byName[name] = g
	}
}

// Lookup returns the gradient registered under name.
func (r *Registry) Lookup(name string) (*gradient.Gradient, bool) {
	g, ok := r.byName[name]
	return g, ok
}

// Len returns the number of registered names.
func (r *Registry) Len() int { return len(r.byName) }

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Characters groups names by the gradient they currently resolve to,
// in first-registration order.
func (r *Registry) Characters() []*Character {
	var out []*Character
	index := map[*gradient.Gradient]*Character{}
	for _, name := range r.order {
		g := r.byName[name]
		c, ok := index[g]
		if !ok {
			c = &Character{Gradient: g}
			index[g] = c
			out = append(out, c)
		}
		c.Names = append(c.Names, name)
	}
	return out
}
