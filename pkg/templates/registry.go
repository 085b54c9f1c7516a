package templates

import (
	"fmt"
	"slices"
	"sync"
)

// Registry is an ordered, read-only set of templates safe for concurrent use
type Registry struct {
	templates []*Template
	byName    map[string]*Template
}

// NewRegistry creates a registry keeping the given order. Names must be unique.
func NewRegistry(templates ...*Template) (*Registry, error) {
	r := &Registry{
		templates: make([]*Template, 0, len(templates)),
		byName:    make(map[string]*Template, len(templates)),
	}
	for _, t := range templates {
		if _, exists := r.byName[t.Name()]; exists {
			return nil, fmt.Errorf("duplicate template name %q", t.Name())
		}
		r.templates = append(r.templates, t)
		r.byName[t.Name()] = t
	}
	return r, nil
}

var builtin = sync.OnceValue(func() *Registry {
	defs := builtinDefinitions()
	templates := make([]*Template, len(defs))
	for i, def := range defs {
		t, err := New(def)
		if err != nil {
			panic(fmt.Sprintf("invalid built-in template: %v", err))
		}
		templates[i] = t
	}

	r, err := NewRegistry(templates...)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in library: %v", err))
	}
	return r
})

// Library returns the built-in templates. It is built on first use and shared.
func Library() *Registry {
	return builtin()
}

// All returns the templates in library order
func (r *Registry) All() []*Template {
	return slices.Clone(r.templates)
}

// Len returns the number of templates
func (r *Registry) Len() int {
	return len(r.templates)
}

// Lookup finds a template by name
func (r *Registry) Lookup(name string) (*Template, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// ByFamily returns the templates belonging to any of the given families, in library order
func (r *Registry) ByFamily(families ...Family) []*Template {
	var out []*Template
	for _, t := range r.templates {
		if slices.Contains(families, t.Family()) {
			out = append(out, t)
		}
	}
	return out
}
