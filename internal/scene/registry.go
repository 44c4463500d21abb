package scene

import (
	"fmt"
	"sort"

	"github.com/VanDerGroot/gravityvisualizer/internal/render"
)

// WindowOptions describe the window a backend opens.
type WindowOptions struct {
	Title  string
	Camera render.Camera
}

// Opener acquires a backend. The returned release func must be called
// exactly once when the caller is done with it.
type Opener func(opts WindowOptions) (Backend, func(), error)

type Registry struct {
	backends map[string]Opener
}

func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Opener)}
}

func (r *Registry) Register(name string, open Opener) {
	r.backends[name] = open
}

func (r *Registry) Open(name string, opts WindowOptions) (Backend, func(), error) {
	open, ok := r.backends[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownBackend, name, r.List())
	}
	b, release, err := open(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: open %s: %w", name, err)
	}
	return b, release, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
