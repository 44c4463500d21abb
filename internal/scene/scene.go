package scene

import (
	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
	"github.com/VanDerGroot/gravityvisualizer/internal/render"
)

// Scene holds the read-only pieces of the picture: the lattice, the lens
// constants and the mass marker.
type Scene struct {
	lattice lens.Lattice
	params  lens.Params
	sphere  render.Sphere
}

func New(l lens.Lattice, p lens.Params, sp render.Sphere) *Scene {
	return &Scene{lattice: l, params: p, sphere: sp}
}

func (sc *Scene) Lattice() lens.Lattice { return sc.lattice }
func (sc *Scene) Params() lens.Params   { return sc.params }

// Draw renders st inside one transform scope: pitch about X, then yaw
// about Y, then the grid and the mass.
func (sc *Scene) Draw(s render.Surface, st State) {
	center := st.Center()
	s.PushMatrix()
	s.Rotate(st.Camera.Pitch, 1, 0, 0)
	s.Rotate(st.Camera.Yaw, 0, 1, 0)
	render.DrawGrid(s, sc.lattice, center, sc.params)
	render.DrawMass(s, center, sc.sphere)
	s.PopMatrix()
}

// Project draws st through p and returns its segments back to front.
func (sc *Scene) Project(p *render.Projector, st State) []render.Segment {
	p.Reset()
	sc.Draw(p, st)
	p.SortByDepth()
	return p.Segments
}
