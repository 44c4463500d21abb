package render

import "github.com/VanDerGroot/gravityvisualizer/internal/lens"

// DrawGrid strokes the lattice as three families of line strips. For each
// index pair (i, j) the third index sweeps along X, Y and Z in turn, and
// every vertex is pulled toward center before its alpha is computed.
func DrawGrid(s Surface, l lens.Lattice, center lens.Vec3, p lens.Params) {
	n := l.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			strip(s, n, center, p, func(k int) lens.Vec3 { return l.Point(i, j, k) })
			strip(s, n, center, p, func(k int) lens.Vec3 { return l.Point(i, k, j) })
			strip(s, n, center, p, func(k int) lens.Vec3 { return l.Point(k, i, j) })
		}
	}
}

func strip(s Surface, n int, center lens.Vec3, p lens.Params, at func(k int) lens.Vec3) {
	s.Begin(LineStrip)
	for k := 0; k < n; k++ {
		q, alpha := p.Apply(at(k), center)
		s.Color(GridBlue.WithAlpha(alpha))
		s.Vertex(q)
	}
	s.End()
}
