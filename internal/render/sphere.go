package render

import (
	"math"

	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
)

// Sphere describes the tessellation of the mass marker.
type Sphere struct {
	Radius float64
	Lats   int
	Longs  int
}

func DefaultSphere() Sphere {
	return Sphere{Radius: 0.3, Lats: 20, Longs: 20}
}

// DrawSphere emits one quad strip per latitude band. Each strip walks the
// full circle (longs+1 steps, closing the seam) with one vertex on the
// lower and one on the upper bounding latitude per step.
func DrawSphere(s Surface, radius float64, lats, longs int) {
	for i := 0; i < lats; i++ {
		lat0 := math.Pi * (-0.5 + float64(i)/float64(lats))
		z0, zr0 := math.Sin(lat0), math.Cos(lat0)

		lat1 := math.Pi * (-0.5 + float64(i+1)/float64(lats))
		z1, zr1 := math.Sin(lat1), math.Cos(lat1)

		s.Begin(QuadStrip)
		for j := 0; j <= longs; j++ {
			lng := 2 * math.Pi * float64(j) / float64(longs)
			x, y := math.Cos(lng), math.Sin(lng)
			s.Vertex(lens.Vec3{X: x * zr0 * radius, Y: y * zr0 * radius, Z: z0 * radius})
			s.Vertex(lens.Vec3{X: x * zr1 * radius, Y: y * zr1 * radius, Z: z1 * radius})
		}
		s.End()
	}
}

// DrawMass draws the solid green marker at center.
func DrawMass(s Surface, center lens.Vec3, sp Sphere) {
	s.PushMatrix()
	s.Translate(center.X, center.Y, center.Z)
	s.Color(MassGreen)
	DrawSphere(s, sp.Radius, sp.Lats, sp.Longs)
	s.PopMatrix()
}
