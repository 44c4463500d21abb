package render

import "github.com/VanDerGroot/gravityvisualizer/internal/lens"

// Mode is the primitive assembled from the vertices of one batch.
type Mode int

const (
	// LineStrip connects each vertex to the next one.
	LineStrip Mode = iota
	// QuadStrip turns every consecutive pair of vertex pairs into a quad.
	QuadStrip
)

func (m Mode) String() string {
	switch m {
	case LineStrip:
		return "line_strip"
	case QuadStrip:
		return "quad_strip"
	default:
		return "unknown"
	}
}

type Color struct {
	R, G, B, A float32
}

var (
	GridBlue  = Color{0.678, 0.847, 0.902, 1}
	MassGreen = Color{0, 1, 0, 1}
)

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = float32(a)
	return c
}

// Surface is an immediate-mode drawing target with a transform stack.
// Vertices emitted between Begin and End form one batch; the current
// color applies to every vertex emitted after it is set. Rotate takes
// degrees.
type Surface interface {
	Begin(mode Mode)
	End()
	Color(c Color)
	Vertex(p lens.Vec3)

	PushMatrix()
	PopMatrix()
	Translate(x, y, z float64)
	Rotate(angle, x, y, z float64)
}
