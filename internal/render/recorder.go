package render

import "github.com/VanDerGroot/gravityvisualizer/internal/lens"

type Vertex struct {
	Pos   lens.Vec3
	Color Color
}

type Batch struct {
	Mode     Mode
	Vertices []Vertex
}

// Recorder is a Surface that keeps every batch it receives. Transform
// calls are logged by name, in order, without being applied.
type Recorder struct {
	Batches  []Batch
	Ops      []string
	Depth    int
	MaxDepth int

	color   Color
	current *Batch
}

func NewRecorder() *Recorder {
	return &Recorder{color: Color{1, 1, 1, 1}}
}

func (r *Recorder) Begin(mode Mode) {
	r.current = &Batch{Mode: mode}
}

func (r *Recorder) End() {
	if r.current == nil {
		return
	}
	r.Batches = append(r.Batches, *r.current)
	r.current = nil
}

func (r *Recorder) Color(c Color) { r.color = c }

func (r *Recorder) Vertex(p lens.Vec3) {
	if r.current == nil {
		return
	}
	r.current.Vertices = append(r.current.Vertices, Vertex{Pos: p, Color: r.color})
}

func (r *Recorder) PushMatrix() {
	r.Ops = append(r.Ops, "push")
	r.Depth++
	if r.Depth > r.MaxDepth {
		r.MaxDepth = r.Depth
	}
}

func (r *Recorder) PopMatrix() {
	r.Ops = append(r.Ops, "pop")
	r.Depth--
}

func (r *Recorder) Translate(x, y, z float64) { r.Ops = append(r.Ops, "translate") }

func (r *Recorder) Rotate(angle, x, y, z float64) {
	switch {
	case x != 0:
		r.Ops = append(r.Ops, "rotate_x")
	case y != 0:
		r.Ops = append(r.Ops, "rotate_y")
	default:
		r.Ops = append(r.Ops, "rotate_z")
	}
}

// Count returns the number of recorded batches of the given mode.
func (r *Recorder) Count(mode Mode) int {
	n := 0
	for _, b := range r.Batches {
		if b.Mode == mode {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Batches = r.Batches[:0]
	r.Ops = r.Ops[:0]
	r.Depth, r.MaxDepth = 0, 0
	r.current = nil
}
