package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
	"github.com/VanDerGroot/gravityvisualizer/internal/render"
)

// rlgl primitive modes
const (
	rlLines int32 = 0x0001
	rlQuads int32 = 0x0007
)

type vertex struct {
	pos   lens.Vec3
	color render.Color
}

// stripBuffer collects one strip and splits it into the independent
// primitives rlgl accepts.
type stripBuffer struct {
	mode  render.Mode
	color render.Color
	verts []vertex
	open  bool
}

func (s *stripBuffer) begin(mode render.Mode) {
	s.mode = mode
	s.verts = s.verts[:0]
	s.open = true
}

func (s *stripBuffer) add(p lens.Vec3) {
	if s.open {
		s.verts = append(s.verts, vertex{p, s.color})
	}
}

// flush hands the buffered strip to emit as a primitive mode and the
// vertices in submission order.
func (s *stripBuffer) flush(emit func(mode int32, verts []vertex)) {
	if !s.open {
		return
	}
	s.open = false

	var out []vertex
	switch s.mode {
	case render.LineStrip:
		for _, seg := range render.Segments(len(s.verts)) {
			out = append(out, s.verts[seg[0]], s.verts[seg[1]])
		}
		if len(out) > 0 {
			emit(rlLines, out)
		}
	case render.QuadStrip:
		for _, q := range render.Quads(len(s.verts)) {
			out = append(out, s.verts[q[0]], s.verts[q[1]], s.verts[q[2]], s.verts[q[3]])
		}
		if len(out) > 0 {
			emit(rlQuads, out)
		}
	}
}

func emitRL(mode int32, verts []vertex) {
	rl.Begin(mode)
	for _, v := range verts {
		rl.Color4f(v.color.R, v.color.G, v.color.B, v.color.A)
		rl.Vertex3f(float32(v.pos.X), float32(v.pos.Y), float32(v.pos.Z))
	}
	rl.End()
}

func (a *App) Begin(mode render.Mode) { a.strips.begin(mode) }
func (a *App) End()                   { a.strips.flush(emitRL) }
func (a *App) Color(c render.Color)   { a.strips.color = c }
func (a *App) Vertex(p lens.Vec3)     { a.strips.add(p) }
func (a *App) PushMatrix()            { rl.PushMatrix() }
func (a *App) PopMatrix()             { rl.PopMatrix() }

func (a *App) Translate(x, y, z float64) {
	rl.Translatef(float32(x), float32(y), float32(z))
}

func (a *App) Rotate(angle, x, y, z float64) {
	rl.Rotatef(float32(angle), float32(x), float32(y), float32(z))
}
