package render

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
)

// Camera is the fixed perspective the scene is viewed through: a vertical
// field of view in degrees and a camera pulled back Distance units along
// the viewing axis.
type Camera struct {
	FOV      float64
	Near     float64
	Far      float64
	Distance float64
	Width    int
	Height   int
}

func DefaultCamera() Camera {
	return Camera{FOV: 45, Near: 0.1, Far: 50, Distance: 20, Width: 800, Height: 600}
}

func (c Camera) Aspect() float64 {
	if c.Height == 0 {
		return 1
	}
	return float64(c.Width) / float64(c.Height)
}

// Segment is a projected line in viewport pixels. Depth is the mean NDC
// depth of both ends; larger is farther away.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Depth          float64
	Color          Color
}

type projected struct {
	x, y, z float64
	visible bool
	color   Color
}

// Projector is a software Surface. It applies the transform stack and the
// camera projection to every vertex and flattens each batch into 2D
// segments: line strips by their connections, quad strips by their
// outline.
type Projector struct {
	cam   Camera
	proj  mgl32.Mat4
	stack []mgl32.Mat4
	color Color
	mode  Mode
	batch []projected
	open  bool

	Segments []Segment
}

func NewProjector(cam Camera) *Projector {
	proj := mgl32.Perspective(
		mgl32.DegToRad(float32(cam.FOV)),
		float32(cam.Aspect()),
		float32(cam.Near),
		float32(cam.Far),
	)
	p := &Projector{cam: cam, proj: proj, color: Color{1, 1, 1, 1}}
	p.Reset()
	return p
}

func (p *Projector) Camera() Camera { return p.cam }

// Reset drops the collected segments and restores the view transform.
func (p *Projector) Reset() {
	p.Segments = p.Segments[:0]
	p.stack = append(p.stack[:0], mgl32.Translate3D(0, 0, float32(-p.cam.Distance)))
	p.batch = p.batch[:0]
	p.open = false
}

func (p *Projector) top() mgl32.Mat4 { return p.stack[len(p.stack)-1] }

func (p *Projector) Begin(mode Mode) {
	p.mode = mode
	p.batch = p.batch[:0]
	p.open = true
}

func (p *Projector) End() {
	if !p.open {
		return
	}
	p.open = false

	var pairs [][2]int
	switch p.mode {
	case LineStrip:
		pairs = Segments(len(p.batch))
	case QuadStrip:
		pairs = Edges(len(p.batch))
	}
	for _, e := range pairs {
		a, b := p.batch[e[0]], p.batch[e[1]]
		if !a.visible || !b.visible {
			continue
		}
		p.Segments = append(p.Segments, Segment{
			X1: a.x, Y1: a.y, X2: b.x, Y2: b.y,
			Depth: (a.z + b.z) / 2,
			Color: mix(a.color, b.color),
		})
	}
}

func (p *Projector) Color(c Color) { p.color = c }

func (p *Projector) Vertex(v lens.Vec3) {
	if !p.open {
		return
	}
	x, y, z, ok := p.project(v)
	p.batch = append(p.batch, projected{x: x, y: y, z: z, visible: ok, color: p.color})
}

// Project maps v through the current transform to viewport pixels.
func (p *Projector) Project(v lens.Vec3) (x, y float64, ok bool) {
	x, y, _, ok = p.project(v)
	return x, y, ok
}

func (p *Projector) project(v lens.Vec3) (float64, float64, float64, bool) {
	eye := p.top().Mul4x1(mgl32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), 1})
	clip := p.proj.Mul4x1(eye)
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	nx, ny, nz := clip.X()/w, clip.Y()/w, clip.Z()/w
	if nz < -1 || nz > 1 {
		return 0, 0, 0, false
	}
	sx := (float64(nx) + 1) / 2 * float64(p.cam.Width)
	sy := (1 - float64(ny)) / 2 * float64(p.cam.Height)
	return sx, sy, float64(nz), true
}

func (p *Projector) PushMatrix() {
	p.stack = append(p.stack, p.top())
}

func (p *Projector) PopMatrix() {
	if len(p.stack) > 1 {
		p.stack = p.stack[:len(p.stack)-1]
	}
}

func (p *Projector) Translate(x, y, z float64) {
	p.stack[len(p.stack)-1] = p.top().Mul4(mgl32.Translate3D(float32(x), float32(y), float32(z)))
}

func (p *Projector) Rotate(angle, x, y, z float64) {
	axis := mgl32.Vec3{float32(x), float32(y), float32(z)}
	if axis.Len() == 0 {
		return
	}
	r := mgl32.HomogRotate3D(mgl32.DegToRad(float32(angle)), axis.Normalize())
	p.stack[len(p.stack)-1] = p.top().Mul4(r)
}

// SortByDepth orders the segments back to front.
func (p *Projector) SortByDepth() {
	sort.SliceStable(p.Segments, func(i, j int) bool { return p.Segments[i].Depth > p.Segments[j].Depth })
}

func mix(a, b Color) Color {
	return Color{(a.R + b.R) / 2, (a.G + b.G) / 2, (a.B + b.B) / 2, (a.A + b.A) / 2}
}
