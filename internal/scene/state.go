package scene

import "github.com/VanDerGroot/gravityvisualizer/internal/lens"

type Phase int

const (
	Running Phase = iota
	Terminated
)

func (p Phase) String() string {
	if p == Terminated {
		return "terminated"
	}
	return "running"
}

// Animation moves the mass along the x axis and turns it around once it
// passes ±Bound. The offset is not clamped, so it can overshoot the bound
// by at most one step.
type Animation struct {
	Offset    float64
	Step      float64
	Direction float64
	Bound     float64
}

func (a Animation) Advance() Animation {
	a.Offset += a.Step * a.Direction
	if a.Offset > a.Bound || a.Offset < -a.Bound {
		a.Direction = -a.Direction
	}
	return a
}

func (a Animation) Center() lens.Vec3 {
	return lens.Vec3{X: a.Offset}
}

// Camera angles are in degrees.
type Camera struct {
	Pitch float64
	Yaw   float64
}

type Drag struct {
	Active       bool
	LastX, LastY float64
}

type State struct {
	Phase     Phase
	Animation Animation
	Camera    Camera
	Drag      Drag
	Frame     int
}

// NewState places the mass at the negative bound of l, moving forward.
func NewState(l lens.Lattice, step float64) State {
	bound := l.Bound()
	return State{
		Phase: Running,
		Animation: Animation{
			Offset:    -bound,
			Step:      step,
			Direction: 1,
			Bound:     bound,
		},
	}
}

func (s State) Center() lens.Vec3 { return s.Animation.Center() }
