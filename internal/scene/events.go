package scene

type EventKind int

const (
	Quit EventKind = iota
	ButtonDown
	ButtonUp
	MouseMove
)

func (k EventKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case ButtonDown:
		return "button_down"
	case ButtonUp:
		return "button_up"
	case MouseMove:
		return "mouse_move"
	default:
		return "unknown"
	}
}

type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonMiddle
	ButtonSecondary
)

// Event is one input event in window pixel coordinates.
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   float64
}

func QuitEvent() Event { return Event{Kind: Quit} }

func PressEvent(b Button, x, y float64) Event {
	return Event{Kind: ButtonDown, Button: b, X: x, Y: y}
}

func ReleaseEvent(b Button, x, y float64) Event {
	return Event{Kind: ButtonUp, Button: b, X: x, Y: y}
}

func MoveEvent(x, y float64) Event { return Event{Kind: MouseMove, X: x, Y: y} }
