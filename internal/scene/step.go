package scene

// HandleEvents applies events in order. A quit event terminates the state
// and the remaining events are dropped.
func HandleEvents(s State, events []Event) State {
	for _, ev := range events {
		if s.Phase == Terminated {
			return s
		}
		switch ev.Kind {
		case Quit:
			s.Phase = Terminated
		case ButtonDown:
			if ev.Button == ButtonPrimary {
				s.Drag = Drag{Active: true, LastX: ev.X, LastY: ev.Y}
			}
		case ButtonUp:
			if ev.Button == ButtonPrimary {
				s.Drag.Active = false
			}
		case MouseMove:
			if !s.Drag.Active {
				continue
			}
			s.Camera.Pitch += ev.Y - s.Drag.LastY
			s.Camera.Yaw += ev.X - s.Drag.LastX
			s.Drag.LastX, s.Drag.LastY = ev.X, ev.Y
		}
	}
	return s
}

// Step runs the per-frame update: input first, then the mass moves one
// step. A terminated state is returned unchanged.
func Step(s State, events []Event) State {
	if s.Phase == Terminated {
		return s
	}
	s = HandleEvents(s, events)
	if s.Phase == Terminated {
		return s
	}
	s.Animation = s.Animation.Advance()
	s.Frame++
	return s
}
