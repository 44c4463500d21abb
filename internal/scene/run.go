package scene

import (
	"context"
	"time"

	"github.com/VanDerGroot/gravityvisualizer/internal/render"
)

// Backend is a window (or terminal) that can be drawn on and polled for
// input. Acquiring and releasing it is up to the caller.
type Backend interface {
	render.Surface
	Clear()
	Present()
	PollEvents() []Event
}

type Observer interface {
	OnFrame(st State)
}

type ObserverFunc func(st State)

func (f ObserverFunc) OnFrame(st State) { f(st) }

// Run loops until a quit event arrives or ctx is done. Each iteration
// polls input, advances st, clears, draws, presents, notifies observers,
// then waits delay. The last state is always returned.
func Run(ctx context.Context, b Backend, sc *Scene, st State, delay time.Duration, observers ...Observer) (State, error) {
	var timer *time.Timer
	if delay > 0 {
		timer = time.NewTimer(delay)
		defer timer.Stop()
	}

	for st.Phase == Running {
		select {
		case <-ctx.Done():
			return st, &LoopError{Frame: st.Frame, State: st, Wrapped: ctx.Err()}
		default:
		}

		st = Step(st, b.PollEvents())
		if st.Phase == Terminated {
			break
		}

		b.Clear()
		sc.Draw(b, st)
		b.Present()

		for _, o := range observers {
			o.OnFrame(st)
		}

		if timer == nil {
			continue
		}
		timer.Reset(delay)
		select {
		case <-ctx.Done():
			return st, &LoopError{Frame: st.Frame, State: st, Wrapped: ctx.Err()}
		case <-timer.C:
		}
	}
	return st, nil
}
