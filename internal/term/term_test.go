package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
	"github.com/VanDerGroot/gravityvisualizer/internal/render"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

func newTestBackend(t *testing.T) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(40, 12)
	b := New(s, render.DefaultCamera())
	t.Cleanup(b.Close)
	return b, s
}

// collect polls until n events arrived or a second passed.
func collect(b *Backend, n int) []scene.Event {
	var out []scene.Event
	deadline := time.Now().Add(time.Second)
	for len(out) < n && time.Now().Before(deadline) {
		out = append(out, b.PollEvents()...)
		time.Sleep(time.Millisecond)
	}
	return out
}

func TestQuitKey(t *testing.T) {
	b, s := newTestBackend(t)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	events := collect(b, 1)
	if len(events) != 1 || events[0].Kind != scene.Quit {
		t.Fatalf("expected one quit event, got %v", events)
	}
}

func TestDragEvents(t *testing.T) {
	b, s := newTestBackend(t)
	s.InjectMouse(10, 5, tcell.Button1, tcell.ModNone)
	s.InjectMouse(12, 6, tcell.Button1, tcell.ModNone)
	s.InjectMouse(12, 6, tcell.ButtonNone, tcell.ModNone)

	events := collect(b, 4)
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %v", events)
	}

	l, _ := lens.NewLattice(10, 1)
	st := scene.Step(scene.NewState(l, 0.1), events)
	if st.Camera.Yaw != 2*dragScale || st.Camera.Pitch != 2*dragScale {
		t.Errorf("expected yaw and pitch %f, got %+v", 2*dragScale, st.Camera)
	}
	if st.Drag.Active {
		t.Error("expected drag to end on release")
	}
}

func TestSecondaryButtonDoesNotDrag(t *testing.T) {
	b, s := newTestBackend(t)
	s.InjectMouse(3, 3, tcell.Button2, tcell.ModNone)

	events := collect(b, 2)
	if len(events) == 0 || events[0].Button != scene.ButtonSecondary {
		t.Fatalf("expected a secondary press, got %v", events)
	}

	l, _ := lens.NewLattice(10, 1)
	if st := scene.Step(scene.NewState(l, 0.1), events); st.Drag.Active {
		t.Error("secondary button must not start a drag")
	}
}

func TestPresentDrawsGrid(t *testing.T) {
	b, s := newTestBackend(t)

	l, _ := lens.NewLattice(10, 1)
	sc := scene.New(l, lens.DefaultParams(1), render.DefaultSphere())
	b.Clear()
	sc.Draw(b, scene.NewState(l, 0.1))
	b.Present()

	w, h := s.Size()
	lit := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := s.GetContent(x, y)
			if r > 0x2800 && r <= 0x28ff {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected lit braille cells on screen")
	}
}

func TestBackendImplementsScene(t *testing.T) {
	var _ scene.Backend = (*Backend)(nil)
}
