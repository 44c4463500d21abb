package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
	"github.com/VanDerGroot/gravityvisualizer/internal/render"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	l, err := lens.NewLattice(10, 1)
	if err != nil {
		t.Fatal(err)
	}
	sc := scene.New(l, lens.DefaultParams(1), render.DefaultSphere())
	return NewModel(sc, scene.NewState(l, 0.1), render.DefaultCamera(), 10*time.Millisecond)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t)
	start := m.State().Animation.Offset

	m, cmd := update(t, m, tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected the next tick to be scheduled")
	}
	if m.State().Frame != 1 {
		t.Errorf("expected frame 1, got %d", m.State().Frame)
	}
	if got := m.State().Animation.Offset; got <= start {
		t.Errorf("expected offset to grow from %f, got %f", start, got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	m, cmd := update(t, m, tickMsg(time.Now()))
	if m.State().Phase != scene.Terminated {
		t.Fatalf("expected terminated, got %v", m.State().Phase)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.State().Frame != 0 {
		t.Errorf("quit must not advance the frame, got %d", m.State().Frame)
	}
}

func TestModelDragRotates(t *testing.T) {
	m := newTestModel(t)

	msgs := []tea.Msg{
		tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
		tea.MouseMsg{X: 20, Y: 20, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
	}
	for _, msg := range msgs {
		m, _ = update(t, m, msg)
	}
	m, _ = update(t, m, tickMsg(time.Now()))

	cam := m.State().Camera
	if cam.Yaw != 2*DefaultDragScale {
		t.Errorf("expected yaw %f, got %f", 2*DefaultDragScale, cam.Yaw)
	}
	if cam.Pitch != 2*DefaultDragScale {
		t.Errorf("expected pitch %f, got %f", 2*DefaultDragScale, cam.Pitch)
	}
	if m.State().Drag.Active {
		t.Error("drag should have ended")
	}
}

func TestModelRightDragIgnored(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m, _ = update(t, m, tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonRight})
	m, _ = update(t, m, tickMsg(time.Now()))

	if cam := m.State().Camera; cam.Pitch != 0 || cam.Yaw != 0 {
		t.Errorf("expected camera untouched, got %+v", cam)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.canvas.Width != 60 || m.canvas.Height != 20-hudLines {
		t.Errorf("expected 60x%d canvas, got %dx%d", 20-hudLines, m.canvas.Width, m.canvas.Height)
	}
	if cam := m.proj.Camera(); cam.Width != 120 || cam.Height != 4*(20-hudLines) {
		t.Errorf("projector not fitted to canvas: %+v", cam)
	}
}

func TestModelDrawsSomething(t *testing.T) {
	m := newTestModel(t)

	lit := 0
	for row := 0; row < m.canvas.Height; row++ {
		for col := 0; col < m.canvas.Width; col++ {
			if m.canvas.Lit(col, row) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected the grid to light some cells")
	}
}

func TestModelThemeCycle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if m.Theme().Name != ThemeNight.Name {
		t.Errorf("expected %s, got %s", ThemeNight.Name, m.Theme().Name)
	}
	if m.canvas.Background != ThemeNight.BackgroundColor() {
		t.Error("expected canvas background to follow the theme")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})

	view := m.View()
	for _, want := range []string{"gravityvisualizer", "frame", "alpha vs distance"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
