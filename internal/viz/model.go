package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/VanDerGroot/gravityvisualizer/internal/render"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

const (
	hudLines = 2

	// DefaultDragScale turns one terminal cell of mouse travel into
	// degrees of rotation.
	DefaultDragScale = 4.0
)

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model runs the scene inside a Bubble Tea program. Input is queued as
// scene events and consumed on the next tick, the same way a window
// backend is polled once per frame.
type Model struct {
	scene     *scene.Scene
	state     scene.State
	delay     time.Duration
	cam       render.Camera
	proj      *render.Projector
	canvas    *Canvas
	pending   []scene.Event
	theme     Theme
	dragScale float64
	showHelp  bool
	width     int
	height    int
}

func NewModel(sc *scene.Scene, st scene.State, cam render.Camera, delay time.Duration) Model {
	m := Model{
		scene:     sc,
		state:     st,
		delay:     delay,
		cam:       cam,
		theme:     ThemeVoid,
		dragScale: DefaultDragScale,
	}
	return m.resize(80, 24)
}

func (m Model) State() scene.State { return m.state }
func (m Model) Theme() Theme       { return m.theme }

// WithTheme returns m using the named theme.
func (m Model) WithTheme(name string) Model {
	m.theme = GetTheme(name)
	m.canvas.Background = m.theme.BackgroundColor()
	return m
}

func (m Model) resize(w, h int) Model {
	m.width, m.height = w, h
	m.canvas = NewCanvas(w, h-hudLines, m.theme.BackgroundColor())
	m.proj = render.NewProjector(CanvasCamera(m.cam, m.canvas))
	return m.draw()
}

func (m Model) draw() Model {
	m.canvas.Clear()
	Rasterize(m.canvas, m.scene.Project(m.proj, m.state))
	return m
}

func (m Model) Init() tea.Cmd { return tick(m.delay) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.pending = append(m.pending, scene.QuitEvent())
		case "t":
			m.theme = NextTheme(m.theme)
			m.canvas.Background = m.theme.BackgroundColor()
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil
	case tea.MouseMsg:
		if ev, ok := m.mouseEvent(msg); ok {
			m.pending = append(m.pending, ev)
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	case tickMsg:
		m.state = scene.Step(m.state, m.pending)
		m.pending = nil
		if m.state.Phase == scene.Terminated {
			return m, tea.Quit
		}
		return m.draw(), tick(m.delay)
	}
	return m, nil
}

// mouseEvent converts a terminal mouse report. Cell positions are scaled
// so a drag rotates at a usable speed; rows count double since cells are
// about twice as tall as they are wide.
func (m Model) mouseEvent(msg tea.MouseMsg) (scene.Event, bool) {
	x := float64(msg.X) * m.dragScale
	y := float64(msg.Y) * m.dragScale * 2

	switch msg.Action {
	case tea.MouseActionPress:
		b, ok := button(msg.Button)
		if !ok {
			return scene.Event{}, false
		}
		return scene.PressEvent(b, x, y), true
	case tea.MouseActionRelease:
		// Some terminals do not say which button was released.
		b, ok := button(msg.Button)
		if !ok {
			b = scene.ButtonPrimary
		}
		return scene.ReleaseEvent(b, x, y), true
	case tea.MouseActionMotion:
		return scene.MoveEvent(x, y), true
	}
	return scene.Event{}, false
}

func button(b tea.MouseButton) (scene.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return scene.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return scene.ButtonMiddle, true
	case tea.MouseButtonRight:
		return scene.ButtonSecondary, true
	}
	return 0, false
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(Paint(m.canvas, m.theme))
	b.WriteByte('\n')

	st := m.state
	hud := []string{
		TitleStyle.Foreground(m.theme.Text).Render("gravityvisualizer"),
		Metric(m.theme, "frame", fmt.Sprintf("%d", st.Frame)),
		Metric(m.theme, "mass", fmt.Sprintf("%+.2f", st.Animation.Offset)),
		Metric(m.theme, "pitch", fmt.Sprintf("%.0f°", st.Camera.Pitch)),
		Metric(m.theme, "yaw", fmt.Sprintf("%.0f°", st.Camera.Yaw)),
	}
	b.WriteString(strings.Join(hud, "  "))
	b.WriteByte('\n')
	b.WriteString(KeyHint.Foreground(m.theme.Muted).Render("drag: rotate  t: theme (" + m.theme.Name + ")  ?: falloff  q: quit"))

	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, b.String(), GlassPanel.Render(FalloffPlot(m.scene, 40, 6)))
	}
	return b.String()
}

// FalloffPlot charts vertex alpha against distance from the mass.
func FalloffPlot(sc *scene.Scene, width, height int) string {
	p := sc.Params()
	samples := p.Profile(2*p.MaxDistance, width)
	alpha := make([]float64, len(samples))
	for i, s := range samples {
		alpha[i] = s.Alpha
	}
	return asciigraph.Plot(alpha,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("alpha vs distance (0..%.1f)", 2*p.MaxDistance)),
	)
}

// Run blocks until the user quits and returns the final state.
func Run(m Model) (scene.State, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return m.state, fmt.Errorf("viz: %w", err)
	}
	return final.(Model).state, nil
}
