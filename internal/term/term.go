// Package term is a scene backend that draws into a terminal through
// tcell, using the braille canvas from viz.
package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/VanDerGroot/gravityvisualizer/internal/render"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
	"github.com/VanDerGroot/gravityvisualizer/internal/viz"
)

const dragScale = viz.DefaultDragScale

// Backend implements scene.Backend on a tcell screen. Drawing goes
// through an embedded Projector; Present rasterizes the frame.
type Backend struct {
	*render.Projector

	screen tcell.Screen
	cam    render.Camera
	canvas *viz.Canvas
	theme  viz.Theme

	mu      sync.Mutex
	queue   []scene.Event
	resized bool
	buttons tcell.ButtonMask
	lastX   int
	lastY   int
	done    chan struct{}
}

// Open initializes a real terminal screen.
func Open(opts scene.WindowOptions) (scene.Backend, func(), error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, nil, fmt.Errorf("term: init screen: %w", err)
	}
	b := New(s, opts.Camera)
	return b, b.Close, nil
}

// New wraps an initialized screen and starts reading its events.
func New(s tcell.Screen, cam render.Camera) *Backend {
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()

	b := &Backend{
		screen: s,
		cam:    cam,
		theme:  viz.ThemeVoid,
		done:   make(chan struct{}),
	}
	b.resize()
	go b.readEvents()
	return b
}

func (b *Backend) resize() {
	w, h := b.screen.Size()
	b.canvas = viz.NewCanvas(w, h, b.theme.BackgroundColor())
	b.Projector = render.NewProjector(viz.CanvasCamera(b.cam, b.canvas))
}

func (b *Backend) readEvents() {
	defer close(b.done)
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		b.handle(ev)
	}
}

func (b *Backend) handle(ev tcell.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			b.queue = append(b.queue, scene.QuitEvent())
		}
	case *tcell.EventMouse:
		b.queue = append(b.queue, b.mouse(ev)...)
	case *tcell.EventResize:
		b.resized = true
	}
}

// mouse turns tcell's button state into press, release and move events.
func (b *Backend) mouse(ev *tcell.EventMouse) []scene.Event {
	cx, cy := ev.Position()
	x, y := float64(cx)*dragScale, float64(cy)*dragScale*2
	now := ev.Buttons()

	var out []scene.Event
	for _, m := range []struct {
		mask   tcell.ButtonMask
		button scene.Button
	}{
		{tcell.Button1, scene.ButtonPrimary},
		{tcell.Button3, scene.ButtonMiddle},
		{tcell.Button2, scene.ButtonSecondary},
	} {
		was, is := b.buttons&m.mask != 0, now&m.mask != 0
		switch {
		case is && !was:
			out = append(out, scene.PressEvent(m.button, x, y))
		case was && !is:
			out = append(out, scene.ReleaseEvent(m.button, x, y))
		}
	}
	if cx != b.lastX || cy != b.lastY {
		out = append(out, scene.MoveEvent(x, y))
	}
	b.buttons = now
	b.lastX, b.lastY = cx, cy
	return out
}

func (b *Backend) PollEvents() []scene.Event {
	b.mu.Lock()
	queued, resized := b.queue, b.resized
	b.queue, b.resized = nil, false
	b.mu.Unlock()

	if resized {
		b.screen.Sync()
		b.resize()
	}
	return queued
}

func (b *Backend) Clear() {
	b.Projector.Reset()
}

func (b *Backend) Present() {
	b.SortByDepth()
	b.canvas.Clear()
	viz.Rasterize(b.canvas, b.Segments)

	bg := rgb(b.canvas.Background)
	for row := 0; row < b.canvas.Height; row++ {
		for col := 0; col < b.canvas.Width; col++ {
			style := tcell.StyleDefault.Background(bg)
			if b.canvas.Lit(col, row) {
				style = style.Foreground(rgb(b.canvas.Colors[row][col]))
			}
			b.screen.SetContent(col, row, b.canvas.Grid[row][col], nil, style)
		}
	}
	b.screen.Show()
}

// Close restores the terminal and waits for the event reader to stop.
func (b *Backend) Close() {
	b.screen.Fini()
	<-b.done
}

func rgb(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
