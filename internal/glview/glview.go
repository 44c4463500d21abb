// Package glview is the default window backend: a glfw window with a
// legacy OpenGL 2.1 context drawn in immediate mode.
package glview

import (
	"fmt"
	"log"
	"math"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/VanDerGroot/gravityvisualizer/internal/lens"
	"github.com/VanDerGroot/gravityvisualizer/internal/render"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

func init() {
	// GLFW must run on main OS thread
	runtime.LockOSThread()
}

// Window implements scene.Backend. Input arrives through glfw callbacks
// and is queued until the next PollEvents.
type Window struct {
	win   *glfw.Window
	queue []scene.Event
}

// Open creates the window and its GL context. The release func destroys
// the window and terminates glfw.
func Open(opts scene.WindowOptions) (scene.Backend, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("glview: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	cam := opts.Camera
	win, err := glfw.CreateWindow(cam.Width, cam.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("glview: create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, nil, fmt.Errorf("glview: init gl: %w", err)
	}
	log.Printf("glview: OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	w := &Window{win: win}
	win.SetMouseButtonCallback(w.onButton)
	win.SetCursorPosCallback(w.onMove)
	win.SetKeyCallback(w.onKey)
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		setupProjection(cam, width, height)
	})

	fbw, fbh := win.GetFramebufferSize()
	setupProjection(cam, fbw, fbh)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)

	release := func() {
		win.Destroy()
		glfw.Terminate()
	}
	return w, release, nil
}

// Frustum returns the clip planes of a symmetric perspective projection
// with the given vertical field of view in degrees.
func Frustum(fovy, aspect, near, far float64) (left, right, bottom, top float64) {
	top = near * math.Tan(fovy*math.Pi/360)
	bottom = -top
	right = top * aspect
	left = -right
	return left, right, bottom, top
}

func setupProjection(cam render.Camera, width, height int) {
	if height == 0 {
		height = 1
	}
	gl.Viewport(0, 0, int32(width), int32(height))

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	l, r, b, t := Frustum(cam.FOV, float64(width)/float64(height), cam.Near, cam.Far)
	gl.Frustum(l, r, b, t, cam.Near, cam.Far)

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
	gl.Translatef(0, 0, float32(-cam.Distance))
}

func mouseButton(b glfw.MouseButton) scene.Button {
	switch b {
	case glfw.MouseButtonLeft:
		return scene.ButtonPrimary
	case glfw.MouseButtonMiddle:
		return scene.ButtonMiddle
	default:
		return scene.ButtonSecondary
	}
}

func (w *Window) onButton(win *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	x, y := win.GetCursorPos()
	switch action {
	case glfw.Press:
		w.queue = append(w.queue, scene.PressEvent(mouseButton(b), x, y))
	case glfw.Release:
		w.queue = append(w.queue, scene.ReleaseEvent(mouseButton(b), x, y))
	}
}

func (w *Window) onMove(_ *glfw.Window, x, y float64) {
	w.queue = append(w.queue, scene.MoveEvent(x, y))
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.queue = append(w.queue, scene.QuitEvent())
	}
}

func (w *Window) PollEvents() []scene.Event {
	glfw.PollEvents()
	if w.win.ShouldClose() {
		w.queue = append(w.queue, scene.QuitEvent())
	}
	events := w.queue
	w.queue = nil
	return events
}

func (w *Window) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (w *Window) Present() {
	w.win.SwapBuffers()
}

func (w *Window) Begin(mode render.Mode) {
	switch mode {
	case render.QuadStrip:
		gl.Begin(gl.QUAD_STRIP)
	default:
		gl.Begin(gl.LINE_STRIP)
	}
}

func (w *Window) End() { gl.End() }

func (w *Window) Color(c render.Color) { gl.Color4f(c.R, c.G, c.B, c.A) }

func (w *Window) Vertex(p lens.Vec3) {
	gl.Vertex3f(float32(p.X), float32(p.Y), float32(p.Z))
}

func (w *Window) PushMatrix() { gl.PushMatrix() }
func (w *Window) PopMatrix()  { gl.PopMatrix() }

func (w *Window) Translate(x, y, z float64) {
	gl.Translatef(float32(x), float32(y), float32(z))
}

func (w *Window) Rotate(angle, x, y, z float64) {
	gl.Rotatef(float32(angle), float32(x), float32(y), float32(z))
}
