package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/VanDerGroot/gravityvisualizer/internal/render"
	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

// HUD palette drawn over the black 3D view.
var (
	ColBg      = rl.NewColor(0, 0, 0, 255)       // Black, as the GL window
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
)

// App is the raylib backend. Begin/End batches are buffered and replayed
// through rlgl as plain lines and quads on End.
type App struct {
	Camera  rl.Camera3D
	View    render.Camera
	Title   string
	ShowHUD bool
	Frame   int
	Offset  float64
	strips  stripBuffer
	lastPos rl.Vector2
	havePos bool
	inFrame bool
}

// initWindow opens the raylib window at the requested size and disables
// the default exit key so that Escape goes through the event queue.
func initWindow(cam render.Camera, title string) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cam.Width), int32(cam.Height), title)
	rl.SetTargetFPS(100)
	rl.SetExitKey(0)
}

// Open creates the window and returns an App bound to it.
func Open(opts scene.WindowOptions) (scene.Backend, func(), error) {
	initWindow(opts.Camera, opts.Title)
	if !rl.IsWindowReady() {
		rl.CloseWindow()
		return nil, nil, fmt.Errorf("gui: window not ready")
	}
	return NewApp(opts), rl.CloseWindow, nil
}

func NewApp(opts scene.WindowOptions) *App {
	cam := opts.Camera
	return &App{
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, float32(cam.Distance)),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			float32(cam.FOV),
			rl.CameraPerspective,
		),
		View:    cam,
		Title:   opts.Title,
		ShowHUD: true,
	}
}

func (a *App) PollEvents() []scene.Event {
	var events []scene.Event
	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ) {
		return append(events, scene.QuitEvent())
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)
	if a.havePos && (pos.X != a.lastPos.X || pos.Y != a.lastPos.Y) {
		events = append(events, scene.MoveEvent(x, y))
	}
	a.lastPos, a.havePos = pos, true

	for _, b := range []struct {
		rl     rl.MouseButton
		button scene.Button
	}{
		{rl.MouseLeftButton, scene.ButtonPrimary},
		{rl.MouseMiddleButton, scene.ButtonMiddle},
		{rl.MouseRightButton, scene.ButtonSecondary},
	} {
		if rl.IsMouseButtonPressed(b.rl) {
			events = append(events, scene.PressEvent(b.button, x, y))
		}
		if rl.IsMouseButtonReleased(b.rl) {
			events = append(events, scene.ReleaseEvent(b.button, x, y))
		}
	}
	return events
}

// Clear starts a frame. Mode3D is entered here and the projection is
// replaced so near and far match the configured camera.
func (a *App) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	rl.BeginMode3D(a.Camera)
	rl.SetMatrixProjection(rl.MatrixPerspective(
		float32(a.View.FOV)*rl.Deg2rad,
		float32(rl.GetScreenWidth())/float32(max(rl.GetScreenHeight(), 1)),
		float32(a.View.Near),
		float32(a.View.Far),
	))
	rl.DisableDepthTest()
	a.inFrame = true
}

func (a *App) Present() {
	if !a.inFrame {
		return
	}
	rl.EndMode3D()
	if a.ShowHUD {
		a.DrawHUD()
	}
	rl.EndDrawing()
	a.inFrame = false
}

// Observe records what the HUD shows; it is registered as a loop observer.
func (a *App) Observe(st scene.State) {
	a.Frame = st.Frame
	a.Offset = st.Animation.Offset
}

func (a *App) DrawHUD() {
	rl.DrawText(a.Title, 20, 20, 20, ColText)
	rl.DrawText(fmt.Sprintf("frame %d  mass %+.2f", a.Frame, a.Offset), 20, 46, 14, ColText)
	rl.DrawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 20, int32(rl.GetScreenHeight())-30, 14, ColTextDim)
	rl.DrawText("[DRAG] ROTATE  [H] HUD  [Q] QUIT", int32(rl.GetScreenWidth())-260, int32(rl.GetScreenHeight())-30, 14, ColTextDim)
}
