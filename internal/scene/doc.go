// Package scene drives the gravity grid: input handling, the oscillating
// mass, and the per-frame draw.
//
// All mutable simulation state lives in [State], which is passed into and
// returned from [Step] each frame:
//
//   - [Animation]: mass offset bouncing between -Bound and +Bound
//   - [Camera]: pitch and yaw accumulated from mouse drags
//   - [Drag]: whether the primary button is held and where it was last seen
//
// [Scene] draws a state onto any render.Surface, and [Run] ties a
// [Backend] (window, terminal) to the loop:
//
//	st := scene.NewState(lattice, 0.1)
//	final, err := scene.Run(ctx, backend, scene.New(lattice, params, sphere), st, 10*time.Millisecond)
//
// # Thread Safety
//
// Run must be called from the goroutine that owns the backend's graphics
// context. Observers are called synchronously after each frame.
package scene
