package viz

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/VanDerGroot/gravityvisualizer/internal/render"
)

// ToColorful drops the alpha channel of c.
func ToColorful(c render.Color) colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Rasterize draws projected segments onto the canvas in the order given,
// so callers sort them back to front first. Segment coordinates are
// canvas pixels.
func Rasterize(cv *Canvas, segs []render.Segment) {
	for _, s := range segs {
		cv.DrawLine(
			int(math.Round(s.X1)), int(math.Round(s.Y1)),
			int(math.Round(s.X2)), int(math.Round(s.Y2)),
			ToColorful(s.Color), float64(s.Color.A),
		)
	}
}

// CanvasCamera fits cam to the pixel area of cv.
func CanvasCamera(cam render.Camera, cv *Canvas) render.Camera {
	cam.Width, cam.Height = cv.PixelSize()
	return cam
}
