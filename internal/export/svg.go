package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/VanDerGroot/gravityvisualizer/internal/render"
	"github.com/VanDerGroot/gravityvisualizer/internal/viz"
)

const Background = "#000000"

func hex(c render.Color) string {
	return viz.ToColorful(c).Clamped().Hex()
}

// SegmentsToSVG draws projected segments as SVG lines, one per segment,
// in the order given. Each line keeps its vertex alpha as stroke opacity.
func SegmentsToSVG(segs []render.Segment, width, height int) string {
	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g stroke-width="1" stroke-linecap="round">
`, width, height, width, height, Background))

	for _, s := range segs {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-opacity="%.3f"/>
`, s.X1, s.Y1, s.X2, s.Y2, hex(s.Color), s.Color.A))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format, one dot per lit
// pixel in the color of its cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, canvas.Background.Clamped().Hex()))

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			if !canvas.Lit(col, row) {
				continue
			}
			pattern := int(canvas.Grid[row][col] - viz.BrailleBase)
			fill := canvas.Colors[row][col].Clamped().Hex()

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&viz.DotBits[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func WriteFile(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
