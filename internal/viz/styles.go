package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().Bold(true)

	MetricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().Italic(true)
)

// Metric renders "label value" with the value in the theme accent.
func Metric(t Theme, label, value string) string {
	return MetricLabel.Render(label) + " " + lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(value)
}

// Paint renders the canvas with one foreground color per cell. Runs of
// equal color share a single style so the escape sequences stay short.
func Paint(c *Canvas, t Theme) string {
	bg := lipgloss.NewStyle().Background(t.Background)
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		var run strings.Builder
		var runColor colorful.Color
		runLit := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := bg
			if runLit {
				style = bg.Foreground(lipgloss.Color(runColor.Clamped().Hex()))
			}
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for col := 0; col < c.Width; col++ {
			lit := c.Lit(col, row)
			color := c.Colors[row][col]
			if lit != runLit || (lit && color != runColor) {
				flush()
				runLit, runColor = lit, color
			}
			run.WriteRune(c.Grid[row][col])
		}
		flush()
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
