package viz

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const BrailleBase = 0x2800

// DotBits maps a dot at (row, col) within a cell to its pattern bit.
var DotBits = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille pixel canvas with one color per cell. Width and
// Height count cells; pixels are addressed in sub-cell coordinates, so
// the drawable area is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]colorful.Color
	Background    colorful.Color
}

func NewCanvas(w, h int, bg colorful.Color) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:      w,
		Height:     h,
		Grid:       make([][]rune, h),
		Colors:     make([][]colorful.Color, h),
		Background: bg,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]colorful.Color, w)
	}
	c.Clear()
	return c
}

// PixelSize is the drawable area in sub-cell pixels.
func (c *Canvas) PixelSize() (int, int) { return c.Width * 2, c.Height * 4 }

// Set lights the pixel at (x, y) and blends col into its cell with the
// given opacity.
func (c *Canvas) Set(x, y int, col colorful.Color, alpha float64) {
	if x < 0 || y < 0 {
		return
	}

	cx := x / 2
	cy := y / 4
	if cx >= c.Width || cy >= c.Height {
		return
	}

	c.Grid[cy][cx] |= rune(DotBits[y%4][x%2])
	c.Colors[cy][cx] = c.Colors[cy][cx].BlendRgb(col, clamp01(alpha))
}

// Lit reports whether any pixel of the cell is set.
func (c *Canvas) Lit(col, row int) bool {
	return c.Grid[row][col] != BrailleBase
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = BrailleBase
			c.Colors[i][j] = c.Background
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col colorful.Color, alpha float64) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col, alpha)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the canvas without colors.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
