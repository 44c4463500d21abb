package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
}

// Available themes
var (
	ThemeVoid = Theme{
		Name:       "void",
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666688"),
		Accent:     lipgloss.Color("#00ff00"),
	}

	ThemeNight = Theme{
		Name:       "night",
		Background: lipgloss.Color("#0a0a1e"),
		Text:       lipgloss.Color("#c8d2ff"),
		Muted:      lipgloss.Color("#4a5078"),
		Accent:     lipgloss.Color("#7df9ff"),
	}

	ThemeSlate = Theme{
		Name:       "slate",
		Background: lipgloss.Color("#1c1f24"),
		Text:       lipgloss.Color("#e6e6e6"),
		Muted:      lipgloss.Color("#6b7280"),
		Accent:     lipgloss.Color("#facc15"),
	}
)

var Themes = []Theme{ThemeVoid, ThemeNight, ThemeSlate}

// BackgroundColor parses the theme background, falling back to black.
func (t Theme) BackgroundColor() colorful.Color {
	c, err := colorful.Hex(string(t.Background))
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeVoid
}

// NextTheme cycles through Themes.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
