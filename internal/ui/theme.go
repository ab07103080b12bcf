package ui

import (
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

const defaultTheme = "catppuccin"

type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Present lipgloss.Color
	Absent  lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:    lipgloss.Color("#cdd6f4"),
		Muted:   lipgloss.Color("#a6adc8"),
		Accent:  lipgloss.Color("#cba6f7"),
		Border:  lipgloss.Color("#585b70"),
		Present: lipgloss.Color("#94e2d5"),
		Absent:  lipgloss.Color("#f9e2af"),
	},
	"dracula": {
		Text:    lipgloss.Color("#f8f8f2"),
		Muted:   lipgloss.Color("#6272a4"),
		Accent:  lipgloss.Color("#ff79c6"),
		Border:  lipgloss.Color("#44475a"),
		Present: lipgloss.Color("#50fa7b"),
		Absent:  lipgloss.Color("#f1fa8c"),
	},
	"gruvbox": {
		Text:    lipgloss.Color("#ebdbb2"),
		Muted:   lipgloss.Color("#a89984"),
		Accent:  lipgloss.Color("#fabd2f"),
		Border:  lipgloss.Color("#665c54"),
		Present: lipgloss.Color("#b8bb26"),
		Absent:  lipgloss.Color("#fe8019"),
	},
	"solarized_dark": {
		Text:    lipgloss.Color("#fdf6e3"),
		Muted:   lipgloss.Color("#93a1a1"),
		Accent:  lipgloss.Color("#b58900"),
		Border:  lipgloss.Color("#586e75"),
		Present: lipgloss.Color("#859900"),
		Absent:  lipgloss.Color("#cb4b16"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[defaultTheme]
}

// ThemeNames lists the available themes, sorted.
func ThemeNames() []string { return slices.Sorted(maps.Keys(palettes)) }

// nextThemeName steps through ThemeNames, wrapping at both ends. An unknown
// name starts from the first theme.
func nextThemeName(current string, step int) string {
	names := ThemeNames()
	i := max(slices.Index(names, current), 0)
	n := len(names)
	return names[((i+step)%n+n)%n]
}
