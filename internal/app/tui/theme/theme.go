package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the browser chrome. The previewed schemes
// bring their own colors.
type Theme struct {
	Name string

	Base    lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color

	Text  lipgloss.Color
	Muted lipgloss.Color
	Faint lipgloss.Color

	Accent lipgloss.Color
	Error  lipgloss.Color
}

// Mocha is the default dark theme (Catppuccin Mocha)
var Mocha = Theme{
	Name:    "mocha",
	Base:    "#1e1e2e",
	Surface: "#313244",
	Border:  "#45475a",
	Text:    "#cdd6f4",
	Muted:   "#6c7086",
	Faint:   "#585b70",
	Accent:  "#fab387", // Peach
	Error:   "#f38ba8", // Red
}

// Latte is the light theme (Catppuccin Latte)
var Latte = Theme{
	Name:    "latte",
	Base:    "#eff1f5",
	Surface: "#ccd0da",
	Border:  "#bcc0cc",
	Text:    "#4c4f69",
	Muted:   "#9ca0b0",
	Faint:   "#acb0be",
	Accent:  "#fe640b", // Peach
	Error:   "#d20f39", // Red
}

// Themes is the list of available themes
var Themes = []Theme{Mocha, Latte}

// ThemeByName returns a theme by name, defaulting to Mocha
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Mocha
}
