package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	textDark  = "#000000"
	textLight = "#ffffff"
)

// ContrastText picks black or white text for a background color by its
// CIE L* lightness. Unparseable colors get white text.
func ContrastText(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return textLight
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return textDark
	}
	return textLight
}

// Swatch renders label on a hex background.
func Swatch(hex, label string) string {
	if hex == "" {
		return label
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(ContrastText(hex))).
		Render(label)
}

// Strip renders one block of width cells per color.
func Strip(colors []string, width int) string {
	var b strings.Builder
	cell := strings.Repeat(" ", width)
	for _, hex := range colors {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(cell))
	}
	return b.String()
}

// Sample renders text the way a scheme would show it: fg on bg.
func Sample(fg, bg, text string) string {
	s := lipgloss.NewStyle()
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	return s.Render(text)
}
