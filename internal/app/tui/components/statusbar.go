package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vburojevic/towezterm/internal/app/tui/theme"
)

// RenderFooter renders the key help on the left and an optional status
// message (e.g. a reload error) on the right.
func RenderFooter(help, status string, styles theme.Styles, width int) string {
	if status == "" {
		return styles.Footer.Width(width).Render(help)
	}

	gap := width - lipgloss.Width(help) - lipgloss.Width(status) - 4
	if gap < 1 {
		return styles.Footer.Width(width).Render(status)
	}

	spacer := lipgloss.NewStyle().Width(gap).Render("")
	row := lipgloss.JoinHorizontal(lipgloss.Center, help, spacer, status)
	return styles.Footer.Width(width).Render(row)
}
