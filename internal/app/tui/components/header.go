package components

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/vburojevic/towezterm/internal/app/tui/theme"
)

// HeaderConfig holds header configuration
type HeaderConfig struct {
	File  string
	Shown int
	Total int
}

// RenderHeader renders the title on the left and the file and counts on the right
func RenderHeader(styles theme.Styles, cfg HeaderConfig, width int) string {
	title := styles.Title.Render("◆ towezterm")

	count := fmt.Sprintf("%d schemes", cfg.Total)
	if cfg.Shown != cfg.Total {
		count = fmt.Sprintf("%d of %d schemes", cfg.Shown, cfg.Total)
	}
	meta := styles.Muted.Render(fmt.Sprintf("%s • %s", filepath.Base(cfg.File), count))

	gap := width - lipgloss.Width(title) - lipgloss.Width(meta) - 2
	if gap < 1 {
		// Narrow mode - stack vertically
		return styles.Header.Render(lipgloss.JoinVertical(lipgloss.Left, title, meta))
	}

	spacer := lipgloss.NewStyle().Width(gap).Render("")
	return styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Center, title, spacer, meta))
}
