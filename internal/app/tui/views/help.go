package views

import (
	"strings"

	"github.com/vburojevic/towezterm/internal/app/tui/theme"
)

// RenderHelpOverlay renders the help overlay modal
func RenderHelpOverlay(styles theme.Styles) string {
	lines := []string{
		styles.HelpTitle.Render("Keyboard Shortcuts"),
		"",
	}

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"j / ↓", "Move down"},
		{"k / ↑", "Move up"},
		{"g / G", "First / last scheme"},
		{"pgup/pgdn", "Page up / down"},
		{"/", "Filter schemes"},
		{"esc", "Clear filter"},
		{"", ""},
		{"r", "Reload file"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	for _, s := range shortcuts {
		if s.key == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, styles.HelpKey.Render(s.key)+styles.HelpDesc.Render(s.desc))
	}

	lines = append(lines, "")
	lines = append(lines, styles.Muted.Render("Press any key to close"))

	return styles.HelpOverlay.Render(strings.Join(lines, "\n"))
}
