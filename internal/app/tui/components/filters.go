package components

import (
	"github.com/vburojevic/towezterm/internal/app/tui/theme"
)

// RenderFilterBar renders the "/ " prompt followed by the live input while
// editing, or the applied query otherwise.
func RenderFilterBar(input string, query string, active bool, styles theme.Styles) string {
	prompt := styles.FilterPrompt.Render("/ ")
	if active {
		return prompt + input
	}
	if query == "" {
		return prompt + styles.Muted.Render("filter by name, or #hex for a color")
	}
	return prompt + styles.FilterText.Render(query)
}
