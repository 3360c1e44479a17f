package components

import (
	"fmt"
	"strings"

	"github.com/vburojevic/towezterm/internal/app/tui/state"
	"github.com/vburojevic/towezterm/internal/app/tui/theme"
	"github.com/vburojevic/towezterm/internal/app/tui/widgets"
	"github.com/vburojevic/towezterm/internal/scheme"
)

// RenderDetail renders the selected scheme: a text sample, the named colors
// and both palette rows.
func RenderDetail(e *state.Entry, styles theme.Styles, width int) string {
	if e == nil {
		return RenderEmptyDetail(styles)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(widgets.TruncateString(e.Name, widgets.MaxInt(1, width))))
	b.WriteString("\n\n")

	sample := widgets.PadRight(" The quick brown fox jumps over the lazy dog", widgets.MaxInt(1, width))
	b.WriteString(widgets.Sample(e.Theme.Foreground, e.Theme.Background, sample))
	b.WriteString("\n")
	if e.Theme.SelectionBg != "" || e.Theme.SelectionFg != "" {
		b.WriteString(widgets.Sample(e.Theme.SelectionFg, e.Theme.SelectionBg, " selected text "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, f := range scheme.Fields {
		hex := e.Theme.Get(f)
		if hex == "" {
			b.WriteString(renderRow(string(f), styles.Muted.Render("unset"), styles))
			continue
		}
		b.WriteString(renderRow(string(f), widgets.Swatch(hex, " "+hex+" "), styles))
	}
	b.WriteString("\n")

	b.WriteString(renderPalette("ansi", e.Theme.Ansi, styles))
	b.WriteString(renderPalette("brights", e.Theme.Brights, styles))

	return b.String()
}

func renderPalette(label string, colors []string, styles theme.Styles) string {
	if len(colors) == 0 {
		return renderRow(label, styles.Muted.Render("none"), styles)
	}
	value := widgets.Strip(colors, 3)
	if len(colors) < scheme.PaletteSize {
		value += styles.Muted.Render(fmt.Sprintf(" %d of %d", len(colors), scheme.PaletteSize))
	}
	return renderRow(label, value, styles)
}

// RenderEmptyDetail renders the detail pane when nothing is selected
func RenderEmptyDetail(styles theme.Styles) string {
	return styles.Muted.Render("No scheme selected")
}

// RenderEmptyState renders the list when the file holds no schemes
func RenderEmptyState(styles theme.Styles) string {
	lines := []string{
		styles.Muted.Render("No color schemes in this file."),
		"",
		styles.Muted.Render("Generate one with towezterm --all"),
	}
	return strings.Join(lines, "\n")
}

// RenderFilteredEmpty renders the list when the filter hides everything
func RenderFilteredEmpty(query string, styles theme.Styles) string {
	lines := []string{
		styles.Muted.Render("No schemes match the filter"),
		fmt.Sprintf("Filter: %s", query),
		"",
		styles.Muted.Render("Press Esc to clear filter"),
	}
	return strings.Join(lines, "\n")
}

// renderRow renders a single key-value row
func renderRow(key, value string, styles theme.Styles) string {
	return styles.Label.Render(key) + value + "\n"
}
