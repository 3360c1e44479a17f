package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the TUI
type Styles struct {
	// Text styles
	Text  lipgloss.Style
	Muted lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style // Field names in the detail pane
	Value lipgloss.Style

	// Layout styles
	Header  lipgloss.Style
	Footer  lipgloss.Style
	List    lipgloss.Style
	Detail  lipgloss.Style
	Divider lipgloss.Style

	// Selection
	Selected lipgloss.Style // Arrow indicator
	Row      lipgloss.Style

	// Filter
	FilterPrompt lipgloss.Style
	FilterText   lipgloss.Style

	// Help overlay
	HelpOverlay lipgloss.Style
	HelpTitle   lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style

	ErrorText lipgloss.Style
}

// NewStyles creates styles from the theme
func NewStyles(t Theme) Styles {
	s := Styles{}

	s.Text = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.Muted)
	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Label = lipgloss.NewStyle().Foreground(t.Muted).Width(14)
	s.Value = lipgloss.NewStyle().Foreground(t.Text)

	s.Header = lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	s.Footer = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	s.List = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	s.Detail = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	s.Divider = lipgloss.NewStyle().
		Foreground(t.Faint)

	s.Selected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	s.Row = lipgloss.NewStyle().
		Foreground(t.Text)

	s.FilterPrompt = lipgloss.NewStyle().
		Foreground(t.Muted)

	s.FilterText = lipgloss.NewStyle().
		Foreground(t.Text)

	s.HelpOverlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Background(t.Surface)

	s.HelpTitle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		MarginBottom(1)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent).
		Width(12)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	s.ErrorText = lipgloss.NewStyle().Foreground(t.Error)

	return s
}

// DefaultStyles returns styles using the default theme
func DefaultStyles() Styles {
	return NewStyles(Mocha)
}
