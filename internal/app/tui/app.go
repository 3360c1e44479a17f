// Package tui implements the interactive browser for generated WezTerm
// color scheme files.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vburojevic/towezterm/internal/app/tui/components"
	"github.com/vburojevic/towezterm/internal/app/tui/state"
	"github.com/vburojevic/towezterm/internal/app/tui/theme"
	"github.com/vburojevic/towezterm/internal/app/tui/views"
	"github.com/vburojevic/towezterm/internal/app/tui/widgets"
)

// Loader reads the schemes to browse. It is called on start and on reload.
type Loader func() ([]state.Entry, error)

// Run starts the TUI with the given config and loader
func Run(cfg Config, load Loader) error {
	m := New(cfg, load)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Config holds the TUI configuration
type Config struct {
	File      string
	ThemeName string
}

// Model is the browser model: a filterable scheme list beside a detail pane
type Model struct {
	cfg  Config
	load Loader
	keys KeyMap
	help help.Model

	// Layout
	width  int
	height int

	// State
	entries  []state.Entry
	filtered []state.Entry
	cursor   int
	offset   int

	// Filter
	filter       textinput.Model
	filterActive bool
	filterQuery  string

	showHelp bool
	loading  bool
	err      error

	styles theme.Styles
}

// New creates a new TUI model
func New(cfg Config, load Loader) *Model {
	f := textinput.New()
	f.Placeholder = "name or #hex..."
	f.Prompt = ""
	f.CharLimit = 128
	f.Width = 40

	return &Model{
		cfg:    cfg,
		load:   load,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		filter: f,
		styles: theme.NewStyles(theme.ThemeByName(cfg.ThemeName)),
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.filter.Width = widgets.MinInt(60, widgets.MaxInt(20, m.width-20))
		m.help.Width = m.width
		m.scrollToCursor()

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.entries = msg.Entries
			m.applyFilter()
		}

	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Help view - dismiss on any key
	if m.showHelp {
		m.showHelp = false
		return nil
	}

	if m.filterActive {
		return m.handleFilterKeys(msg)
	}

	return m.handleNormalKeys(msg)
}

// handleFilterKeys handles keys when filter is active
func (m *Model) handleFilterKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.filterActive = false
		m.filter.Blur()
		m.filterQuery = ""
		m.filter.SetValue("")
		m.applyFilter()
		return nil
	case "enter":
		m.filterActive = false
		m.filter.Blur()
		m.filterQuery = m.filter.Value()
		m.applyFilter()
		return nil
	default:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.filterQuery = m.filter.Value()
		m.applyFilter()
		return cmd
	}
}

// handleNormalKeys handles keys in normal mode
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.listHeight())
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.listHeight())
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.filtered))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.filtered))
	case key.Matches(msg, m.keys.Filter):
		m.filterActive = true
		m.filter.SetValue(m.filterQuery)
		return m.filter.Focus()
	case key.Matches(msg, m.keys.ClearFilter):
		if m.filterQuery != "" {
			m.filterQuery = ""
			m.filter.SetValue("")
			m.applyFilter()
		}
	case key.Matches(msg, m.keys.Reload):
		return m.loadCmd()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(components.RenderHeader(m.styles, components.HeaderConfig{
		File:  m.cfg.File,
		Shown: len(m.filtered),
		Total: len(m.entries),
	}, m.width))
	b.WriteString("\n")

	b.WriteString(components.RenderFilterBar(m.filter.View(), m.filterQuery, m.filterActive, m.styles))
	b.WriteString("\n")

	// Main content: split view (list | detail)
	listWidth := widgets.ClampInt(m.width/3, 24, 48)
	detailWidth := widgets.MaxInt(10, m.width-listWidth-5)
	panelHeight := m.listHeight()

	listPanel := m.styles.List.Width(listWidth).Height(panelHeight).Render(m.renderList(listWidth, panelHeight))
	detailPanel := m.styles.Detail.Width(detailWidth).Height(panelHeight).
		Render(components.RenderDetail(m.selected(), m.styles, detailWidth-2))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listPanel, " ", detailPanel))
	b.WriteString("\n")

	status := ""
	if m.err != nil {
		status = m.styles.ErrorText.Render(m.err.Error())
	} else if m.loading {
		status = m.styles.Muted.Render("↻")
	}
	b.WriteString(components.RenderFooter(m.help.View(m.keys), status, m.styles, m.width))

	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, views.RenderHelpOverlay(m.styles))
	}

	return b.String()
}

// renderList renders the visible window of scheme names
func (m *Model) renderList(width, height int) string {
	if len(m.filtered) == 0 {
		if len(m.entries) == 0 {
			return components.RenderEmptyState(m.styles)
		}
		return components.RenderFilteredEmpty(m.filterQuery, m.styles)
	}

	end := widgets.MinInt(len(m.filtered), m.offset+height)
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(m.filtered[i], i == m.cursor, width-2))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one scheme name with a background chip
func (m *Model) renderRow(e state.Entry, selected bool, width int) string {
	indicator := "  "
	if selected {
		indicator = m.styles.Selected.Render("▶ ")
	}
	chip := widgets.Swatch(e.Theme.Background, "  ")
	name := widgets.TruncateString(e.Name, widgets.MaxInt(1, width-5))
	if selected {
		return indicator + chip + " " + m.styles.Selected.Render(name)
	}
	return indicator + chip + " " + m.styles.Row.Render(name)
}

func (m *Model) loadCmd() tea.Cmd {
	if m.load == nil {
		return nil
	}
	m.loading = true
	load := m.load
	return func() tea.Msg {
		entries, err := load()
		return LoadedMsg{Entries: entries, Err: err}
	}
}

// listHeight is the number of rows the list panel shows
func (m *Model) listHeight() int {
	return widgets.MaxInt(1, m.height-6)
}

func (m *Model) selected() *state.Entry {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	return &m.filtered[m.cursor]
}

func (m *Model) moveCursor(delta int) {
	m.cursor = widgets.ClampInt(m.cursor+delta, 0, widgets.MaxInt(0, len(m.filtered)-1))
	m.scrollToCursor()
}

// scrollToCursor keeps the cursor inside the visible window
func (m *Model) scrollToCursor() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = widgets.ClampInt(m.offset, 0, widgets.MaxInt(0, len(m.filtered)-1))
}

func (m *Model) applyFilter() {
	var name string
	if s := m.selected(); s != nil {
		name = s.Name
	}

	m.filtered = state.Filter(m.entries, m.filterQuery)

	// Keep the selection on the same scheme when it survives the filter
	m.cursor = 0
	for i, e := range m.filtered {
		if e.Name == name {
			m.cursor = i
			break
		}
	}
	m.offset = 0
	m.scrollToCursor()
}
