package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vburojevic/towezterm/internal/app/tui/state"
	"github.com/vburojevic/towezterm/internal/scheme"
)

func entries(names ...string) []state.Entry {
	out := make([]state.Entry, 0, len(names))
	for _, n := range names {
		th := scheme.NewTheme()
		th.Background = "#101010"
		out = append(out, state.Entry{Name: n, Theme: th})
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, names ...string) *Model {
	t.Helper()
	m := New(Config{File: "color-schemes.json"}, func() ([]state.Entry, error) {
		return entries(names...), nil
	})
	msg := m.Init()()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(msg)
	return m
}

func TestInitLoadsEntries(t *testing.T) {
	m := loaded(t, "Argonaut", "Dracula", "Zenburn")
	if len(m.filtered) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(m.filtered))
	}
	if m.loading {
		t.Fatalf("expected loading cleared")
	}
	if got := m.selected(); got == nil || got.Name != "Argonaut" {
		t.Fatalf("expected first entry selected, got %+v", got)
	}
}

func TestCursorMovementClamps(t *testing.T) {
	m := loaded(t, "A", "B", "C")

	m.Update(runes("j"))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(runes("j"))
	if m.cursor != 2 {
		t.Fatalf("expected cursor clamped at 2, got %d", m.cursor)
	}
	m.Update(runes("g"))
	if m.cursor != 0 {
		t.Fatalf("expected cursor at top, got %d", m.cursor)
	}
	m.Update(runes("k"))
	if m.cursor != 0 {
		t.Fatalf("expected cursor to stay at 0, got %d", m.cursor)
	}
	m.Update(runes("G"))
	if m.cursor != 2 {
		t.Fatalf("expected cursor at bottom, got %d", m.cursor)
	}
}

func TestFilterTypingAndClear(t *testing.T) {
	m := loaded(t, "Solarized Dark", "Dracula", "Solarized Light")

	m.Update(runes("/"))
	if !m.filterActive {
		t.Fatalf("expected filter mode")
	}
	for _, r := range "light" {
		m.Update(runes(string(r)))
	}
	if len(m.filtered) != 1 || m.filtered[0].Name != "Solarized Light" {
		t.Fatalf("unexpected filtered entries: %+v", m.filtered)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterActive || m.filterQuery != "light" {
		t.Fatalf("expected applied filter, got active=%v query=%q", m.filterActive, m.filterQuery)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.filterQuery != "" || len(m.filtered) != 3 {
		t.Fatalf("expected filter cleared, got %q with %d entries", m.filterQuery, len(m.filtered))
	}
	if got := m.selected(); got == nil || got.Name != "Solarized Light" {
		t.Fatalf("expected selection kept, got %+v", got)
	}
}

func TestQuitAndHelp(t *testing.T) {
	m := loaded(t, "A")

	m.Update(runes("?"))
	if !m.showHelp {
		t.Fatalf("expected help shown")
	}
	if _, cmd := m.Update(runes("q")); cmd != nil {
		t.Fatalf("expected first key to only close help")
	}
	if m.showHelp {
		t.Fatalf("expected help dismissed")
	}
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestLoadErrorIsShown(t *testing.T) {
	m := New(Config{File: "missing.json"}, func() ([]state.Entry, error) {
		return nil, errors.New("open missing.json: no such file or directory")
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m.Update(m.Init()())
	if m.err == nil {
		t.Fatalf("expected load error")
	}
	if !strings.Contains(m.View(), "no such file") {
		t.Fatalf("expected error in view")
	}
}

func TestViewBeforeResize(t *testing.T) {
	m := New(Config{}, nil)
	if got := m.View(); got != "Loading..." {
		t.Fatalf("unexpected view %q", got)
	}
}
