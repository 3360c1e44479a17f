// Package scheme holds the WezTerm color scheme model shared by every source
// parser: a Theme, an insertion-ordered Collection of themes, and the JSON
// file writer/reader for a collection.
package scheme

import "encoding/json"

// Field names a single-color attribute of a Theme, spelled as it appears in
// the generated JSON.
type Field string

const (
	FieldForeground  Field = "foreground"
	FieldBackground  Field = "background"
	FieldCursorBg    Field = "cursor_bg"
	FieldCursorFg    Field = "cursor_fg"
	FieldSelectionBg Field = "selection_bg"
	FieldSelectionFg Field = "selection_fg"
)

// Fields lists the single-color attributes in output order.
var Fields = []Field{
	FieldForeground,
	FieldBackground,
	FieldCursorBg,
	FieldCursorFg,
	FieldSelectionBg,
	FieldSelectionFg,
}

// PaletteSize is the number of slots in each of the ansi and brights halves
// of the 16-color palette.
const PaletteSize = 8

// Theme is one named WezTerm color scheme. Empty string fields are absent
// from the source and are omitted from JSON. Ansi and Brights only hold the
// palette slots that were present, in index order.
type Theme struct {
	Foreground  string   `json:"foreground,omitempty"`
	Background  string   `json:"background,omitempty"`
	CursorBg    string   `json:"cursor_bg,omitempty"`
	CursorFg    string   `json:"cursor_fg,omitempty"`
	SelectionBg string   `json:"selection_bg,omitempty"`
	SelectionFg string   `json:"selection_fg,omitempty"`
	Ansi        []string `json:"ansi"`
	Brights     []string `json:"brights"`
}

// NewTheme returns a Theme with empty (non-nil) palettes.
func NewTheme() Theme {
	return Theme{
		Ansi:    []string{},
		Brights: []string{},
	}
}

// Set assigns a single-color field. Unknown fields are ignored.
func (t *Theme) Set(f Field, hex string) {
	switch f {
	case FieldForeground:
		t.Foreground = hex
	case FieldBackground:
		t.Background = hex
	case FieldCursorBg:
		t.CursorBg = hex
	case FieldCursorFg:
		t.CursorFg = hex
	case FieldSelectionBg:
		t.SelectionBg = hex
	case FieldSelectionFg:
		t.SelectionFg = hex
	}
}

// Get returns a single-color field, or "" when unset.
func (t Theme) Get(f Field) string {
	switch f {
	case FieldForeground:
		return t.Foreground
	case FieldBackground:
		return t.Background
	case FieldCursorBg:
		return t.CursorBg
	case FieldCursorFg:
		return t.CursorFg
	case FieldSelectionBg:
		return t.SelectionBg
	case FieldSelectionFg:
		return t.SelectionFg
	}
	return ""
}

// PaletteLen is the total number of palette colors present.
func (t Theme) PaletteLen() int {
	return len(t.Ansi) + len(t.Brights)
}

// MarshalJSON always emits ansi and brights as arrays, never null.
func (t Theme) MarshalJSON() ([]byte, error) {
	type plain Theme
	p := plain(t)
	if p.Ansi == nil {
		p.Ansi = []string{}
	}
	if p.Brights == nil {
		p.Brights = []string{}
	}
	return json.Marshal(p)
}
