// Package iterm2 converts iTerm2 .itermcolors property lists into WezTerm
// color schemes.
package iterm2

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"howett.net/plist"

	"github.com/vburojevic/towezterm/internal/scheme"
)

// Ext is the file extension of iTerm2 color presets.
const Ext = ".itermcolors"

const (
	keyRed   = "Red Component"
	keyGreen = "Green Component"
	keyBlue  = "Blue Component"
)

var namedColors = []struct {
	field scheme.Field
	key   string
}{
	{scheme.FieldForeground, "Foreground Color"},
	{scheme.FieldBackground, "Background Color"},
	{scheme.FieldCursorBg, "Cursor Color"},
	{scheme.FieldCursorFg, "Cursor Text Color"},
	{scheme.FieldSelectionBg, "Selection Color"},
	{scheme.FieldSelectionFg, "Selected Text Color"},
}

func paletteKey(i int) string {
	return fmt.Sprintf("Ansi %d Color", i)
}

// ParseDir converts every *.itermcolors file directly inside dir, in sorted
// path order. A missing directory yields an empty collection.
func ParseDir(dir string) (*scheme.Collection, error) {
	paths, err := listFiles(dir)
	if err != nil {
		return nil, err
	}

	themes := scheme.NewCollection()
	for _, p := range paths {
		t, err := ParseFile(p)
		if err != nil {
			return nil, err
		}
		themes.Set(ThemeName(p), t)
	}
	return themes, nil
}

func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// ThemeName is the file's base name without its extension.
func ThemeName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFile converts a single .itermcolors file.
func ParseFile(path string) (scheme.Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return scheme.Theme{}, err
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return scheme.Theme{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes an XML or binary property list and converts it.
func Parse(r io.ReadSeeker) (scheme.Theme, error) {
	var doc map[string]any
	if err := plist.NewDecoder(r).Decode(&doc); err != nil {
		return scheme.Theme{}, err
	}
	return Convert(doc), nil
}

// Convert maps a decoded preset onto a Theme. Keys that are missing or do
// not hold a usable color record are left out; palette gaps are skipped, so
// Ansi and Brights may hold fewer than eight colors. A palette record that
// lacks a component drops only its own slot, not the rest of the palette.
func Convert(doc map[string]any) scheme.Theme {
	t := scheme.NewTheme()

	for _, nc := range namedColors {
		if hex, ok := colorHex(doc, nc.key); ok {
			t.Set(nc.field, hex)
		}
	}

	for i := 0; i < scheme.PaletteSize; i++ {
		if hex, ok := colorHex(doc, paletteKey(i)); ok {
			t.Ansi = append(t.Ansi, hex)
		}
	}
	for i := scheme.PaletteSize; i < 2*scheme.PaletteSize; i++ {
		if hex, ok := colorHex(doc, paletteKey(i)); ok {
			t.Brights = append(t.Brights, hex)
		}
	}

	return t
}

func colorHex(doc map[string]any, key string) (string, bool) {
	rec, ok := doc[key].(map[string]any)
	if !ok {
		return "", false
	}
	r, okR := component(rec, keyRed)
	g, okG := component(rec, keyGreen)
	b, okB := component(rec, keyBlue)
	if !okR || !okG || !okB {
		return "", false
	}
	return scheme.ComponentsToHex(r, g, b), true
}

func component(rec map[string]any, key string) (float64, bool) {
	switch v := rec[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}
