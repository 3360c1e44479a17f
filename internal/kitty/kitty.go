// Package kitty converts kitty theme .conf files into WezTerm color schemes.
package kitty

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/vburojevic/towezterm/internal/scheme"
)

// Ext is the file extension of kitty themes.
const Ext = ".conf"

type fieldRule struct {
	field scheme.Field
	re    *regexp.Regexp
}

var (
	fieldRules = []fieldRule{
		{scheme.FieldForeground, keyPattern("foreground")},
		{scheme.FieldBackground, keyPattern("background")},
		{scheme.FieldCursorFg, keyPattern("cursor_text_color")},
		{scheme.FieldCursorBg, keyPattern("cursor")},
		{scheme.FieldSelectionFg, keyPattern("selection_foreground")},
		{scheme.FieldSelectionBg, keyPattern("selection_background")},
	}
	palettePatterns = buildPalettePatterns()
)

// keyPattern matches "<key> #<hex>" where key is the first token on its line.
// Anchoring keeps "foreground" from matching inside "selection_foreground".
func keyPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]+(#[0-9a-fA-F]+)\b`)
}

func buildPalettePatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 2*scheme.PaletteSize)
	for i := range out {
		out[i] = keyPattern(fmt.Sprintf("color%d", i))
	}
	return out
}

// ParseDir converts every *.conf file directly inside dir, in sorted path
// order. Theme names come from Title. A missing directory yields an empty
// collection.
func ParseDir(dir string) (*scheme.Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return scheme.NewCollection(), nil
		}
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	themes := scheme.NewCollection()
	for _, p := range paths {
		t, err := ParseFile(p)
		if err != nil {
			return nil, err
		}
		themes.Set(Title(stem(p)), t)
	}
	return themes, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFile reads and converts a single theme file.
func ParseFile(path string) (scheme.Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return scheme.Theme{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(string(b)), nil
}

// Parse extracts colors from theme file contents. The first matching line
// for each key wins. Keys without a well-formed hex value are left unset.
// A leading byte-order mark is ignored.
func Parse(contents string) scheme.Theme {
	contents = strings.TrimPrefix(contents, "\ufeff")
	t := scheme.NewTheme()

	for _, r := range fieldRules {
		if hex, ok := find(r.re, contents); ok {
			t.Set(r.field, hex)
		}
	}

	for i, re := range palettePatterns {
		hex, ok := find(re, contents)
		if !ok {
			continue
		}
		if i < scheme.PaletteSize {
			t.Ansi = append(t.Ansi, hex)
		} else {
			t.Brights = append(t.Brights, hex)
		}
	}

	return t
}

func find(re *regexp.Regexp, contents string) (string, bool) {
	m := re.FindStringSubmatch(contents)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}
