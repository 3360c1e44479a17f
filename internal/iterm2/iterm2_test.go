package iterm2

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vburojevic/towezterm/internal/scheme"
)

func colorEntry(key string, r, g, b string) string {
	return fmt.Sprintf(`	<key>%s</key>
	<dict>
		<key>Alpha Component</key>
		<real>1</real>
		<key>Blue Component</key>
		%s
		<key>Color Space</key>
		<string>sRGB</string>
		<key>Green Component</key>
		%s
		<key>Red Component</key>
		%s
	</dict>
`, key, b, g, r)
}

func realv(v string) string { return "<real>" + v + "</real>" }

func preset(entries ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
` + strings.Join(entries, "") + `</dict>
</plist>
`
}

func fullPreset() string {
	var entries []string
	for i := 0; i < 16; i++ {
		v := fmt.Sprintf("%g", (float64(i)+0.5)/255)
		entries = append(entries, colorEntry(paletteKey(i), realv(v), realv(v), realv(v)))
	}
	entries = append(entries,
		colorEntry("Foreground Color", realv("1"), realv("1"), realv("1")),
		colorEntry("Background Color", realv("0"), realv("0"), realv("0")),
		colorEntry("Cursor Color", realv("1"), realv("0"), realv("0")),
		colorEntry("Cursor Text Color", realv("0"), realv("1"), realv("0")),
		colorEntry("Selection Color", realv("0"), realv("0"), realv("1")),
		colorEntry("Selected Text Color", realv("0.5"), realv("0.5"), realv("0.5")),
	)
	return preset(entries...)
}

func parseString(t *testing.T, doc string) scheme.Theme {
	t.Helper()
	th, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return th
}

func TestParseFullPreset(t *testing.T) {
	th := parseString(t, fullPreset())

	want := map[scheme.Field]string{
		scheme.FieldForeground:  "#ffffff",
		scheme.FieldBackground:  "#000000",
		scheme.FieldCursorBg:    "#ff0000",
		scheme.FieldCursorFg:    "#00ff00",
		scheme.FieldSelectionBg: "#0000ff",
		scheme.FieldSelectionFg: "#7f7f7f",
	}
	for f, hex := range want {
		if got := th.Get(f); got != hex {
			t.Fatalf("%s: expected %q, got %q", f, hex, got)
		}
	}
	if len(th.Ansi) != 8 || len(th.Brights) != 8 {
		t.Fatalf("expected 8+8 palette, got %d+%d", len(th.Ansi), len(th.Brights))
	}
	if th.Ansi[0] != "#000000" || th.Brights[7] != "#0f0f0f" {
		t.Fatalf("unexpected palette: %v %v", th.Ansi, th.Brights)
	}
}

func TestParsePartialPalette(t *testing.T) {
	doc := preset(
		colorEntry("Ansi 0 Color", realv("0"), realv("0"), realv("0")),
		colorEntry("Ansi 1 Color", realv("1"), realv("0"), realv("0")),
		colorEntry("Ansi 2 Color", realv("0"), realv("1"), realv("0")),
		colorEntry("Ansi 3 Color", realv("1"), realv("1"), realv("0")),
	)
	th := parseString(t, doc)
	if len(th.Ansi) != 4 {
		t.Fatalf("expected 4 ansi colors, got %v", th.Ansi)
	}
	if th.Brights == nil || len(th.Brights) != 0 {
		t.Fatalf("expected empty non-nil brights, got %#v", th.Brights)
	}
	if th.Foreground != "" {
		t.Fatalf("expected no foreground, got %q", th.Foreground)
	}
}

func TestParseSkipsPaletteGaps(t *testing.T) {
	doc := preset(
		colorEntry("Ansi 0 Color", realv("0"), realv("0"), realv("0")),
		colorEntry("Ansi 5 Color", realv("1"), realv("0"), realv("1")),
	)
	th := parseString(t, doc)
	if len(th.Ansi) != 2 || th.Ansi[1] != "#ff00ff" {
		t.Fatalf("expected gaps skipped, got %v", th.Ansi)
	}
}

func TestParseIntegerAndMalformedComponents(t *testing.T) {
	doc := preset(
		colorEntry("Foreground Color", "<integer>1</integer>", "<integer>0</integer>", realv("1")),
		`	<key>Background Color</key>
	<string>not a color</string>
	<key>Cursor Color</key>
	<dict>
		<key>Red Component</key>
		<real>1</real>
	</dict>
`,
	)
	th := parseString(t, doc)
	if th.Foreground != "#ff00ff" {
		t.Fatalf("expected integer components accepted, got %q", th.Foreground)
	}
	if th.Background != "" || th.CursorBg != "" {
		t.Fatalf("expected malformed colors skipped, got %q %q", th.Background, th.CursorBg)
	}
}

func TestParseIncompletePaletteRecordDropsOnlyItsSlot(t *testing.T) {
	doc := preset(
		colorEntry("Ansi 0 Color", realv("1"), realv("0"), realv("0")),
		`	<key>Ansi 1 Color</key>
	<dict>
		<key>Red Component</key>
		<real>1</real>
	</dict>
`,
		colorEntry("Ansi 2 Color", realv("0"), realv("1"), realv("0")),
	)
	th := parseString(t, doc)
	if len(th.Ansi) != 2 || th.Ansi[0] != "#ff0000" || th.Ansi[1] != "#00ff00" {
		t.Fatalf("expected the two complete colors, got %v", th.Ansi)
	}
}

func TestParseRejectsNonDictionary(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<array><string>not a preset</string></array>
</plist>
`
	if _, err := Parse(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("Zenburn.itermcolors", preset(colorEntry("Background Color", realv("0.25"), realv("0.25"), realv("0.25"))))
	write("Argonaut.itermcolors", fullPreset())
	write("README.md", "not a preset")
	if err := os.Mkdir(filepath.Join(dir, "nested.itermcolors"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	themes, err := ParseDir(dir)
	if err != nil {
		t.Fatalf("ParseDir error: %v", err)
	}
	names := themes.Names()
	if len(names) != 2 || names[0] != "Argonaut" || names[1] != "Zenburn" {
		t.Fatalf("unexpected names: %v", names)
	}
	z, _ := themes.Get("Zenburn")
	if z.Background != "#3f3f3f" {
		t.Fatalf("expected #3f3f3f, got %q", z.Background)
	}
}

func TestParseDirMissing(t *testing.T) {
	themes, err := ParseDir(filepath.Join(t.TempDir(), "schemes"))
	if err != nil {
		t.Fatalf("ParseDir error: %v", err)
	}
	if themes.Len() != 0 {
		t.Fatalf("expected empty collection, got %d", themes.Len())
	}
}

func TestThemeName(t *testing.T) {
	if got := ThemeName("/x/Builtin Solarized Dark.itermcolors"); got != "Builtin Solarized Dark" {
		t.Fatalf("unexpected name %q", got)
	}
}
