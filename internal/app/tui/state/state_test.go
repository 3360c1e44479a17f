package state

import (
	"testing"

	"github.com/vburojevic/towezterm/internal/scheme"
)

func sampleEntries() []Entry {
	c := scheme.NewCollection()
	dracula := scheme.NewTheme()
	dracula.Background = "#282a36"
	dracula.Ansi = []string{"#21222c", "#ff5555"}
	c.Set("Dracula", dracula)

	sol := scheme.NewTheme()
	sol.Background = "#002b36"
	c.Set("Solarized Dark", sol)
	c.Set("Solarized Light", scheme.NewTheme())
	return Entries(c)
}

func TestEntriesKeepOrder(t *testing.T) {
	entries := sampleEntries()
	if len(entries) != 3 || entries[0].Name != "Dracula" || entries[2].Name != "Solarized Light" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if Entries(nil) != nil {
		t.Fatalf("expected nil for nil collection")
	}
}

func TestFilter(t *testing.T) {
	entries := sampleEntries()

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"Dracula", "Solarized Dark", "Solarized Light"}},
		{query: "SOLAR", want: []string{"Solarized Dark", "Solarized Light"}},
		{query: "solar dark", want: []string{"Solarized Dark"}},
		{query: "#ff55", want: []string{"Dracula"}},
		{query: "#002b", want: []string{"Solarized Dark"}},
		{query: "nord", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Filter(entries, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %+v", tt.want, got)
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Fatalf("expected %q at %d, got %q", name, i, got[i].Name)
				}
			}
		})
	}
}

func TestColorsIncludesNamedFields(t *testing.T) {
	e := sampleEntries()[0]
	colors := e.Colors()
	if len(colors) != 3 || colors[2] != "#282a36" {
		t.Fatalf("unexpected colors: %v", colors)
	}
}
