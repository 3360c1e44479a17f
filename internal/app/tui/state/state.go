// Package state holds the data the preview browser displays.
package state

import "github.com/vburojevic/towezterm/internal/scheme"

// Entry is one named theme from a generated file.
type Entry struct {
	Name  string
	Theme scheme.Theme
}

// Entries flattens a collection into display order.
func Entries(c *scheme.Collection) []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, c.Len())
	c.Each(func(name string, t scheme.Theme) {
		out = append(out, Entry{Name: name, Theme: t})
	})
	return out
}

// Colors returns the palette followed by the named colors that are set.
func (e Entry) Colors() []string {
	var out []string
	out = append(out, e.Theme.Ansi...)
	out = append(out, e.Theme.Brights...)
	for _, f := range scheme.Fields {
		if hex := e.Theme.Get(f); hex != "" {
			out = append(out, hex)
		}
	}
	return out
}
