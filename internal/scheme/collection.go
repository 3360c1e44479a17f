package scheme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Collection maps theme names to themes and remembers insertion order.
// Setting a name that already exists replaces the theme in place: the last
// write wins and the name keeps its first position.
type Collection struct {
	names  []string
	themes map[string]Theme
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{themes: make(map[string]Theme)}
}

// Set stores t under name.
func (c *Collection) Set(name string, t Theme) {
	if c.themes == nil {
		c.themes = make(map[string]Theme)
	}
	if _, ok := c.themes[name]; !ok {
		c.names = append(c.names, name)
	}
	c.themes[name] = t
}

// Get returns the theme stored under name.
func (c *Collection) Get(name string) (Theme, bool) {
	t, ok := c.themes[name]
	return t, ok
}

// Len is the number of distinct theme names.
func (c *Collection) Len() int {
	return len(c.names)
}

// Names returns the theme names in insertion order.
func (c *Collection) Names() []string {
	return append([]string(nil), c.names...)
}

// Each calls fn for every theme in insertion order.
func (c *Collection) Each(fn func(name string, t Theme)) {
	for _, name := range c.names {
		fn(name, c.themes[name])
	}
}

// Merge copies every theme from other into c, in other's order.
func (c *Collection) Merge(other *Collection) {
	if other == nil {
		return
	}
	other.Each(c.Set)
}

// MarshalJSON encodes the collection as an object whose keys follow
// insertion order. HTML characters in names are left unescaped.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(name); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends '\n'
		buf.WriteByte(':')
		if err := enc.Encode(c.themes[name]); err != nil {
			return nil, fmt.Errorf("encode theme %q: %w", name, err)
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of themes, keeping the key order of the
// document.
func (c *Collection) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected a JSON object of themes")
	}

	fresh := NewCollection()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected theme name, got %v", tok)
		}
		t := NewTheme()
		if err := dec.Decode(&t); err != nil {
			return fmt.Errorf("decode theme %q: %w", name, err)
		}
		if t.Ansi == nil {
			t.Ansi = []string{}
		}
		if t.Brights == nil {
			t.Brights = []string{}
		}
		fresh.Set(name, t)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = *fresh
	return nil
}
