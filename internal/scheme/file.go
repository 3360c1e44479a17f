package scheme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Indent is the indentation used for generated scheme files.
const Indent = "    "

// Encode writes the collection as indented JSON.
func Encode(c *Collection) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile writes the collection to path. The document goes to a sibling
// temp file first and is renamed into place, so a reader never sees a
// partially written file.
func WriteFile(path string, c *Collection) error {
	b, err := Encode(c)
	if err != nil {
		return fmt.Errorf("encode themes: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// ReadFile loads a previously generated scheme file, preserving its order.
func ReadFile(path string) (*Collection, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := NewCollection()
	if err := json.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}
