package vscode

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ColorEntry is one workbench color.
type ColorEntry struct {
	Key   string
	Value string
}

// ColorMap is a workbench color mapping that keeps insertion order, so the
// emitted JSON object lists keys in table order.
type ColorMap struct {
	entries []ColorEntry
	index   map[string]int
}

// Set adds key or replaces its value in place.
func (m *ColorMap) Set(key, value string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, ColorEntry{Key: key, Value: value})
}

func (m ColorMap) Get(key string) (string, bool) {
	i, ok := m.index[key]
	if !ok {
		return "", false
	}
	return m.entries[i].Value, true
}

// Value returns the color for key or "" when absent.
func (m ColorMap) Value(key string) string {
	v, _ := m.Get(key)
	return v
}

func (m ColorMap) Len() int { return len(m.entries) }

func (m ColorMap) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

func (m ColorMap) Entries() []ColorEntry {
	out := make([]ColorEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m ColorMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *ColorMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("colors: expected object, got %v", tok)
	}

	*m = ColorMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("colors: expected key, got %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("colors: %s: %w", key, err)
		}
		m.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
