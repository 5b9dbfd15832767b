package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Project represents a portfolio project
type Project struct {
	ID          ProjectID `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Tech        TechTable `json:"tech,omitempty"`
	Description string    `json:"description,omitempty"`
}

// CoverBase returns the first image path (no index, no extension), or "".
func (p *Project) CoverBase() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// ProjectID is an opaque identifier that may be written as a JSON string or number.
// It is always compared in its string form.
type ProjectID string

// String returns the identifier as text
func (id ProjectID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both "abc" and 42
func (id *ProjectID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProjectID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("project id must be a string or number: %w", err)
	}
	*id = ProjectID(n.String())
	return nil
}

// TechPlaceholder is shown instead of an empty technology table
const TechPlaceholder = "No technical description available."

// TechEntry is one label/value row of a project's technology table
type TechEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TechTable is an ordered label -> value mapping.
// Rows keep the order in which they appear in the JSON object.
type TechTable []TechEntry

// Get returns the value stored for label
func (t TechTable) Get(label string) (string, bool) {
	for _, e := range t {
		if e.Label == label {
			return e.Value, true
		}
	}
	return "", false
}

// UnmarshalJSON decodes a JSON object token by token so document order survives.
// Non-string values are kept in their JSON text form.
func (t *TechTable) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("tech must be a JSON object")
	}

	table := TechTable{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("tech %q: %w", key, err)
		}

		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			s = strings.TrimSpace(string(raw))
		}
		table = append(table, TechEntry{Label: key, Value: s})
	}

	*t = table
	return nil
}

// MarshalJSON writes the table back as a JSON object, preserving row order
func (t TechTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Label)
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
