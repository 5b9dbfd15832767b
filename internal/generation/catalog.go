// Package generation scaffolds a project catalog from a tree of gallery
// images laid out as <images-dir>/<slug>/1.jpg, 2.jpg, ...
package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"folio.dev/internal/models"
)

// DefaultImagesDir is where project folders are looked for, relative to the site root
const DefaultImagesDir = "assets/images"

// DefaultCategory is given to scaffolded projects until someone edits them
const DefaultCategory = "Uncategorized"

// coverName is the first gallery image; its base without extension is the catalog entry
const coverName = "1.jpg"

// Scan returns one project per folder under imagesDir that holds a 1.jpg.
// Folders are visited in lexical order; the folder name becomes the id.
func Scan(fsys fs.FS, imagesDir string) ([]models.Project, error) {
	entries, err := fs.ReadDir(fsys, imagesDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", imagesDir, err)
	}

	var projects []models.Project
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		folder := path.Join(imagesDir, e.Name())
		info, err := fs.Stat(fsys, path.Join(folder, coverName))
		if err != nil || info.IsDir() {
			continue
		}
		projects = append(projects, models.Project{
			ID:       models.ProjectID(e.Name()),
			Title:    TitleFromSlug(e.Name()),
			Category: DefaultCategory,
			Images:   []string{path.Join(folder, strings.TrimSuffix(coverName, ".jpg"))},
		})
	}
	return projects, nil
}

// TitleFromSlug turns "orbit-tracker_v2" into "Orbit Tracker V2"
func TitleFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Catalog is an existing catalog document held as raw JSON, so entries that
// are already there are written back with every field and literal intact.
// Both a bare array and an object with a "projects" member are kept in their
// original shape.
type Catalog struct {
	members []member
	entries []json.RawMessage
}

// member is one top-level field of a wrapping object, in document order
type member struct {
	key   string
	value json.RawMessage
}

const entriesKey = "projects"

// ReadCatalog parses a catalog document without decoding its entries
func ReadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &Catalog{}, nil
	}

	c := &Catalog{}
	if data[0] == '[' {
		if err := json.Unmarshal(data, &c.entries); err != nil {
			return nil, fmt.Errorf("parsing catalog: %w", err)
		}
		return c, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parsing catalog: expected an array or an object")
	}
	c.members = []member{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing catalog: %w", err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing catalog %q: %w", key, err)
		}
		if key == entriesKey {
			if err := json.Unmarshal(raw, &c.entries); err != nil {
				return nil, fmt.Errorf("parsing catalog %q: %w", key, err)
			}
		}
		c.members = append(c.members, member{key: key, value: raw})
	}
	return c, nil
}

// Len returns the number of entries in the catalog
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Merge keeps every existing entry untouched and in order, then appends the
// scanned projects whose ids are not taken yet. It returns the appended ones.
func (c *Catalog) Merge(scanned []models.Project) ([]models.Project, error) {
	seen := make(map[string]bool, len(c.entries))
	for i, raw := range c.entries {
		var entry struct {
			ID models.ProjectID `json:"id"`
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		seen[entry.ID.String()] = true
	}

	var added []models.Project
	for _, p := range scanned {
		if seen[p.ID.String()] {
			continue
		}
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", p.ID, err)
		}
		seen[p.ID.String()] = true
		c.entries = append(c.entries, raw)
		added = append(added, p)
	}
	return added, nil
}

// Write encodes the catalog as indented JSON in its original shape
func (c *Catalog) Write(w io.Writer) error {
	entries := c.entries
	if entries == nil {
		entries = []json.RawMessage{}
	}
	list, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	compact := list
	if c.members != nil {
		var buf bytes.Buffer
		buf.WriteByte('{')
		wrote := false
		for _, m := range c.members {
			value := m.value
			if m.key == entriesKey {
				value, wrote = list, true
			}
			writeMember(&buf, m.key, value)
		}
		if !wrote {
			writeMember(&buf, entriesKey, list)
		}
		buf.WriteByte('}')
		compact = buf.Bytes()
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}

func writeMember(buf *bytes.Buffer, key string, value json.RawMessage) {
	if buf.Len() > 1 {
		buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(value)
}
