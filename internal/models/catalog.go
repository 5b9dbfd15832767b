package models

import (
	"bytes"
	"encoding/json"
)

// ProjectList is the decoded catalog document.
// The document is a bare JSON array; {"projects": [...]} is also accepted.
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// UnmarshalJSON accepts either a top-level array or a wrapping object
func (l *ProjectList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &l.Projects)
	}

	var wrapped struct {
		Projects []Project `json:"projects"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	l.Projects = wrapped.Projects
	return nil
}

// Query holds the catalog filter terms taken from the URL
type Query struct {
	Q        string `json:"q,omitempty"`
	Category string `json:"cat,omitempty"`
}

// IsZero reports whether no filter is set
func (q Query) IsZero() bool {
	return q.Q == "" && q.Category == ""
}

// PageControl is one entry of the pagination strip
type PageControl struct {
	Label    string `json:"label"`
	Page     int    `json:"page"`
	Disabled bool   `json:"disabled"`
	Active   bool   `json:"active,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Page is the visible slice of a filtered catalog
type Page struct {
	Items      []Project     `json:"items"`
	Number     int           `json:"number"`
	Size       int           `json:"size"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
	Prev       PageControl   `json:"prev"`
	Next       PageControl   `json:"next"`
	Controls   []PageControl `json:"controls"`
}

// CatalogView is the derived view of the catalog for one request
type CatalogView struct {
	Query    Query     `json:"query"`
	Filtered []Project `json:"-"`
	Page     Page      `json:"page"`
}

// GalleryState is the image position of an open project modal
type GalleryState struct {
	Images   []string `json:"images"`
	Position int      `json:"position"`
}

// Current returns the image at the current position, or "" when empty
func (g GalleryState) Current() string {
	if g.Position < 0 || g.Position >= len(g.Images) {
		return ""
	}
	return g.Images[g.Position]
}
