// Package render turns catalog data into HTML: page layouts, project cards,
// technology tables and Markdown descriptions.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"folio.dev/internal/chrome"
	"folio.dev/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData contains common data for all pages
type PageData struct {
	Title  string
	Search string
	Menus  []chrome.Menu
	Data   any
}

// Renderer handles template rendering
type Renderer struct {
	base      *template.Template
	imageBase string
	md        goldmark.Markdown
	policy    *bluemonday.Policy
}

// New parses the shared templates. imageBaseURL, when set, prefixes image
// paths instead of the site root.
func New(imageBaseURL string) (*Renderer, error) {
	base, err := template.New("").ParseFS(templatesFS,
		"templates/base.html",
		"templates/card.html",
		"templates/tech.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse base templates: %w", err)
	}

	return &Renderer{
		base:      base,
		imageBase: strings.TrimSuffix(imageBaseURL, "/"),
		md:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:    bluemonday.UGCPolicy(),
	}, nil
}

// Page renders a full page. The page template is parsed into a clone of the
// base so each page can define its own "content" block.
func (r *Renderer) Page(w io.Writer, name string, data PageData) error {
	tmpl, err := r.base.Clone()
	if err != nil {
		return fmt.Errorf("clone template: %w", err)
	}
	path := "templates/" + name
	if _, err := tmpl.ParseFS(templatesFS, path); err != nil {
		return fmt.Errorf("parse page template %s: %w", path, err)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

// fragment executes one of the shared templates into a string
func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.base.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// AssetURL maps a catalog-relative path to the URL the browser loads
func (r *Renderer) AssetURL(path string) string {
	path = strings.TrimPrefix(path, "/")
	if r.imageBase != "" {
		return r.imageBase + "/" + path
	}
	return "/" + path
}

type techData struct {
	Rows        models.TechTable
	Placeholder string
}

// TechTable renders a technology table, or the placeholder when it is empty
func (r *Renderer) TechTable(t models.TechTable) (template.HTML, error) {
	return r.fragment("tech", techData{Rows: t, Placeholder: models.TechPlaceholder})
}

// Markdown renders a project description to sanitized HTML
func (r *Renderer) Markdown(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}
