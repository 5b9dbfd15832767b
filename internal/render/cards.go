package render

import (
	"html/template"
	"net/url"

	"folio.dev/internal/models"
)

// CoverExt is appended to a project's first image path to get its cover
const CoverExt = ".jpg"

// Card is the view of one project summary
type Card struct {
	ID        string
	Title     string
	Subtitle  string
	Category  string
	CoverURL  string
	DetailURL string
}

// Card maps a project to its card. Missing subtitles render blank.
func (r *Renderer) Card(p models.Project) Card {
	cover := ""
	if base := p.CoverBase(); base != "" {
		cover = r.AssetURL(base + CoverExt)
	}
	return Card{
		ID:        p.ID.String(),
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		Category:  p.Category,
		CoverURL:  cover,
		DetailURL: "/projects/" + url.PathEscape(p.ID.String()),
	}
}

// Cards maps every project; cards are rebuilt on each call
func (r *Renderer) Cards(projects []models.Project) []Card {
	cards := make([]Card, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, r.Card(p))
	}
	return cards
}

// CardHTML renders one card as an HTML fragment
func (r *Renderer) CardHTML(p models.Project) (template.HTML, error) {
	return r.fragment("card", r.Card(p))
}
