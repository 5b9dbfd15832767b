package render

import (
	"html/template"

	"folio.dev/internal/services"
)

// ModalView is the open project overlay as the template sees it
type ModalView struct {
	Title       string
	ImageURL    string
	Position    int // 1-based
	Count       int
	PrevURL     string
	NextURL     string
	CloseURL    string
	Tech        template.HTML
	Description template.HTML
}

// Modal builds the overlay view of an open modal. imageLink returns the URL
// that shows image i, already wrapped into range. Returns nil when closed.
func (r *Renderer) Modal(m *services.ProjectModal, imageLink func(i int) string, closeURL string) (*ModalView, error) {
	if !m.IsOpen() {
		return nil, nil
	}

	tech, err := r.TechTable(m.Tech())
	if err != nil {
		return nil, err
	}

	p := m.Project()
	g := m.Gallery()
	n := len(g.Images)
	v := &ModalView{
		Title:       p.Title,
		Position:    g.Position + 1,
		Count:       n,
		CloseURL:    closeURL,
		Tech:        tech,
		Description: r.Markdown(p.Description),
	}
	if cur := g.Current(); cur != "" {
		v.ImageURL = r.AssetURL(cur)
	}
	if n > 0 {
		v.PrevURL = imageLink(services.WrapIndex(g.Position-1, n))
		v.NextURL = imageLink(services.WrapIndex(g.Position+1, n))
	}
	return v, nil
}
