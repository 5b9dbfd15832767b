package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"folio.dev/internal/chrome"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

// findAll returns every element under n that carries class
func findAll(n *html.Node, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "class" && hasClass(a.Val, class) {
					out = append(out, n)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func hasClass(attr, class string) bool {
	for _, c := range strings.Fields(attr) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestRenderer_Card(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	p := models.Project{ID: "orbit", Title: "Orbit <Tracker>", Category: "Web", Images: []string{"assets/images/orbit/1"}}
	frag, err := r.CardHTML(p)
	require.NoError(t, err)

	doc := parse(t, string(frag))
	cards := findAll(doc, "card")
	require.Len(t, cards, 1)
	assert.Contains(t, text(cards[0]), "Orbit <Tracker>")
	assert.Contains(t, text(cards[0]), "Category: Web")

	btn := findAll(doc, "btn")
	require.Len(t, btn, 1)
	assert.Equal(t, "orbit", attr(btn[0], "data-open-modal"))
	assert.Equal(t, "View more", text(btn[0]))

	c := r.Card(p)
	assert.Equal(t, "/assets/images/orbit/1.jpg", c.CoverURL)
	assert.Equal(t, "/projects/orbit", c.DetailURL)

	// a missing subtitle renders blank
	assert.Equal(t, "", c.Subtitle)
}

func TestRenderer_AssetURL(t *testing.T) {
	local, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "/assets/a.jpg", local.AssetURL("assets/a.jpg"))
	assert.Equal(t, "/assets/a.jpg", local.AssetURL("/assets/a.jpg"))

	remote, err := New("https://cdn.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/assets/a.jpg", remote.AssetURL("assets/a.jpg"))
}

func TestRenderer_TechTable(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	t.Run("placeholder when empty", func(t *testing.T) {
		out, err := r.TechTable(nil)
		require.NoError(t, err)
		doc := parse(t, string(out))
		assert.Equal(t, models.TechPlaceholder, strings.TrimSpace(text(doc)))
	})

	t.Run("one row per entry in order", func(t *testing.T) {
		out, err := r.TechTable(models.TechTable{
			{Label: "Language", Value: "Go"},
			{Label: "Database", Value: "<Postgres>"},
		})
		require.NoError(t, err)
		doc := parse(t, string(out))
		labels := findAll(doc, "label")
		require.Len(t, labels, 2)
		assert.Equal(t, "Language", text(labels[0]))
		assert.Equal(t, "Database", text(labels[1]))
		assert.Contains(t, string(out), "&lt;Postgres&gt;")
	})
}

func TestRenderer_Markdown(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	out := string(r.Markdown("**bold** <script>alert(1)</script>\n\n| a | b |\n|---|---|\n| 1 | 2 |"))
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<table>")
	assert.Equal(t, "", string(r.Markdown("   ")))
}

func TestRenderer_Page(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Page(&buf, "projects.html", PageData{
		Title:  "Projects",
		Search: "orbit",
		Menus:  []chrome.Menu{chrome.CategoryMenu("Categories", []string{"CLI", "Web"}, "/projects")},
		Data: struct {
			Cards []Card
			Page  models.Page
			Modal *ModalView
		}{
			Cards: r.Cards([]models.Project{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}}),
			Page:  services.Paginate(make([]models.Project, 2), 1, nil),
		},
	})
	require.NoError(t, err)

	doc := parse(t, buf.String())
	assert.Len(t, findAll(doc, "card"), 2)
	assert.Len(t, findAll(doc, "dropdown"), 1)
	assert.Empty(t, findAll(doc, "modal"))
	assert.Contains(t, buf.String(), `href="/projects?cat=CLI"`)
	assert.Contains(t, buf.String(), `value="orbit"`)
}

type stubCatalog struct {
	p *models.Project
}

func (c stubCatalog) GetByID(id string) (*models.Project, error) {
	if id != c.p.ID.String() {
		return nil, services.ErrProjectNotFound
	}
	return c.p, nil
}

func (c stubCatalog) Gallery(context.Context, string) ([]string, error) {
	return []string{"img/a/1.jpg", "img/a/2.jpg", "img/a/3.jpg"}, nil
}

func TestRenderer_Modal(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	p := &models.Project{ID: "a", Title: "Alpha", Description: "Hello *world*"}
	m := services.NewProjectModal(stubCatalog{p: p})

	view, err := r.Modal(m, nil, "/projects")
	require.NoError(t, err)
	assert.Nil(t, view, "closed modal has no view")

	require.NoError(t, m.Open(context.Background(), "a"))
	link := func(i int) string { return "/projects/a?img=" + string(rune('0'+i)) }

	view, err = r.Modal(m, link, "/projects")
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "/img/a/1.jpg", view.ImageURL)
	assert.Equal(t, 1, view.Position)
	assert.Equal(t, 3, view.Count)
	assert.Equal(t, "/projects/a?img=2", view.PrevURL)
	assert.Equal(t, "/projects/a?img=1", view.NextURL)
	assert.Contains(t, string(view.Tech), models.TechPlaceholder)
	assert.Contains(t, string(view.Description), "<em>world</em>")
}
