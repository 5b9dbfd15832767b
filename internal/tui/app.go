// Package tui is a terminal browser for the project catalog.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio.dev/internal/chrome"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

const categoryMenu = "Categories"

// Rows above the project list: featured line, filter line.
const (
	featuredRow = 0
	menuTopRow  = 2
)

// galleryMsg carries a resolved gallery back to the modal that asked for it
type galleryMsg struct {
	token  string
	images []string
	err    error
}

// slideMsg reports a carousel advance
type slideMsg int

// Model is the catalog browser state
type Model struct {
	ctx      context.Context
	projects *services.ProjectService
	modal    *services.ProjectModal
	menus    *chrome.Dropdowns
	carousel *chrome.Carousel
	search   textinput.Model
	help     help.Model

	query      models.Query
	page       int
	cursor     int
	menuCursor int
	searching  bool

	width, height int
	pressX        int
	pressed       bool
	status        string
}

// New creates the browser. swipeThreshold is in terminal cells.
func New(ctx context.Context, ps *services.ProjectService, carousel *chrome.Carousel, swipeThreshold int) Model {
	ti := textinput.New()
	ti.Prompt = "search: "
	ti.Placeholder = "project title"

	return Model{
		ctx:      ctx,
		projects: ps,
		modal:    services.NewProjectModal(ps, services.WithSwipeThreshold(swipeThreshold)),
		menus:    chrome.NewDropdowns(chrome.CategoryMenu(categoryMenu, ps.Categories(), "")),
		carousel: carousel,
		search:   ti,
		help:     help.New(),
		page:     1,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return waitForSlide(m.carousel)
}

func waitForSlide(c *chrome.Carousel) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		return slideMsg(<-c.Changes())
	}
}

func (m Model) resolveGallery(id, token string) tea.Cmd {
	ctx := m.ctx
	ps := m.projects
	return func() tea.Msg {
		images, err := ps.Gallery(ctx, id)
		return galleryMsg{token: token, images: images, err: err}
	}
}

func (m Model) view() models.CatalogView {
	return m.projects.View(m.query, m.page, nil)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case slideMsg:
		return m, waitForSlide(m.carousel)

	case galleryMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		// a later open has superseded this one when Apply refuses
		m.modal.Apply(msg.token, msg.images)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEnter:
			if _, ok := chrome.SearchTarget("", m.search.Value()); ok {
				m.query.Q = strings.TrimSpace(m.search.Value())
				m.page, m.cursor = 1, 0
			}
			m.searching = false
			m.search.Blur()
			return m, nil
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	if m.modal.IsOpen() {
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		m.modal.HandleKey(msg.String())
		return m, nil
	}

	if m.menus.IsOpen(categoryMenu) {
		links := m.categoryLinks()
		switch {
		case key.Matches(msg, keys.Up):
			m.menuCursor = max(0, m.menuCursor-1)
		case key.Matches(msg, keys.Down):
			m.menuCursor = min(len(links)-1, m.menuCursor+1)
		case key.Matches(msg, keys.Open):
			if m.menuCursor >= 0 && m.menuCursor < len(links) {
				m.query.Category = links[m.menuCursor].Label
				m.page, m.cursor = 1, 0
			}
			m.menus.Toggle(categoryMenu)
		default:
			m.menus.ClickOutside()
		}
		return m, nil
	}

	view := m.view()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(msg, keys.Down):
		m.cursor = max(0, min(len(view.Page.Items)-1, m.cursor+1))
	case key.Matches(msg, keys.PrevPage):
		if !view.Page.Prev.Disabled {
			m.page, m.cursor = view.Page.Prev.Page, 0
		}
	case key.Matches(msg, keys.NextPage):
		if !view.Page.Next.Disabled {
			m.page, m.cursor = view.Page.Next.Page, 0
		}
	case key.Matches(msg, keys.Open):
		if m.cursor >= len(view.Page.Items) {
			return m, nil
		}
		id := view.Page.Items[m.cursor].ID.String()
		token, err := m.modal.Begin(id)
		if err != nil {
			return m, nil
		}
		return m, m.resolveGallery(id, token)
	case key.Matches(msg, keys.Search):
		m.searching = true
		m.search.SetValue(m.query.Q)
		return m, m.search.Focus()
	case key.Matches(msg, keys.Category):
		m.menus.Toggle(categoryMenu)
		m.menuCursor = 0
	case key.Matches(msg, keys.Clear):
		m.query = models.Query{}
		m.page, m.cursor = 1, 0
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsOpen() {
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.pressX, m.pressed = msg.X, true
			}
		case tea.MouseActionRelease:
			if !m.pressed {
				return m, nil
			}
			m.pressed = false
			if m.modal.Swipe(msg.X - m.pressX) {
				return m, nil
			}
			m.modal.Pointer(!m.inModal(msg.X, msg.Y))
		}
		return m, nil
	}

	if msg.Action == tea.MouseActionMotion && m.carousel != nil {
		if msg.Y == featuredRow {
			m.carousel.Hover()
		} else {
			m.carousel.Leave()
		}
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && m.menus.IsOpen(categoryMenu) {
		links := m.categoryLinks()
		height := len(links) + 2
		if msg.Y >= menuTopRow && msg.Y < menuTopRow+height {
			m.menus.ClickInside(categoryMenu)
			// one border row above the first link
			if row := msg.Y - menuTopRow - 1; row >= 0 && row < len(links) {
				m.menuCursor = row
			}
		} else {
			m.menus.ClickOutside()
		}
	}
	return m, nil
}

// inModal reports whether a cell lies inside the centered modal box
func (m Model) inModal(x, y int) bool {
	box := m.modalView()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	left, top := (m.width-w)/2, (m.height-h)/2
	return x >= left && x < left+w && y >= top && y < top+h
}

func (m Model) categoryLinks() []chrome.Link {
	for _, menu := range m.menus.Menus() {
		if menu.Name == categoryMenu {
			return menu.Links
		}
	}
	return nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.modal.IsOpen() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
	}

	view := m.view()
	var b strings.Builder

	b.WriteString(m.featuredView())
	b.WriteString("\n")
	b.WriteString(m.filterView(view))
	b.WriteString("\n")
	if m.menus.IsOpen(categoryMenu) {
		b.WriteString(m.menuView())
		b.WriteString("\n")
	}

	if len(view.Page.Items) == 0 {
		b.WriteString(mutedStyle.Render("No projects."))
		b.WriteString("\n")
	}
	for i, p := range view.Page.Items {
		line := fmt.Sprintf("%s  %s  %s", p.Title, mutedStyle.Render(p.Subtitle), mutedStyle.Render("["+p.Category+"]"))
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pagerView(view.Page))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) featuredView() string {
	all := m.projects.GetAll()
	if m.carousel == nil || len(all) == 0 {
		return ""
	}
	p := all[m.carousel.Index()%len(all)]
	label := "Featured: " + p.Title
	if m.carousel.Paused() {
		label += " (paused)"
	}
	return featureStyle.Render(label)
}

func (m Model) filterView(view models.CatalogView) string {
	parts := []string{fmt.Sprintf("%d projects", len(view.Filtered))}
	if m.query.Q != "" {
		parts = append(parts, fmt.Sprintf("title %q", m.query.Q))
	}
	if m.query.Category != "" {
		parts = append(parts, fmt.Sprintf("category %q", m.query.Category))
	}
	return mutedStyle.Render(strings.Join(parts, " · "))
}

func (m Model) menuView() string {
	links := m.categoryLinks()
	if len(links) == 0 {
		return menuStyle.Render(mutedStyle.Render("no categories"))
	}
	lines := make([]string, len(links))
	for i, l := range links {
		if i == m.menuCursor {
			lines[i] = selectedStyle.Render("> " + l.Label)
		} else {
			lines[i] = "  " + l.Label
		}
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}

func pagerView(p models.Page) string {
	if p.TotalPages == 0 {
		return ""
	}
	control := func(c models.PageControl, label string) string {
		switch {
		case c.Active:
			return selectedStyle.Render("[" + label + "]")
		case c.Disabled:
			return mutedStyle.Render(label)
		default:
			return label
		}
	}

	parts := []string{control(p.Prev, "‹ prev")}
	for _, c := range p.Controls {
		parts = append(parts, control(c, c.Label))
	}
	parts = append(parts, control(p.Next, "next ›"))
	return strings.Join(parts, " ")
}

func (m Model) modalView() string {
	p := m.modal.Project()
	if p == nil {
		return ""
	}
	g := m.modal.Gallery()

	lines := []string{titleStyle.Render(p.Title)}
	if p.Subtitle != "" {
		lines = append(lines, mutedStyle.Render(p.Subtitle))
	}
	lines = append(lines, "",
		fmt.Sprintf("image %d/%d  %s", g.Position+1, len(g.Images), g.Current()),
		"",
		techView(m.modal.Tech()),
		"",
		mutedStyle.Render("←/→ image · esc close · drag to swipe · click outside to close"),
	)
	return modalBox.Render(strings.Join(lines, "\n"))
}

func techView(t models.TechTable) string {
	if len(t) == 0 {
		return placeholder.Render(models.TechPlaceholder)
	}
	width := 0
	for _, e := range t {
		width = max(width, lipgloss.Width(e.Label))
	}
	rows := make([]string, len(t))
	for i, e := range t {
		rows[i] = labelStyle.Width(width+2).Render(e.Label) + e.Value
	}
	return strings.Join(rows, "\n")
}
