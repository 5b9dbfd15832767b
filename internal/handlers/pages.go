package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"folio.dev/internal/chrome"
	"folio.dev/internal/models"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	projectService *services.ProjectService
	renderer       *render.Renderer
	carousel       *chrome.Carousel
	dropdowns      *chrome.Dropdowns
	listingPath    string
	logger         *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, rr *render.Renderer, c *chrome.Carousel, d *chrome.Dropdowns, listingPath string, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		projectService: ps,
		renderer:       rr,
		carousel:       c,
		dropdowns:      d,
		listingPath:    listingPath,
		logger:         logger,
	}
}

type homeData struct {
	Slide       *render.Card
	Total       int
	ListingPath string
}

type listData struct {
	Cards []render.Card
	Page  models.Page
	Modal *render.ModalView
}

// Home handles GET / - the featured carousel slide and a link to the listing
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	data := homeData{Total: len(projects), ListingPath: h.listingPath}
	if len(projects) > 0 && h.carousel != nil {
		card := h.renderer.Card(projects[h.carousel.Index()%len(projects)])
		data.Slide = &card
	}
	h.page(w, "home.html", "Portfolio", "", data)
}

// Search handles GET /search?q= - redirects to the listing filtered by q.
// A blank query goes back where it came from.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	target, ok := chrome.SearchTarget(h.listingPath, r.URL.Query().Get("q"))
	if !ok {
		target = "/"
		if ref := r.Referer(); ref != "" {
			if u, err := url.Parse(ref); err == nil && u.Host == r.Host {
				target = u.RequestURI()
			}
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// ListProjects handles GET /projects?q=&cat=&page=
func (h *PageHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	query := services.ParseQuery(r.URL.Query())
	page := max(1, parseIntParam(r, "page", 1))
	h.list(w, query, page, nil)
}

// ShowProject handles GET /projects/{id}?img= - the listing with the project
// modal open. An unknown id renders the listing unchanged.
func (h *PageHandler) ShowProject(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	query := services.ParseQuery(r.URL.Query())
	page := max(1, parseIntParam(r, "page", 1))

	modal := services.NewProjectModal(h.projectService)
	if err := modal.Open(r.Context(), id); err != nil {
		h.logger.Debug("modal not opened", "project", id, "error", err)
		h.list(w, query, page, nil)
		return
	}
	modal.ShowAt(parseIntParam(r, "img", 0))

	back := listValues(query, page)
	detail := h.listingPath + "/" + url.PathEscape(id)
	view, err := h.renderer.Modal(modal,
		func(i int) string {
			v := listValues(query, page)
			v.Set("img", strconv.Itoa(i))
			return withQuery(detail, v)
		},
		withQuery(h.listingPath, back),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.list(w, query, page, view)
}

func (h *PageHandler) list(w http.ResponseWriter, query models.Query, page int, modal *render.ModalView) {
	view := h.projectService.View(query, page, func(n int) string {
		return withQuery(h.listingPath, listValues(query, n)) + "#top"
	})

	cards := h.renderer.Cards(view.Page.Items)
	for i := range cards {
		cards[i].DetailURL = withQuery(h.listingPath+"/"+url.PathEscape(cards[i].ID), listValues(query, page))
	}

	h.page(w, "projects.html", "Projects", query.Q, listData{
		Cards: cards,
		Page:  view.Page,
		Modal: modal,
	})
}

func (h *PageHandler) page(w http.ResponseWriter, name, title, search string, data any) {
	var buf bytes.Buffer
	err := h.renderer.Page(&buf, name, render.PageData{
		Title:  title,
		Search: search,
		Menus:  h.dropdowns.Menus(),
		Data:   data,
	})
	if err != nil {
		h.logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
