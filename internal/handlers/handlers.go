package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"folio.dev/internal/chrome"
	"folio.dev/internal/config"
	"folio.dev/internal/middleware"
	"folio.dev/internal/models"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

// Deps are the long-lived components the routes are built from
type Deps struct {
	Projects *services.ProjectService
	Renderer *render.Renderer
	Carousel *chrome.Carousel
	Logger   *slog.Logger
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	menus := append(
		[]chrome.Menu{chrome.CategoryMenu("Categories", deps.Projects.Categories(), cfg.ListingPath)},
		configMenus(cfg.Menus)...,
	)

	// Initialize handlers
	pageHandler := NewPageHandler(deps.Projects, deps.Renderer, deps.Carousel, chrome.NewDropdowns(menus...), cfg.ListingPath, logger)
	projectHandler := NewProjectHandler(deps.Projects, deps.Renderer)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/search", pageHandler.Search)
	r.Get(cfg.ListingPath, pageHandler.ListProjects)
	r.Get(cfg.ListingPath+"/{id}", pageHandler.ShowProject)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/projects/{id}/gallery", projectHandler.GetGallery)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"status":   "ok",
				"projects": len(deps.Projects.GetAll()),
			})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(filepath.Join(cfg.SiteRoot, "assets")))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	return r
}

func configMenus(in []config.Menu) []chrome.Menu {
	out := make([]chrome.Menu, 0, len(in))
	for _, m := range in {
		menu := chrome.Menu{Name: m.Name}
		for _, l := range m.Links {
			menu.Links = append(menu.Links, chrome.Link{Label: l.Label, Href: l.Href})
		}
		out = append(out, menu)
	}
	return out
}

// listValues encodes the filter terms and page for catalog URLs
func listValues(q models.Query, page int) url.Values {
	v := url.Values{}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	if q.Category != "" {
		v.Set("cat", q.Category)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return v
}

// withQuery appends encoded values to path when there are any
func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

// idParam returns the {id} route parameter decoded. chi matches on the raw
// path when the request carries escapes, so "a%2Fb" has to be unescaped here.
func idParam(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id
	}
	if decoded, err := url.PathUnescape(id); err == nil {
		return decoded
	}
	return id
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
