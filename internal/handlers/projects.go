package handlers

import (
	"errors"
	"net/http"

	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

// ProjectHandler handles project-related API endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	renderer       *render.Renderer
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, rr *render.Renderer) *ProjectHandler {
	return &ProjectHandler{projectService: ps, renderer: rr}
}

// ListProjects handles GET /api/projects?q=&cat=&page=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	query := services.ParseQuery(r.URL.Query())
	page := max(1, parseIntParam(r, "page", 1))

	view := h.projectService.View(query, page, func(n int) string {
		return withQuery(r.URL.Path, listValues(query, n))
	})
	respondJSON(w, http.StatusOK, view)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// GetGallery handles GET /api/projects/{id}/gallery
func (h *ProjectHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)

	images, err := h.projectService.Gallery(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, h.renderer.AssetURL(img))
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"id":     id,
		"images": urls,
	})
}
