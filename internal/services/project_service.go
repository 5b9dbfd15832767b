package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"

	"folio.dev/internal/models"
	"folio.dev/internal/telemetry"
)

// ErrProjectNotFound is returned when no project carries the requested id
var ErrProjectNotFound = errors.New("project not found")

// ReadCatalog reads the project list from a file path or an http(s) URL
func ReadCatalog(ctx context.Context, client *http.Client, source string) ([]models.Project, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "catalog.read")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.source", source))

	data, err := readSource(ctx, client, source)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var list models.ProjectList
	if err := json.Unmarshal(data, &list); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}

	span.SetAttributes(attribute.Int("catalog.projects", len(list.Projects)))
	return list.Projects, nil
}

func readSource(ctx context.Context, client *http.Client, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch catalog: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}
	return data, nil
}

// LoadCatalog is ReadCatalog that never fails: errors are logged and an
// empty catalog is returned so the site still renders.
func LoadCatalog(ctx context.Context, client *http.Client, source string, logger *slog.Logger) []models.Project {
	projects, err := ReadCatalog(ctx, client, source)
	if err != nil {
		logger.Error("failed to load projects", "source", source, "error", err)
		return []models.Project{}
	}
	logger.Info("catalog loaded", "source", source, "projects", len(projects))
	return projects
}

// ParseQuery reads the q and cat filter terms from URL query values
func ParseQuery(values url.Values) models.Query {
	return models.Query{
		Q:        values.Get("q"),
		Category: values.Get("cat"),
	}
}

// FilterProjects applies the title filter, then the category filter.
// Either term may be empty, in which case that filter is skipped.
func FilterProjects(projects []models.Project, q models.Query) []models.Project {
	fold := cases.Fold()
	out := projects

	if q.Q != "" {
		needle := fold.String(q.Q)
		out = slices.DeleteFunc(slices.Clone(out), func(p models.Project) bool {
			return !strings.Contains(fold.String(p.Title), needle)
		})
	}

	if q.Category != "" {
		want := fold.String(strings.TrimSpace(q.Category))
		out = slices.DeleteFunc(slices.Clone(out), func(p models.Project) bool {
			return fold.String(strings.TrimSpace(p.Category)) != want
		})
	}

	if out == nil {
		return []models.Project{}
	}
	return out
}

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
	gallery  *GalleryLoader
	logger   *slog.Logger

	mu        sync.RWMutex
	galleries map[string][]string
	inflight  singleflight.Group
}

// NewProjectService creates a new ProjectService over a loaded catalog
func NewProjectService(projects []models.Project, gallery *GalleryLoader, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectService{
		projects:  projects,
		gallery:   gallery,
		logger:    logger,
		galleries: make(map[string][]string),
	}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID.String() == id {
			return &s.projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// Filter returns the projects matching q
func (s *ProjectService) Filter(q models.Query) []models.Project {
	return FilterProjects(s.projects, q)
}

// Categories returns the distinct trimmed categories, sorted
func (s *ProjectService) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.projects {
		c := strings.TrimSpace(p.Category)
		if c == "" || seen[strings.ToLower(c)] {
			continue
		}
		seen[strings.ToLower(c)] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// View filters the catalog and cuts out the requested page
func (s *ProjectService) View(q models.Query, page int, link LinkFunc) models.CatalogView {
	filtered := s.Filter(q)
	return models.CatalogView{
		Query:    q,
		Filtered: filtered,
		Page:     Paginate(filtered, page, link),
	}
}

// Gallery returns the resolved image list for a project.
// The first call probes the image folder; the result is kept for later calls.
// Concurrent first calls for the same project share a single probe run, which
// is not cut short when one of the callers gives up.
func (s *ProjectService) Gallery(ctx context.Context, id string) ([]string, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	cached, ok := s.galleries[id]
	s.mu.RUnlock()
	if ok {
		return slices.Clone(cached), nil
	}

	if p.CoverBase() == "" {
		return []string{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolveCtx := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(id, func() (any, error) {
		images := s.gallery.Resolve(resolveCtx, p.CoverBase())
		s.mu.Lock()
		s.galleries[id] = images
		s.mu.Unlock()
		return images, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.Debug("gallery resolve shared", "project", id)
		}
		return slices.Clone(res.Val.([]string)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
