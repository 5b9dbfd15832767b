package services

import (
	"context"

	"github.com/google/uuid"

	"folio.dev/internal/models"
)

// ModalState is the open/closed state of the project modal
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

func (s ModalState) String() string {
	if s == ModalOpen {
		return "open"
	}
	return "closed"
}

// Catalog is what the modal needs from the project store
type Catalog interface {
	GetByID(id string) (*models.Project, error)
	Gallery(ctx context.Context, id string) ([]string, error)
}

// ProjectModal is the project detail overlay: which project is shown, which
// gallery image is displayed, and whether the overlay is visible.
//
// Opening is split in two steps for hosts that resolve galleries
// asynchronously: Begin hands out a token, Apply installs the result only if
// that token is still the latest one.
type ProjectModal struct {
	catalog        Catalog
	swipeThreshold int

	state   ModalState
	project *models.Project
	gallery models.GalleryState

	token   string
	pending *models.Project
}

// ModalOption configures a ProjectModal
type ModalOption func(*ProjectModal)

// WithSwipeThreshold sets the minimum horizontal swipe distance
func WithSwipeThreshold(n int) ModalOption {
	return func(m *ProjectModal) {
		m.swipeThreshold = n
	}
}

// NewProjectModal creates a closed modal over catalog
func NewProjectModal(catalog Catalog, opts ...ModalOption) *ProjectModal {
	m := &ProjectModal{
		catalog:        catalog,
		swipeThreshold: 50,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open looks up the project, resolves its gallery and shows the first image.
// An unknown id leaves the modal untouched and returns ErrProjectNotFound.
func (m *ProjectModal) Open(ctx context.Context, id string) error {
	token, err := m.Begin(id)
	if err != nil {
		return err
	}
	images, err := m.catalog.Gallery(ctx, id)
	if err != nil {
		return err
	}
	m.Apply(token, images)
	return nil
}

// Begin starts an open for id and returns the token Apply must present.
// Any earlier outstanding token becomes stale.
func (m *ProjectModal) Begin(id string) (string, error) {
	p, err := m.catalog.GetByID(id)
	if err != nil {
		return "", err
	}
	m.token = uuid.NewString()
	m.pending = p
	return m.token, nil
}

// Apply finishes the open started with token. Stale tokens are ignored and
// Apply reports false.
func (m *ProjectModal) Apply(token string, images []string) bool {
	if token == "" || token != m.token || m.pending == nil {
		return false
	}
	m.project = m.pending
	m.pending = nil
	m.token = ""
	m.gallery = models.GalleryState{Images: images, Position: 0}
	m.state = ModalOpen
	return true
}

// Close hides the overlay. The gallery is kept until the next open replaces it.
func (m *ProjectModal) Close() {
	m.state = ModalClosed
}

// State returns the current state
func (m *ProjectModal) State() ModalState {
	return m.state
}

// IsOpen reports whether the overlay is visible
func (m *ProjectModal) IsOpen() bool {
	return m.state == ModalOpen
}

// Project returns the project last opened, or nil
func (m *ProjectModal) Project() *models.Project {
	return m.project
}

// Gallery returns the current gallery state
func (m *ProjectModal) Gallery() models.GalleryState {
	return m.gallery
}

// Tech returns the technology table of the shown project
func (m *ProjectModal) Tech() models.TechTable {
	if m.project == nil {
		return nil
	}
	return m.project.Tech
}

// ShowAt moves to image i, wrapping in both directions
func (m *ProjectModal) ShowAt(i int) {
	n := len(m.gallery.Images)
	if n == 0 {
		m.gallery.Position = 0
		return
	}
	m.gallery.Position = WrapIndex(i, n)
}

// Next shows the following image
func (m *ProjectModal) Next() {
	m.ShowAt(m.gallery.Position + 1)
}

// Prev shows the preceding image
func (m *ProjectModal) Prev() {
	m.ShowAt(m.gallery.Position - 1)
}

// HandleKey applies a key press while open: left/right navigate, escape closes.
// It reports whether the key was consumed.
func (m *ProjectModal) HandleKey(key string) bool {
	if !m.IsOpen() {
		return false
	}
	switch key {
	case "left", "ArrowLeft":
		m.Prev()
	case "right", "ArrowRight":
		m.Next()
	case "esc", "Escape":
		m.Close()
	default:
		return false
	}
	return true
}

// Swipe applies a horizontal gesture of dx. Movements at or below the
// threshold are ignored; positive dx goes back, negative goes forward.
func (m *ProjectModal) Swipe(dx int) bool {
	if !m.IsOpen() {
		return false
	}
	switch {
	case dx > m.swipeThreshold:
		m.Prev()
	case dx < -m.swipeThreshold:
		m.Next()
	default:
		return false
	}
	return true
}

// Pointer handles a click while open. Only a click on the backdrop itself
// closes the overlay; clicks on the inner content are ignored.
func (m *ProjectModal) Pointer(onBackdrop bool) {
	if m.IsOpen() && onBackdrop {
		m.Close()
	}
}

// WrapIndex maps any integer onto [0, n)
func WrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
