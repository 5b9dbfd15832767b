package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"folio.dev/internal/telemetry"
)

// ErrImageNotFound is returned by a Prober when the image does not exist
var ErrImageNotFound = errors.New("image not found")

// Prober checks whether an image exists without transferring its body
type Prober interface {
	Probe(ctx context.Context, path string) error
}

// FSProber probes images with fs.Stat against an assets filesystem.
// Paths are taken relative to the filesystem root.
type FSProber struct {
	fsys fs.FS
}

// NewFSProber creates a prober over fsys
func NewFSProber(fsys fs.FS) *FSProber {
	return &FSProber{fsys: fsys}
}

// Probe implements Prober
func (p *FSProber) Probe(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := strings.TrimPrefix(path, "/")
	info, err := fs.Stat(p.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrImageNotFound, path)
	}
	return nil
}

// HTTPProber probes images with HEAD requests against a base URL
type HTTPProber struct {
	client  *http.Client
	baseURL string
}

// NewHTTPProber creates a prober for images served under baseURL
func NewHTTPProber(client *http.Client, baseURL string) *HTTPProber {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProber{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Probe implements Prober. Only a 2xx response counts as present.
func (p *HTTPProber) Probe(ctx context.Context, path string) error {
	url := p.baseURL + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s (%s)", ErrImageNotFound, path, resp.Status)
	}
	return nil
}

// GalleryLoader discovers a project's images by probing <folder>/1.jpg,
// <folder>/2.jpg, ... in order until the first miss.
type GalleryLoader struct {
	prober    Prober
	maxImages int
	logger    *slog.Logger
}

// GalleryOption configures a GalleryLoader
type GalleryOption func(*GalleryLoader)

// WithMaxImages caps the number of probes per resolve
func WithMaxImages(n int) GalleryOption {
	return func(g *GalleryLoader) {
		g.maxImages = n
	}
}

// WithGalleryLogger sets the loader's logger
func WithGalleryLogger(l *slog.Logger) GalleryOption {
	return func(g *GalleryLoader) {
		g.logger = l
	}
}

// NewGalleryLoader creates a loader backed by prober
func NewGalleryLoader(prober Prober, opts ...GalleryOption) *GalleryLoader {
	g := &GalleryLoader{
		prober:    prober,
		maxImages: 50,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GalleryFolder returns everything before the last "/" of firstImagePath
func GalleryFolder(firstImagePath string) string {
	i := strings.LastIndex(firstImagePath, "/")
	if i < 0 {
		return ""
	}
	return firstImagePath[:i]
}

// Resolve returns the numbered images that exist next to firstImagePath, in
// ascending order. Probing is sequential and stops at the first failure of
// any kind. If nothing is found the result is []string{firstImagePath}.
func (g *GalleryLoader) Resolve(ctx context.Context, firstImagePath string) []string {
	ctx, span := telemetry.Tracer().Start(ctx, "gallery.resolve")
	defer span.End()

	folder := GalleryFolder(firstImagePath)
	span.SetAttributes(attribute.String("gallery.folder", folder))

	var images []string
	for i := 1; i <= g.maxImages; i++ {
		path := folder + "/" + strconv.Itoa(i) + ".jpg"
		err := g.prober.Probe(ctx, path)
		span.AddEvent("probe", trace.WithAttributes(
			attribute.String("path", path),
			attribute.Bool("found", err == nil),
		))
		if err != nil {
			if !errors.Is(err, ErrImageNotFound) {
				g.logger.Debug("gallery probe failed", "path", path, "error", err)
			}
			break
		}
		images = append(images, path)
	}

	if len(images) == g.maxImages {
		g.logger.Warn("gallery probe limit reached", "folder", folder, "limit", g.maxImages)
	}

	span.SetAttributes(attribute.Int("gallery.images", len(images)))
	if len(images) == 0 {
		return []string{firstImagePath}
	}
	return images
}
