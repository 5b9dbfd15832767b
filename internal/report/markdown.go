// Package report writes the catalog out as a Markdown document.
package report

import (
	"context"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"folio.dev/internal/models"
)

// GalleryFunc resolves a project's gallery; nil skips the gallery section
type GalleryFunc func(ctx context.Context, id string) ([]string, error)

// MarkdownWriter outputs the catalog in Markdown format
type MarkdownWriter struct {
	output  io.Writer
	gallery GalleryFunc
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to w
func NewMarkdownWriter(w io.Writer, gallery GalleryFunc) *MarkdownWriter {
	return &MarkdownWriter{output: w, gallery: gallery}
}

// Write renders the filtered catalog: a summary table followed by one
// section per project.
func (w *MarkdownWriter) Write(ctx context.Context, view models.CatalogView) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Project catalog")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Title filter", orDash(view.Query.Q)},
			{"Category filter", orDash(view.Query.Category)},
			{"Projects", strconv.Itoa(len(view.Filtered))},
			{"Pages", strconv.Itoa(view.Page.TotalPages)},
		},
	})
	md.PlainText("")

	if len(view.Filtered) == 0 {
		md.PlainText(markdown.Italic("No projects match."))
		return md.Build()
	}

	rows := make([][]string, 0, len(view.Filtered))
	for _, p := range view.Filtered {
		rows = append(rows, []string{p.ID.String(), p.Title, p.Category, p.Subtitle})
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Title", "Category", "Subtitle"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, p := range view.Filtered {
		if err := w.writeProject(ctx, md, p); err != nil {
			return err
		}
	}

	return md.Build()
}

func (w *MarkdownWriter) writeProject(ctx context.Context, md *markdown.Markdown, p models.Project) error {
	md.H2(p.Title)
	md.PlainText("")
	if p.Description != "" {
		md.PlainText(p.Description)
		md.PlainText("")
	}

	if len(p.Tech) == 0 {
		md.PlainText(markdown.Italic(models.TechPlaceholder))
	} else {
		rows := make([][]string, 0, len(p.Tech))
		for _, e := range p.Tech {
			rows = append(rows, []string{e.Label, e.Value})
		}
		md.Table(markdown.TableSet{Header: []string{"Technology", "Value"}, Rows: rows})
	}
	md.PlainText("")

	if w.gallery == nil {
		return nil
	}
	images, err := w.gallery(ctx, p.ID.String())
	if err != nil {
		return err
	}
	md.H3("Gallery")
	md.PlainText("")
	md.BulletList(images...)
	md.PlainText("")
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
