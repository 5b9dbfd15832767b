package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"folio.dev/internal/models"
	"folio.dev/internal/report"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as a Markdown document",
		Long: `Export applies the same title and category filters as the listing page
and writes the matching projects as Markdown.

Examples:
  # Every project to stdout
  folio export

  # Web projects with their galleries, to a file
  folio export --cat Web --galleries -o web.md`,
		Args: cobra.NoArgs,
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("query", "q", "", "Title filter (case-insensitive substring)")
	cmd.Flags().String("cat", "", "Category filter (exact, case-insensitive)")
	cmd.Flags().BoolP("galleries", "g", false, "Resolve and list each project's gallery images")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	ctx := cmd.Context()

	projects := newProjectService(ctx, cfg, logger)

	q, _ := cmd.Flags().GetString("query")
	cat, _ := cmd.Flags().GetString("cat")
	withGalleries, _ := cmd.Flags().GetBool("galleries")
	outPath, _ := cmd.Flags().GetString("output")

	var out io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		f, err := os.Create(outPath) //nolint:gosec // path comes from the user
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var gallery report.GalleryFunc
	if withGalleries {
		gallery = projects.Gallery
	}

	view := projects.View(models.Query{Q: q, Category: cat}, 1, nil)
	if err := report.NewMarkdownWriter(out, gallery).Write(ctx, view); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if outPath != "" {
		logger.Info("report written", "path", outPath, "projects", len(view.Filtered))
	}
	return nil
}
