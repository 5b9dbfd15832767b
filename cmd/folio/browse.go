package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"folio.dev/internal/chrome"
	applog "folio.dev/internal/log"
	"folio.dev/internal/tui"
)

// swipeCells is the drag distance, in terminal cells, that counts as a swipe
const swipeCells = 8

// NewBrowseCmd creates the browse command.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		Long: `Browse opens an interactive catalog viewer.

Keys:
  up/down   move        left/right  change page
  enter     details     /           search by title
  c         categories  x           clear filters
  q         quit

In the detail view left/right change image, esc closes, dragging the mouse
sideways swipes and a click outside the box closes it. Hovering the featured
line pauses the carousel.`,
		Args: cobra.NoArgs,
		RunE: runBrowseCmd,
	}
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// the alt screen owns the terminal; keep logs quiet
	logger := applog.New(io.Discard, cfg.LogFormat, false)
	if cfg.Verbose {
		logger = newLogger(cfg)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	projects := newProjectService(ctx, cfg, logger)

	carousel := chrome.NewCarousel(min(len(projects.GetAll()), maxSlides), cfg.CarouselInterval)
	carousel.Start()
	defer carousel.Stop()

	model := tui.New(ctx, projects, carousel, swipeCells)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
