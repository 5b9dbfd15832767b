package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"folio.dev/internal/chrome"
	"folio.dev/internal/handlers"
	"folio.dev/internal/render"
	"folio.dev/internal/telemetry"
)

// maxSlides bounds the featured carousel
const maxSlides = 5

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio site over HTTP",
		Long: `Serve renders the home page, the project listing and the project
detail overlay, and exposes the catalog as JSON under /api.

Examples:
  # Serve on the default address (:8080)
  folio serve

  # Serve another catalog on another port
  folio serve --addr :9000 --catalog https://example.com/projects.json`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", "", "Listen address (overrides server_addr)")
	cmd.Flags().String("catalog", "", "Catalog file path or URL (overrides catalog_source)")

	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.ServerAddr = addr
	}
	if src, _ := cmd.Flags().GetString("catalog"); src != "" {
		cfg.CatalogSource = src
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	projects := newProjectService(ctx, cfg, logger)

	renderer, err := render.New(cfg.ImageBaseURL)
	if err != nil {
		return err
	}

	carousel := chrome.NewCarousel(min(len(projects.GetAll()), maxSlides), cfg.CarouselInterval)
	carousel.Start()
	defer carousel.Stop()

	router := handlers.SetupRoutes(cfg, handlers.Deps{
		Projects: projects,
		Renderer: renderer,
		Carousel: carousel,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.ServerAddr, "catalog", cfg.CatalogSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
