package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGalleryCmd creates the gallery command.
func NewGalleryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gallery <project-id>",
		Short: "Resolve and print a project's gallery images",
		Long: `Gallery probes the project's image folder for 1.jpg, 2.jpg, ... and prints
each image found, one per line. When nothing is found the cover image path
is printed on its own.`,
		Args: cobra.ExactArgs(1),
		RunE: runGalleryCmd,
	}
}

func runGalleryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	projects := newProjectService(cmd.Context(), cfg, logger)
	images, err := projects.Gallery(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	for _, img := range images {
		fmt.Fprintln(cmd.OutOrStdout(), img)
	}
	return nil
}
