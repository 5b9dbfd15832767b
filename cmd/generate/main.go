package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"folio.dev/internal/generation"
)

// catalogPath is where the site expects its catalog, relative to the site root
var catalogPath = filepath.Join("assets", "data", "projects.json")

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <site-root>")
		fmt.Println("       generate <site-root> <images-dir>  (images dir relative to the site root)")
		os.Exit(1)
	}

	siteRoot := os.Args[1]
	imagesDir := generation.DefaultImagesDir
	if len(os.Args) > 2 {
		imagesDir = filepath.ToSlash(os.Args[2])
	}

	fmt.Printf("Scanning %s...\n", filepath.Join(siteRoot, imagesDir))
	scanned, err := generation.Scan(os.DirFS(siteRoot), imagesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to scan images: %v\n", err)
		os.Exit(1)
	}

	// Keep whatever is already in the catalog
	out := filepath.Join(siteRoot, catalogPath)
	catalog, err := readCatalog(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read existing catalog: %v\n", err)
		os.Exit(1)
	}
	existing := catalog.Len()

	added, err := catalog.Merge(scanned)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to merge catalog: %v\n", err)
		os.Exit(1)
	}
	for _, p := range added {
		fmt.Printf("  Added %s (%s)\n", p.ID, p.Title)
	}

	var buf bytes.Buffer
	if err := catalog.Write(&buf); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode catalog: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d projects, %d new)\n", out, existing+len(added), len(added))
}

// readCatalog opens the catalog at path; a missing file is an empty catalog
func readCatalog(path string) (*generation.Catalog, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &generation.Catalog{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return generation.ReadCatalog(f)
}
