package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Default configuration values
const (
	DefaultServerAddr       = ":8080"
	DefaultCatalogSource    = "assets/data/projects.json"
	DefaultSiteRoot         = "."
	DefaultListingPath      = "/projects"
	DefaultMaxGalleryImages = 50
	DefaultHTTPTimeout      = 10 * time.Second
	DefaultCarouselInterval = 3000 * time.Millisecond
	DefaultSwipeThreshold   = 50
	DefaultLogFormat        = "text"

	// AppName is used for the XDG config directory
	AppName = "folio"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string `yaml:"server_addr"`

	// CatalogSource is a file path or an http(s) URL of the projects JSON
	CatalogSource string `yaml:"catalog_source"`

	// SiteRoot holds the assets/ tree; image paths in the catalog are relative to it
	SiteRoot string `yaml:"site_root"`

	// ImageBaseURL switches gallery probing to HEAD requests against this URL
	ImageBaseURL string `yaml:"image_base_url"`

	// ListingPath is where the search box sends its query
	ListingPath string `yaml:"listing_path"`

	// MaxGalleryImages caps the sequential image probe
	MaxGalleryImages int `yaml:"max_gallery_images"`

	HTTPTimeout      time.Duration `yaml:"http_timeout"`
	CarouselInterval time.Duration `yaml:"carousel_interval"`
	SwipeThreshold   int           `yaml:"swipe_threshold"`

	Verbose   bool   `yaml:"verbose"`
	LogFormat string `yaml:"log_format"`

	// Menus are extra navigation dropdowns shown next to the category menu
	Menus []Menu `yaml:"menus"`

	// ConfigFile is the file the values were read from, if any
	ConfigFile string `yaml:"-"`
}

// Menu is a named navigation dropdown
type Menu struct {
	Name  string `yaml:"name"`
	Links []Link `yaml:"links"`
}

// Link is one dropdown entry
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// NewConfig returns a Config populated with defaults
func NewConfig() *Config {
	return &Config{
		ServerAddr:       DefaultServerAddr,
		CatalogSource:    DefaultCatalogSource,
		SiteRoot:         DefaultSiteRoot,
		ListingPath:      DefaultListingPath,
		MaxGalleryImages: DefaultMaxGalleryImages,
		HTTPTimeout:      DefaultHTTPTimeout,
		CarouselInterval: DefaultCarouselInterval,
		SwipeThreshold:   DefaultSwipeThreshold,
		LogFormat:        DefaultLogFormat,
	}
}

// Load builds the configuration: defaults, then the YAML file, then environment.
// An explicit path that does not exist is an error; a missing default file is not.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	found := FindConfigFile(path)
	if path != "" && found == "" {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if found != "" {
		if err := cfg.loadFile(found); err != nil && !errors.Is(err, ErrConfigNotFound) {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides values from the environment
func (c *Config) applyEnv() {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		c.ServerAddr = addr
	}
	if src := os.Getenv("FOLIO_CATALOG"); src != "" {
		c.CatalogSource = src
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.CatalogSource == "" {
		return ErrNoCatalogSource
	}
	if !strings.HasPrefix(c.ListingPath, "/") || c.ListingPath == "/" {
		return ErrInvalidListingPath
	}
	if c.MaxGalleryImages <= 0 {
		return ErrInvalidGalleryLimit
	}
	if c.HTTPTimeout < 0 {
		return ErrInvalidTimeout
	}
	if c.CarouselInterval <= 0 {
		return ErrInvalidCarouselInterval
	}
	if c.SwipeThreshold <= 0 {
		return ErrInvalidSwipeThreshold
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return ErrInvalidLogFormat
	}
	return nil
}
