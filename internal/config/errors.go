package config

import "errors"

// Configuration errors returned by Load and Validate
var (
	ErrConfigNotFound          = errors.New("configuration file not found")
	ErrNoCatalogSource         = errors.New("no catalog source configured")
	ErrInvalidListingPath      = errors.New("invalid listing path: must start with / and not be the root")
	ErrInvalidGalleryLimit     = errors.New("invalid max gallery images: must be positive")
	ErrInvalidTimeout          = errors.New("invalid http timeout: must be non-negative")
	ErrInvalidCarouselInterval = errors.New("invalid carousel interval: must be positive")
	ErrInvalidSwipeThreshold   = errors.New("invalid swipe threshold: must be positive")
	ErrInvalidLogFormat        = errors.New("invalid log format: must be text or json")
)
