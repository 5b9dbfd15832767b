// Package main provides the entry point for the folio CLI.
//
// folio serves a portfolio site built from a projects JSON catalog: a
// featured carousel, a filterable, paginated project listing and a detail
// overlay with an image gallery. The same catalog can be browsed in the
// terminal or exported as Markdown.
//
// Usage:
//
//	folio serve
//	folio browse
//	folio export --cat Web
//
// See --help for all available options.
package main

func main() {
	Execute()
}
