// Package chrome holds the page-wide widgets that sit around the catalog:
// navigation dropdowns, the search box and the featured carousel.
package chrome

import (
	"net/url"
	"slices"
)

// Link is one dropdown entry
type Link struct {
	Label string
	Href  string
}

// Menu is a named dropdown and whether it is showing
type Menu struct {
	Name  string
	Links []Link
	Open  bool
}

// Dropdowns tracks the open/closed state of a set of menus.
// Toggling one menu leaves the others as they are; a click anywhere outside
// the menus closes all of them, a click inside a menu closes nothing.
type Dropdowns struct {
	menus   []Menu
	focused string
}

// NewDropdowns creates the set with every menu closed
func NewDropdowns(menus ...Menu) *Dropdowns {
	d := &Dropdowns{menus: slices.Clone(menus)}
	for i := range d.menus {
		d.menus[i].Open = false
	}
	return d
}

// Toggle flips the named menu and returns its new state
func (d *Dropdowns) Toggle(name string) bool {
	for i := range d.menus {
		if d.menus[i].Name == name {
			d.menus[i].Open = !d.menus[i].Open
			if !d.menus[i].Open && d.focused == name {
				d.focused = ""
			}
			return d.menus[i].Open
		}
	}
	return false
}

// ClickInside handles a click within the named menu: the menu takes focus and
// every menu keeps its state. It reports false when that menu is not showing.
func (d *Dropdowns) ClickInside(name string) bool {
	if !d.IsOpen(name) {
		return false
	}
	d.focused = name
	return true
}

// ClickOutside closes every menu
func (d *Dropdowns) ClickOutside() {
	for i := range d.menus {
		d.menus[i].Open = false
	}
	d.focused = ""
}

// Focused returns the menu that was last clicked into, if it is still open
func (d *Dropdowns) Focused() string {
	return d.focused
}

// IsOpen reports whether the named menu is showing
func (d *Dropdowns) IsOpen(name string) bool {
	for _, m := range d.menus {
		if m.Name == name {
			return m.Open
		}
	}
	return false
}

// Menus returns a copy of the menus in order
func (d *Dropdowns) Menus() []Menu {
	return slices.Clone(d.menus)
}

// CategoryMenu builds a dropdown linking each category to the listing page
func CategoryMenu(name string, categories []string, listingPath string) Menu {
	m := Menu{Name: name}
	for _, c := range categories {
		m.Links = append(m.Links, Link{
			Label: c,
			Href:  listingPath + "?" + url.Values{"cat": {c}}.Encode(),
		})
	}
	return m
}
