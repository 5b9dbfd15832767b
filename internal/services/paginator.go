package services

import (
	"strconv"

	"folio.dev/internal/models"
)

// PageSize is the number of cards shown per page
const PageSize = 10

// LinkFunc returns the URL that selects a page; nil leaves control URLs empty
type LinkFunc func(page int) string

// PageCount returns ceil(total/size); zero items means zero pages
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Window returns items[(page-1)*size : page*size] clamped to the slice bounds.
// Out-of-range pages yield an empty slice.
func Window[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	end := page * size
	start = max(0, min(start, len(items)))
	end = max(start, min(end, len(items)))
	return items[start:end]
}

// Paginate cuts out one page of projects and builds its control strip
func Paginate(items []models.Project, page int, link LinkFunc) models.Page {
	totalPages := PageCount(len(items), PageSize)
	url := func(n int) string {
		if link == nil {
			return ""
		}
		return link(n)
	}

	p := models.Page{
		Items:      Window(items, page, PageSize),
		Number:     page,
		Size:       PageSize,
		Total:      len(items),
		TotalPages: totalPages,
		Prev: models.PageControl{
			Label:    "previous",
			Page:     page - 1,
			Disabled: page <= 1,
		},
		Next: models.PageControl{
			Label:    "next",
			Page:     page + 1,
			Disabled: page >= totalPages,
		},
		Controls: make([]models.PageControl, 0, totalPages),
	}
	if !p.Prev.Disabled {
		p.Prev.URL = url(p.Prev.Page)
	}
	if !p.Next.Disabled {
		p.Next.URL = url(p.Next.Page)
	}

	for n := 1; n <= totalPages; n++ {
		c := models.PageControl{
			Label:    strconv.Itoa(n),
			Page:     n,
			Disabled: n == page,
			Active:   n == page,
		}
		if !c.Disabled {
			c.URL = url(n)
		}
		p.Controls = append(p.Controls, c)
	}

	return p
}
