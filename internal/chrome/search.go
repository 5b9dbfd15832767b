package chrome

import (
	"net/url"
	"strings"
)

// SearchTarget returns the listing URL carrying the trimmed input as q.
// An input that is blank after trimming yields ("", false).
func SearchTarget(listingPath, input string) (string, bool) {
	q := strings.TrimSpace(input)
	if q == "" {
		return "", false
	}
	return listingPath + "?" + url.Values{"q": {q}}.Encode(), true
}
