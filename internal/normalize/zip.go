package normalize

import (
	"regexp"
	"strings"
)

var zipPattern = regexp.MustCompile(`\d{5}`)

// Zip normalizes a zip code to its 5-digit form.
//
// The first 5-digit run is extracted; a ZIP+4 extension is discarded.
// Input with no 5-digit run is passed through unchanged with ok=false.
// Empty input stays empty.
func Zip(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if match := zipPattern.FindString(raw); match != "" {
		return match, true
	}

	return raw, false
}
