package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order; the first layout that parses wins.
// MM/DD comes before DD/MM, so ambiguous strings like "04/05/2025"
// resolve to US month-first semantics.
var dateLayouts = []string{
	"01/02/2006",
	"01-02-2006",
	"2006-01-02",
	"2006/01/02",
	"01/02/06",
	"01-02-06",
	"02/01/2006",
	"02-01-2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// monthNumbers maps lowercase month names and 3-letter abbreviations to
// their 2-digit number.
var monthNumbers = map[string]string{
	"january": "01", "jan": "01",
	"february": "02", "feb": "02",
	"march": "03", "mar": "03",
	"april": "04", "apr": "04",
	"may": "05",
	"june": "06", "jun": "06",
	"july": "07", "jul": "07",
	"august": "08", "aug": "08",
	"september": "09", "sep": "09",
	"october": "10", "oct": "10",
	"november": "11", "nov": "11",
	"december": "12", "dec": "12",
}

var monthDayPattern = regexp.MustCompile(`^([A-Za-z]+)\.?\s+(\d{1,2})$`)

// Date normalizes a raw date string to canonical YYYY-MM-DD.
//
// A bare "Month Day" (no year) is completed with defaultYear. Otherwise the
// known layouts are tried in order. Unrecognized input is passed through
// unchanged with ok=false so callers can tell canonical output from
// best-effort raw text. Empty input stays empty.
func Date(raw, defaultYear string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	// "Month Day" with no year: substitute the default year. Without one
	// the input falls through to pass-through below.
	if matches := monthDayPattern.FindStringSubmatch(raw); matches != nil && defaultYear != "" {
		if month, ok := monthNumbers[strings.ToLower(matches[1])]; ok {
			day, err := strconv.Atoi(matches[2])
			if err == nil && day >= 1 && day <= 31 {
				return fmt.Sprintf("%s-%s-%02d", defaultYear, month, day), true
			}
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	// Could not normalize: pass through rather than erroring.
	return raw, false
}
