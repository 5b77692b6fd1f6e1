package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// LineKind tags the outcome of classifying a single input line.
type LineKind int

const (
	KindUnknown LineKind = iota
	KindTitle
	KindDateRange
	KindDate
	KindCourse
	KindStatus
	KindVenueHint
)

// String returns a short label for logging.
func (k LineKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindDateRange:
		return "date-range"
	case KindDate:
		return "date"
	case KindCourse:
		return "course"
	case KindStatus:
		return "status"
	case KindVenueHint:
		return "venue-hint"
	default:
		return "unknown"
	}
}

// Classification is the tagged result of matching one line. Text holds the
// cleaned capture: the title, the course name, or a date string ready for
// the date normalizer ("Apr 9" or "Apr 9, 2025").
type Classification struct {
	Kind LineKind
	Text string
}

const (
	weekdayPat = `(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun)[a-z]*`
	monthPat   = `[A-Za-z]+`
)

// Tournament blocks have no explicit delimiters; these ordered patterns are
// the only structure available. Bold markers (** pairs) are cosmetic and
// stripped from every capture.
var (
	// The keyword ends the title proper; a " - Lakeside Course" style tail
	// is captured too and stripped later by the standardizer.
	titlePattern = regexp.MustCompile(
		`^(?:\*\*)?\s*(.+?(?:Championship|Tournament|Cup|Series|Amateur|Open)(?:\s+-\s+[^*]+?)?)\s*(?:\*\*)?(?:\s*\*\*[^*]*\*\*)?\s*$`)

	dateRangePattern = regexp.MustCompile(
		`^(?:\*\*)?\s*` + weekdayPat + `,?\s+` + monthPat + `\s+\d{1,2}(?:,\s*\d{4})?\s*[-–]\s*` +
			weekdayPat + `,?\s+(` + monthPat + `)\s+(\d{1,2})(?:,\s*(\d{4}))?\s*(?:\*\*)?$`)

	singleDatePattern = regexp.MustCompile(
		`^(?:\*\*)?\s*` + weekdayPat + `,?\s+(` + monthPat + `)\s+(\d{1,2})(?:,\s*(\d{4}))?\s*(?:\*\*)?$`)

	// The venue name ends in a keyword; an optional comma tail carries a
	// city hint that the builder peels off.
	coursePattern = regexp.MustCompile(
		`^(?:\*\*)?\s*(.+?(?:Course|Club|GC|G&CC|Golf|Country|CC|National|International|Plantation)(?:,\s*[^,*]+?)?)\s*(?:\*\*)?$`)

	statusPattern = regexp.MustCompile(
		`^(?:\*\*)?\s*(OPEN|CLOSED|INVITATION LIST)\s*(?:\*\*)?$`)
)

var venueHintSubstrings = []string{"Country Club", "Golf Club", "Golf Course"}

// Classify applies the ordered matchers to a single trimmed line and returns
// the first match. Precedence is explicit: title, date-range, single date,
// course, status, then the venue-name heuristic. A date range keeps only
// its end date; tournaments are recorded by closing day.
func Classify(line string) Classification {
	if m := titlePattern.FindStringSubmatch(line); m != nil {
		return Classification{Kind: KindTitle, Text: strings.TrimSpace(m[1])}
	}

	if m := dateRangePattern.FindStringSubmatch(line); m != nil {
		return Classification{Kind: KindDateRange, Text: dateText(m[1], m[2], m[3])}
	}

	if m := singleDatePattern.FindStringSubmatch(line); m != nil {
		return Classification{Kind: KindDate, Text: dateText(m[1], m[2], m[3])}
	}

	if m := coursePattern.FindStringSubmatch(line); m != nil {
		return Classification{Kind: KindCourse, Text: strings.TrimSpace(m[1])}
	}

	if statusPattern.MatchString(line) {
		return Classification{Kind: KindStatus}
	}

	// Fallback heuristic: an undecorated line naming a venue. The builder
	// only applies this when the open record has no course yet.
	if !strings.HasPrefix(line, "**") {
		for _, sub := range venueHintSubstrings {
			if strings.Contains(line, sub) {
				return Classification{Kind: KindVenueHint, Text: line}
			}
		}
	}

	return Classification{Kind: KindUnknown}
}

// dateText assembles a month/day/optional-year capture into the form the
// date normalizer accepts.
func dateText(month, day, year string) string {
	if year == "" {
		return fmt.Sprintf("%s %s", month, day)
	}
	return fmt.Sprintf("%s %s, %s", month, day, year)
}
