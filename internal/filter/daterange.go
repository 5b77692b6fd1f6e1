package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	monthPat = `(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december)`

	sameMonthRangePattern  = regexp.MustCompile(`(?i)^` + monthPat + `\s+(\d{1,2})\s*-\s*(\d{1,2})$`)
	crossMonthRangePattern = regexp.MustCompile(`(?i)^` + monthPat + `\s+(\d{1,2})\s*-\s*` + monthPat + `\s+(\d{1,2})$`)
	monthSpanPattern       = regexp.MustCompile(`(?i)^` + monthPat + `\s*-\s*` + monthPat + `$`)
	wholeMonthPattern      = regexp.MustCompile(`(?i)^` + monthPat + `$`)
)

// ParseDateRange parses a date range string into start and end times.
//
// Supported formats:
//   - "Mar 1-15" or "March 1-15" - Same month, different days
//   - "March 1 - April 15" - Different months
//   - "March - April" - First day of one month through last day of another
//   - "March" - Entire month
//
// Months carry no year, so one must be inferred. When year is non-zero it
// is used directly (this is how the CLI threads --default-year through).
// When year is zero, a month earlier than the current month is assumed to
// be next year; for cross-month ranges, an end month before the start
// month rolls into the following year.
//
// Returns (dateFrom, dateTo, error). Times are in UTC; start is at
// 00:00:00 and end at 23:59:59 so the range is inclusive of both days.
func ParseDateRange(input string, year int) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	if matches := sameMonthRangePattern.FindStringSubmatch(input); matches != nil {
		month := parseMonth(matches[1])

		day1, err := parseDay(matches[2])
		if err != nil {
			return nil, nil, err
		}
		day2, err := parseDay(matches[3])
		if err != nil {
			return nil, nil, err
		}

		y := yearForMonth(month, year)
		from := time.Date(y, month, day1, 0, 0, 0, 0, time.UTC)
		to := time.Date(y, month, day2, 23, 59, 59, 0, time.UTC)

		if from.After(to) {
			return nil, nil, fmt.Errorf("start date must be before end date")
		}
		return &from, &to, nil
	}

	if matches := crossMonthRangePattern.FindStringSubmatch(input); matches != nil {
		month1 := parseMonth(matches[1])
		month2 := parseMonth(matches[3])

		day1, err := parseDay(matches[2])
		if err != nil {
			return nil, nil, err
		}
		day2, err := parseDay(matches[4])
		if err != nil {
			return nil, nil, err
		}

		year1 := yearForMonth(month1, year)
		year2 := yearForMonth(month2, year)

		// An end month before the start month wraps into the next year.
		if month2 < month1 {
			year2++
		}

		from := time.Date(year1, month1, day1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year2, month2, day2, 23, 59, 59, 0, time.UTC)

		if from.After(to) {
			return nil, nil, fmt.Errorf("start date must be before end date")
		}
		return &from, &to, nil
	}

	if matches := monthSpanPattern.FindStringSubmatch(input); matches != nil {
		month1 := parseMonth(matches[1])
		month2 := parseMonth(matches[2])

		year1 := yearForMonth(month1, year)
		year2 := yearForMonth(month2, year)
		if month2 < month1 {
			year2++
		}

		from := time.Date(year1, month1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year2, month2+1, 0, 23, 59, 59, 0, time.UTC)

		return &from, &to, nil
	}

	if matches := wholeMonthPattern.FindStringSubmatch(input); matches != nil {
		month := parseMonth(matches[1])

		y := yearForMonth(month, year)
		from := time.Date(y, month, 1, 0, 0, 0, 0, time.UTC)
		// Day zero of the next month is the last day of this one.
		to := time.Date(y, month+1, 0, 23, 59, 59, 0, time.UTC)

		return &from, &to, nil
	}

	return nil, nil, fmt.Errorf("invalid date range format. Use 'Mar 1-15', 'March 1 - April 15', 'March - April', or 'March'")
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("invalid day: %s", s)
	}
	return day, nil
}

// parseMonth converts a month name to time.Month. The caller's regex has
// already constrained the name, so lookup misses cannot happen.
func parseMonth(name string) time.Month {
	name = strings.ToLower(strings.TrimSpace(name))

	months := map[string]time.Month{
		"jan": time.January, "january": time.January,
		"feb": time.February, "february": time.February,
		"mar": time.March, "march": time.March,
		"apr": time.April, "april": time.April,
		"may": time.May,
		"jun": time.June, "june": time.June,
		"jul": time.July, "july": time.July,
		"aug": time.August, "august": time.August,
		"sep": time.September, "september": time.September,
		"oct": time.October, "october": time.October,
		"nov": time.November, "november": time.November,
		"dec": time.December, "december": time.December,
	}

	return months[name]
}

// yearForMonth picks the year a bare month refers to. A caller-supplied
// year wins; otherwise months already past this year roll to the next.
func yearForMonth(month time.Month, year int) int {
	if year != 0 {
		return year
	}

	now := time.Now()
	y := now.Year()
	if month < now.Month() {
		y++
	}
	return y
}
