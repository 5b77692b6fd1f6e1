// Package filter narrows an extracted record set before output.
//
// Filters combine date ranges, categories, course/city substrings, and
// state codes. Every active criterion must match; an empty filter passes
// everything through.
//
// Example usage:
//
//	f := filter.New()
//	f.WeekendsOnly = true
//	f.Courses = []string{"Oakmont"}
//
//	filtered := f.Apply(records)
package filter

import (
	"strings"
	"time"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

// Filter represents record filtering criteria.
type Filter struct {
	// Date range filtering against the record's canonical date
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// Category filtering (exact match, case-insensitive)
	Categories []string `json:"categories,omitempty"`

	// Course name filtering (case-insensitive substring match)
	Courses []string `json:"courses,omitempty"`

	// Weekend-only filtering (Saturday/Sunday)
	WeekendsOnly bool `json:"weekends_only,omitempty"`

	// State filtering (exact match, case-insensitive)
	States []string `json:"states,omitempty"`

	// City filtering (case-insensitive substring match)
	Cities []string `json:"cities,omitempty"`
}

// New creates an empty filter with no active criteria.
// The filter will match all records until criteria are added.
func New() *Filter {
	return &Filter{
		Categories: []string{},
		Courses:    []string{},
		States:     []string{},
		Cities:     []string{},
	}
}

// IsEmpty checks if the filter has any active criteria.
// Returns true if the filter would match all records.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Categories) == 0 &&
		len(f.Courses) == 0 &&
		!f.WeekendsOnly &&
		len(f.States) == 0 &&
		len(f.Cities) == 0
}

// Matches checks if a record matches all active filter criteria.
// An empty filter matches all records.
//
// Matching logic:
//   - Date range: record date must be within DateFrom and DateTo (inclusive)
//   - Categories: record category must equal one of the names (case-insensitive)
//   - Courses: record course must contain at least one name (case-insensitive)
//   - Cities: record city must contain at least one name (case-insensitive)
//   - States: record state must match at least one code (case-insensitive)
//   - WeekendsOnly: record must fall on Saturday or Sunday
//
// Date-based criteria pass records with no date; a date filter should
// narrow the set, not silently drop every record the extractor could not
// date.
func (f *Filter) Matches(r *record.Record) bool {
	if f.IsEmpty() {
		return true
	}

	recordDate := parseRecordDate(r.Date)

	if f.DateFrom != nil && recordDate != nil {
		if recordDate.Before(*f.DateFrom) {
			return false
		}
	}

	if f.DateTo != nil && recordDate != nil {
		if recordDate.After(*f.DateTo) {
			return false
		}
	}

	if f.WeekendsOnly && recordDate != nil {
		weekday := recordDate.Weekday()
		if weekday != time.Saturday && weekday != time.Sunday {
			return false
		}
	}

	if len(f.Categories) > 0 {
		matched := false
		for _, cat := range f.Categories {
			if strings.EqualFold(string(r.Category), cat) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Courses) > 0 {
		matched := false
		courseLower := strings.ToLower(r.Course)
		for _, course := range f.Courses {
			if strings.Contains(courseLower, strings.ToLower(course)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.States) > 0 {
		matched := false
		for _, state := range f.States {
			if strings.EqualFold(r.State, state) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Cities) > 0 {
		matched := false
		cityLower := strings.ToLower(r.City)
		for _, city := range f.Cities {
			if strings.Contains(cityLower, strings.ToLower(city)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// Apply applies the filter to a record set and returns only matching records.
// If the filter is empty, returns the original slice unchanged.
func (f *Filter) Apply(records []*record.Record) []*record.Record {
	if f.IsEmpty() {
		return records
	}

	filtered := make([]*record.Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// parseRecordDate parses a canonical YYYY-MM-DD record date. Returns nil
// for empty or unparseable dates.
func parseRecordDate(date string) *time.Time {
	if date == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	return &t
}
