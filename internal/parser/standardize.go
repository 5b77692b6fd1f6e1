package parser

import (
	"regexp"
	"strings"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

var (
	annotationPattern   = regexp.MustCompile(`\*\*[^*]*\*\*`)
	courseSuffixPattern = regexp.MustCompile(`\s*-\s*[^-]*\bCourse\s*$`)
)

// Category keywords checked in fixed priority order; the first match wins.
// Word-bounded so "Women's" never trips the Men's check.
var (
	seniorsPattern = regexp.MustCompile(`(?i)\bseniors?\b`)
	mensPattern    = regexp.MustCompile(`(?i)\bmen'?s\b`)
	amateurPattern = regexp.MustCompile(`(?i)\bamateur\b`)
	juniorsPattern = regexp.MustCompile(`(?i)\bjuniors?\b`)
	womensPattern  = regexp.MustCompile(`(?i)\b(?:women'?s|ladies)\b`)
)

// Standardize finalizes an emitted record's name and category.
//
// Decorative bold annotations are stripped from the name along with any
// trailing " - ... Course" suffix (the course is captured separately). The
// category is then re-derived from the cleaned name.
func Standardize(r *record.Record) {
	name := annotationPattern.ReplaceAllString(r.Name, "")
	name = courseSuffixPattern.ReplaceAllString(name, "")
	r.Name = strings.TrimSpace(name)

	r.Category = inferCategory(r.Name)
}

// DefaultCourses fills empty course fields with the record's cleaned name:
// single-course venues are routinely named after the tournament. Applied as
// a pipeline step before geocoding so lookups have something to search on,
// not during Parse, so a bare parse still reports course as missing.
func DefaultCourses(records []*record.Record) {
	for _, r := range records {
		if r.Course == "" {
			r.Course = r.Name
		}
	}
}

// inferCategory scans a title for category keywords. Seniors is checked
// first, Women's last; unmatched titles default to Men's.
func inferCategory(name string) record.Category {
	switch {
	case seniorsPattern.MatchString(name):
		return record.CategorySeniors
	case mensPattern.MatchString(name):
		return record.CategoryMens
	case amateurPattern.MatchString(name):
		return record.CategoryAmateur
	case juniorsPattern.MatchString(name):
		return record.CategoryJuniors
	case womensPattern.MatchString(name):
		return record.CategoryWomens
	default:
		return record.CategoryMens
	}
}
