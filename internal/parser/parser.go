package parser

import (
	"strings"

	"github.com/pfrederiksen/teesheet-extract/internal/logger"
	"github.com/pfrederiksen/teesheet-extract/internal/normalize"
	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

// Parse reconstructs tournament records from loosely formatted tee-sheet
// text. It is a single left-to-right pass with no lookahead: a title line
// opens a record, subsequent lines fill it in, and the next title line (or
// end of input) closes it. defaultYear completes dates that carry no year.
//
// Parse is deterministic and side-effect free apart from debug traces of
// skipped lines. Text with no title lines yields an empty slice.
func Parse(text, defaultYear string) []*record.Record {
	records := make([]*record.Record, 0)
	var current *record.Record
	position := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		c := Classify(line)
		switch c.Kind {
		case KindTitle:
			// Emit the open record first; the name guard drops records
			// that never got a usable title.
			if current.Complete() {
				records = append(records, current)
			}
			current = record.New(c.Text, line, position)
			current.Category = inferCategory(c.Text)
			position++

		case KindDate, KindDateRange:
			if current == nil {
				continue // a date cannot retroactively attach
			}
			current.Date, _ = normalize.Date(c.Text, defaultYear)

		case KindCourse:
			if current == nil {
				continue
			}
			current.Course = c.Text
			// A comma in the course text carries a city hint.
			if i := strings.Index(c.Text, ","); i >= 0 {
				current.City = strings.TrimSpace(c.Text[i+1:])
			}

		case KindStatus:
			// Registration status lines carry no record data.

		case KindVenueHint:
			if current != nil && current.Course == "" {
				current.Course = c.Text
			}

		default:
			logger.Debug("skipping unclassified line", logger.Fields{"line": line})
		}
	}

	if current.Complete() {
		records = append(records, current)
	}

	for _, r := range records {
		Standardize(r)
	}

	return records
}
