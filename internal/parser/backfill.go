package parser

import "github.com/pfrederiksen/teesheet-extract/internal/record"

// Backfill propagates known location data across records sharing a course.
//
// Records are grouped by exact course string (courseless records excluded).
// The first record in sequence order with both city and state known is the
// group's reference; every other member missing either field gets the
// reference's city and state copied wholesale, plus its zip when the target
// has none. Groups with no reference are left untouched. Runs after
// geocoding so resolved locations propagate to sibling records.
func Backfill(records []*record.Record) {
	groups := make(map[string][]*record.Record)
	courses := make([]string, 0)

	for _, r := range records {
		if r.Course == "" {
			continue
		}
		if _, seen := groups[r.Course]; !seen {
			courses = append(courses, r.Course)
		}
		groups[r.Course] = append(groups[r.Course], r)
	}

	for _, course := range courses {
		group := groups[course]

		var ref *record.Record
		for _, r := range group {
			if r.City != "" && r.State != "" {
				ref = r
				break
			}
		}
		if ref == nil {
			continue
		}

		for _, r := range group {
			if r == ref {
				continue
			}
			if r.City == "" || r.State == "" {
				// City and state travel together even if only one was missing.
				r.City = ref.City
				r.State = ref.State
				if r.Zip == "" && ref.Zip != "" {
					r.Zip = ref.Zip
				}
			}
		}
	}
}
