package filter

import (
	"testing"
	"time"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

func testRecords() []*record.Record {
	return []*record.Record{
		{
			ID:       "spring",
			Date:     "2025-04-09", // Wednesday
			Name:     "Spring Open",
			Course:   "Oakmont Country Club",
			Category: record.CategoryMens,
			City:     "Oakmont",
			State:    "PA",
		},
		{
			ID:       "seniors",
			Date:     "2025-05-17", // Saturday
			Name:     "Allegheny Senior Championship",
			Course:   "Fox Chapel Golf Club",
			Category: record.CategorySeniors,
			City:     "Pittsburgh",
			State:    "PA",
		},
		{
			ID:       "undated",
			Name:     "Keystone Junior Tournament",
			Course:   "Hidden Valley Golf Course",
			Category: record.CategoryJuniors,
			State:    "MD",
		},
	}
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	f := New()
	if !f.IsEmpty() {
		t.Error("new filter should be empty")
	}

	records := testRecords()
	filtered := f.Apply(records)
	if len(filtered) != len(records) {
		t.Errorf("empty filter dropped records: got %d, want %d", len(filtered), len(records))
	}
}

func TestFilterByCategory(t *testing.T) {
	f := New()
	f.Categories = []string{"seniors"}

	filtered := f.Apply(testRecords())
	if len(filtered) != 1 || filtered[0].ID != "seniors" {
		t.Errorf("category filter: got %d records, want the seniors record", len(filtered))
	}
}

func TestFilterByCourseSubstring(t *testing.T) {
	f := New()
	f.Courses = []string{"fox chapel"}

	filtered := f.Apply(testRecords())
	if len(filtered) != 1 || filtered[0].Course != "Fox Chapel Golf Club" {
		t.Errorf("course filter: got %+v", filtered)
	}
}

func TestFilterByState(t *testing.T) {
	f := New()
	f.States = []string{"pa"}

	filtered := f.Apply(testRecords())
	if len(filtered) != 2 {
		t.Errorf("state filter: got %d records, want 2", len(filtered))
	}
}

func TestFilterByCity(t *testing.T) {
	f := New()
	f.Cities = []string{"Pittsburgh"}

	filtered := f.Apply(testRecords())
	if len(filtered) != 1 || filtered[0].ID != "seniors" {
		t.Errorf("city filter: got %+v", filtered)
	}
}

func TestFilterByDateRange(t *testing.T) {
	from := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC)

	f := New()
	f.DateFrom = &from
	f.DateTo = &to

	filtered := f.Apply(testRecords())

	// The May record matches; the undated record passes because date
	// criteria do not exclude records with no date.
	if len(filtered) != 2 {
		t.Fatalf("date filter: got %d records, want 2", len(filtered))
	}
	if filtered[0].ID != "seniors" || filtered[1].ID != "undated" {
		t.Errorf("date filter kept wrong records: %v, %v", filtered[0].ID, filtered[1].ID)
	}
}

func TestFilterWeekendsOnly(t *testing.T) {
	f := New()
	f.WeekendsOnly = true

	filtered := f.Apply(testRecords())
	if len(filtered) != 2 {
		t.Fatalf("weekend filter: got %d records, want 2", len(filtered))
	}
	if filtered[0].ID != "seniors" {
		t.Errorf("weekend filter dropped the Saturday record: %v", filtered[0].ID)
	}
}

func TestFilterCombinesCriteria(t *testing.T) {
	f := New()
	f.States = []string{"PA"}
	f.Categories = []string{string(record.CategoryMens)}

	filtered := f.Apply(testRecords())
	if len(filtered) != 1 || filtered[0].ID != "spring" {
		t.Errorf("combined filter: got %+v", filtered)
	}
}

func TestFilterNoMatches(t *testing.T) {
	f := New()
	f.States = []string{"CA"}

	filtered := f.Apply(testRecords())
	if len(filtered) != 0 {
		t.Errorf("expected no matches, got %d", len(filtered))
	}
}
