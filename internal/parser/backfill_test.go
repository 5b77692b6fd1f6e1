package parser

import (
	"testing"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

func TestBackfillPropagatesCityAndState(t *testing.T) {
	records := []*record.Record{
		{Name: "Spring Open", Course: "Oakmont Country Club", City: "Pittsburgh", State: "PA"},
		{Name: "Fall Cup", Course: "Oakmont Country Club"},
	}

	Backfill(records)

	if records[1].City != "Pittsburgh" || records[1].State != "PA" {
		t.Errorf("expected city/state propagated, got city=%q state=%q", records[1].City, records[1].State)
	}
}

func TestBackfillCopiesZipOnlyIntoGaps(t *testing.T) {
	records := []*record.Record{
		{Name: "A", Course: "Oakmont Country Club", City: "Pittsburgh", State: "PA", Zip: "15139"},
		{Name: "B", Course: "Oakmont Country Club", Zip: "99999"},
		{Name: "C", Course: "Oakmont Country Club"},
	}

	Backfill(records)

	if records[1].Zip != "99999" {
		t.Errorf("existing zip overwritten: got %q", records[1].Zip)
	}
	if records[2].Zip != "15139" {
		t.Errorf("missing zip not filled: got %q", records[2].Zip)
	}
}

func TestBackfillOverwritesBothFieldsTogether(t *testing.T) {
	// A member missing only one of city/state gets both from the reference.
	records := []*record.Record{
		{Name: "A", Course: "Oakmont Country Club", City: "Pittsburgh", State: "PA"},
		{Name: "B", Course: "Oakmont Country Club", City: "Oakmont"},
	}

	Backfill(records)

	if records[1].City != "Pittsburgh" || records[1].State != "PA" {
		t.Errorf("expected wholesale copy, got city=%q state=%q", records[1].City, records[1].State)
	}
}

func TestBackfillReferenceIsFirstInSequence(t *testing.T) {
	records := []*record.Record{
		{Name: "A", Course: "Oakmont Country Club"},
		{Name: "B", Course: "Oakmont Country Club", City: "Pittsburgh", State: "PA"},
		{Name: "C", Course: "Oakmont Country Club", City: "Oakmont", State: "PA"},
	}

	Backfill(records)

	if records[0].City != "Pittsburgh" {
		t.Errorf("expected first complete record as reference, got city=%q", records[0].City)
	}
	if records[2].City != "Oakmont" {
		t.Errorf("complete member must not be touched, got city=%q", records[2].City)
	}
}

func TestBackfillNoReferenceLeavesGroupUnchanged(t *testing.T) {
	records := []*record.Record{
		{Name: "A", Course: "Oakmont Country Club", City: "Pittsburgh"}, // no state
		{Name: "B", Course: "Oakmont Country Club"},
	}

	Backfill(records)

	if records[1].City != "" || records[1].State != "" {
		t.Errorf("group without reference changed: city=%q state=%q", records[1].City, records[1].State)
	}
}

func TestBackfillIgnoresCourselessAndOtherCourses(t *testing.T) {
	records := []*record.Record{
		{Name: "A", Course: "Oakmont Country Club", City: "Pittsburgh", State: "PA"},
		{Name: "B"}, // no course, excluded from grouping
		{Name: "C", Course: "Fox Chapel Golf Club"},
	}

	Backfill(records)

	if records[1].City != "" || records[2].City != "" {
		t.Errorf("records outside the group changed: %q, %q", records[1].City, records[2].City)
	}
}
