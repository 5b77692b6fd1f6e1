package geocode

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

func TestEnrichFillsOnlyMissingFields(t *testing.T) {
	records := []*record.Record{
		{Name: "A", Course: "Oakmont Country Club", City: "Existing City"},
		{Name: "B", Course: "Fox Chapel Golf Club"},
	}

	lookup := func(_ context.Context, course, state string) (*Location, error) {
		return &Location{City: "Resolved", State: "PA", Zip: "15139"}, nil
	}

	Enrich(context.Background(), records, lookup, "")

	if records[0].City != "Existing City" {
		t.Errorf("known city overwritten: %q", records[0].City)
	}
	if records[0].Zip != "15139" {
		t.Errorf("missing zip not filled on record A: %q", records[0].Zip)
	}
	if records[1].City != "Resolved" || records[1].State != "PA" || records[1].Zip != "15139" {
		t.Errorf("record B not enriched: %+v", records[1])
	}
}

func TestEnrichAppliesDefaultState(t *testing.T) {
	records := []*record.Record{
		{Name: "A", Course: "Oakmont Country Club"},
		{Name: "B", Course: "Shadow Creek Golf Course", State: "NV"},
	}

	var mu sync.Mutex
	seenStates := make(map[string]string)
	lookup := func(_ context.Context, course, state string) (*Location, error) {
		mu.Lock()
		seenStates[course] = state
		mu.Unlock()
		return nil, nil
	}

	Enrich(context.Background(), records, lookup, "pennsylvania")

	if records[0].State != "PA" {
		t.Errorf("default state not applied/normalized: %q", records[0].State)
	}
	if records[1].State != "NV" {
		t.Errorf("existing state overwritten: %q", records[1].State)
	}
	if seenStates["Oakmont Country Club"] != "PA" {
		t.Errorf("lookup saw state %q, want PA", seenStates["Oakmont Country Club"])
	}
}

func TestEnrichSkipsCompleteAndCourselessRecords(t *testing.T) {
	records := []*record.Record{
		{Name: "complete", Course: "Oakmont Country Club", City: "Oakmont", State: "PA", Zip: "15139"},
		{Name: "courseless"},
	}

	var calls int
	var mu sync.Mutex
	lookup := func(_ context.Context, course, state string) (*Location, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil, nil
	}

	Enrich(context.Background(), records, lookup, "")

	if calls != 0 {
		t.Errorf("expected no lookups, got %d", calls)
	}
}

func TestEnrichToleratesFailures(t *testing.T) {
	records := []*record.Record{
		{Name: "A", Course: "Oakmont Country Club", State: "PA"},
	}

	lookup := func(_ context.Context, course, state string) (*Location, error) {
		return nil, errors.New("connection refused")
	}

	Enrich(context.Background(), records, lookup, "")

	// Gaps stay intact; nothing panics or aborts.
	if records[0].City != "" || records[0].Zip != "" {
		t.Errorf("failed lookup mutated record: %+v", records[0])
	}
}

func TestEnrichManyRecords(t *testing.T) {
	var records []*record.Record
	for i := 0; i < 32; i++ {
		records = append(records, &record.Record{Name: "T", Course: "Oakmont Country Club"})
	}

	lookup := func(_ context.Context, course, state string) (*Location, error) {
		return &Location{City: "Oakmont", State: "PA"}, nil
	}

	Enrich(context.Background(), records, lookup, "")

	for i, r := range records {
		if r.City != "Oakmont" {
			t.Fatalf("record %d not enriched", i)
		}
	}
}
