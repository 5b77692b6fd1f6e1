package cli

import (
	"testing"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

func sortableRecords() []*record.Record {
	return []*record.Record{
		{Date: "2025-06-01", Name: "Summer Cup", State: "PA"},
		{Name: "Undated Tournament", State: "MD"},
		{Date: "2025-04-09", Name: "Spring Open", State: "PA"},
	}
}

func TestSortByDate(t *testing.T) {
	records := sortableRecords()
	sortRecords(records, SortByDate)

	if records[0].Name != "Spring Open" || records[1].Name != "Summer Cup" {
		t.Errorf("date sort order wrong: %v, %v", records[0].Name, records[1].Name)
	}
	if records[2].Name != "Undated Tournament" {
		t.Errorf("undated record should sort last, got %v", records[2].Name)
	}
}

func TestSortByState(t *testing.T) {
	records := sortableRecords()
	sortRecords(records, SortByState)

	if records[0].State != "MD" {
		t.Errorf("state sort order wrong: first state = %v", records[0].State)
	}
	// Within PA, dates decide.
	if records[1].Name != "Spring Open" || records[2].Name != "Summer Cup" {
		t.Errorf("same-state date tiebreak wrong: %v, %v", records[1].Name, records[2].Name)
	}
}

func TestSortByName(t *testing.T) {
	records := sortableRecords()
	sortRecords(records, SortByName)

	want := []string{"Spring Open", "Summer Cup", "Undated Tournament"}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("name sort position %d = %v, want %v", i, records[i].Name, name)
		}
	}
}

func TestUnknownSortOrderLeavesOrder(t *testing.T) {
	records := sortableRecords()
	sortRecords(records, SortOrder("bogus"))

	if records[0].Name != "Summer Cup" {
		t.Errorf("unknown sort order reordered records: %v", records[0].Name)
	}
}
