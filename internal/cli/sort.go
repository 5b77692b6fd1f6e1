package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate  SortOrder = "date"
	SortByState SortOrder = "state"
	SortByName  SortOrder = "name"
)

// sortRecords sorts records in place based on the specified sort order.
// Unrecognized orders leave the extraction order untouched.
func sortRecords(records []*record.Record, sortOrder SortOrder) {
	switch sortOrder {
	case SortByDate:
		sort.SliceStable(records, func(i, j int) bool {
			return compareByDate(records[i], records[j])
		})
	case SortByState:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].State != records[j].State {
				return records[i].State < records[j].State
			}
			return compareByDate(records[i], records[j])
		})
	case SortByName:
		sort.SliceStable(records, func(i, j int) bool {
			ni := strings.ToLower(records[i].Name)
			nj := strings.ToLower(records[j].Name)
			if ni != nj {
				return ni < nj
			}
			return compareByDate(records[i], records[j])
		})
	}
}

// compareByDate reports whether record i should come before record j.
// Canonical YYYY-MM-DD dates compare correctly as strings; undated records
// sort last.
func compareByDate(i, j *record.Record) bool {
	if i.Date != "" && j.Date != "" {
		return i.Date < j.Date
	}

	if i.Date != "" {
		return true
	}
	if j.Date != "" {
		return false
	}

	if i.State != j.State {
		return i.State < j.State
	}
	return strings.ToLower(i.Name) < strings.ToLower(j.Name)
}
