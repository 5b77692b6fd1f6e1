package patch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/teesheet-extract/internal/normalize"
	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

// Override is one user-supplied correction, addressed by record ID. Only
// non-empty fields are applied.
type Override struct {
	ID       string `json:"id"`
	Date     string `json:"date,omitempty"`
	Name     string `json:"name,omitempty"`
	Course   string `json:"course,omitempty"`
	Category string `json:"category,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip,omitempty"`
}

// Document is the patch file format: a list of overrides.
type Document struct {
	Overrides []Override `json:"overrides"`
}

// Load reads a patch document from JSON.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing patch document: %w", err)
	}
	return &doc, nil
}

// Result reports what a patch application did.
type Result struct {
	Applied    int
	UnknownIDs []string
}

// Apply writes each override onto its record. Date, state, and zip pass
// through the normalizers; unknown IDs are collected rather than failing
// the whole patch. The override's year is used as-is, so dates should carry
// one.
func Apply(records []*record.Record, doc *Document) *Result {
	byID := make(map[string]*record.Record, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	result := &Result{}
	for _, o := range doc.Overrides {
		r, ok := byID[o.ID]
		if !ok {
			result.UnknownIDs = append(result.UnknownIDs, o.ID)
			continue
		}

		if o.Date != "" {
			r.Date, _ = normalize.Date(o.Date, "")
		}
		if o.Name != "" {
			r.Name = o.Name
		}
		if o.Course != "" {
			r.Course = o.Course
		}
		if o.Category != "" {
			r.Category = record.Category(o.Category)
		}
		if o.City != "" {
			r.City = o.City
		}
		if o.State != "" {
			r.State, _ = normalize.State(o.State)
		}
		if o.Zip != "" {
			r.Zip, _ = normalize.Zip(o.Zip)
		}
		result.Applied++
	}

	return result
}
