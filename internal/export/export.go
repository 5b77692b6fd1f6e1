package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

// Format identifies an export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatICS  Format = "ics"
)

// Write serializes the record sequence in the given format.
func Write(w io.Writer, records []*record.Record, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatJSON:
		return WriteJSON(w, records)
	case FormatXLSX:
		return WriteXLSX(w, records)
	case FormatICS:
		return WriteICS(w, records)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

// WriteCSV writes the records as CSV with the fixed 7-column header.
func WriteCSV(w io.Writer, records []*record.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(record.Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("writing record %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// jsonEnvelope wraps the record sequence with export metadata.
type jsonEnvelope struct {
	ExportedAt  string           `json:"exported_at"`
	Total       int              `json:"total"`
	Tournaments []*record.Record `json:"tournaments"`
}

// WriteJSON writes the records as an indented JSON document.
func WriteJSON(w io.Writer, records []*record.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonEnvelope{
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Total:       len(records),
		Tournaments: records,
	})
}
