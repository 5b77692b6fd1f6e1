package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
	FormatXLSX OutputFormat = "xlsx"
	FormatICS  OutputFormat = "ics"
)

// writeText outputs records as human-readable text. Records with gaps get
// a "missing:" line naming the fields still empty, so the output doubles
// as a worklist for a patch file.
func writeText(w io.Writer, records []*record.Record, verbose bool) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records extracted.")
		return nil
	}

	complete := 0
	for _, r := range records {
		date := r.Date
		if date == "" {
			date = "(no date)"
		}

		fmt.Fprintf(w, "%s  %s", date, r.Name)
		if r.Category != "" {
			fmt.Fprintf(w, " (%s)", r.Category)
		}
		fmt.Fprintln(w)

		if loc := locationLine(r); loc != "" {
			fmt.Fprintf(w, "    %s\n", loc)
		}

		if missing := r.Missing(); len(missing) > 0 {
			fmt.Fprintf(w, "    missing: %s\n", strings.Join(missing, ", "))
		} else {
			complete++
		}

		if verbose {
			fmt.Fprintf(w, "    id: %s\n", r.ID)
			if r.Raw != "" {
				fmt.Fprintf(w, "    raw: %s\n", r.Raw)
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d records (%d complete, %d with gaps)\n",
		len(records), complete, len(records)-complete)
	return nil
}

// locationLine formats the course and whatever location fields are known,
// e.g. "Oakmont Country Club, Oakmont, PA 15139".
func locationLine(r *record.Record) string {
	parts := make([]string, 0, 3)
	if r.Course != "" {
		parts = append(parts, r.Course)
	}
	if r.City != "" {
		parts = append(parts, r.City)
	}
	if r.State != "" {
		if r.Zip != "" {
			parts = append(parts, r.State+" "+r.Zip)
		} else {
			parts = append(parts, r.State)
		}
	} else if r.Zip != "" {
		parts = append(parts, r.Zip)
	}
	return strings.Join(parts, ", ")
}
