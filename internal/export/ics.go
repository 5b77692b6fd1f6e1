package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

// WriteICS writes the records as an iCalendar document, one VEVENT per
// record with a parseable date. Tournaments are blocked out 9 AM to 1 PM on
// their (closing) date.
func WriteICS(w io.Writer, records []*record.Record) error {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//teesheet-extract//tournaments//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	now := time.Now().UTC()
	for _, r := range records {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue // undated or unnormalized records have no calendar slot
		}

		start := time.Date(date.Year(), date.Month(), date.Day(), 9, 0, 0, 0, time.UTC)
		end := start.Add(4 * time.Hour)

		ics.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&ics, "UID:%s@teesheet-extract\r\n", r.ID)
		fmt.Fprintf(&ics, "DTSTAMP:%s\r\n", formatICSTime(now))
		fmt.Fprintf(&ics, "DTSTART:%s\r\n", formatICSTime(start))
		fmt.Fprintf(&ics, "DTEND:%s\r\n", formatICSTime(end))
		fmt.Fprintf(&ics, "SUMMARY:%s\r\n", escapeICS(fmt.Sprintf("%s (%s)", r.Name, r.Category)))
		fmt.Fprintf(&ics, "LOCATION:%s\r\n", escapeICS(icsLocation(r)))
		ics.WriteString("STATUS:CONFIRMED\r\n")
		ics.WriteString("TRANSP:OPAQUE\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")

	_, err := io.WriteString(w, ics.String())
	return err
}

// icsLocation assembles the most specific location line available.
func icsLocation(r *record.Record) string {
	parts := make([]string, 0, 4)
	if r.Course != "" {
		parts = append(parts, r.Course)
	}
	if r.City != "" {
		parts = append(parts, r.City)
	}
	if r.State != "" {
		parts = append(parts, r.State)
	}
	if r.Zip != "" {
		parts = append(parts, r.Zip)
	}
	return strings.Join(parts, ", ")
}

// formatICSTime formats a time as an iCalendar UTC datetime.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes text per RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
