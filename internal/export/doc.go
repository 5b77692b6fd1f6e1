// Package export serializes finalized tournament records: CSV and a
// "Tournaments" spreadsheet sheet with a fixed 7-column layout, a JSON
// envelope, and an iCalendar feed for dated records. Straight
// serializations of the record sequence; no extraction logic lives here.
package export
