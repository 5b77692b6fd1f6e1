package record

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

// Category is the competition bracket a tournament belongs to.
type Category string

const (
	CategoryMens    Category = "Men's"
	CategoryWomens  Category = "Women's"
	CategorySeniors Category = "Seniors"
	CategoryAmateur Category = "Amateur"
	CategoryJuniors Category = "Junior's"
)

// Record represents a single tournament extracted from a tee sheet.
// Empty string fields mean the value is unknown; only Name is required
// for a record to be emitted.
type Record struct {
	ID       string   `json:"id"`
	Date     string   `json:"date,omitempty"` // canonical YYYY-MM-DD when normalized
	Name     string   `json:"name"`
	Course   string   `json:"course,omitempty"`
	Category Category `json:"category"`
	City     string   `json:"city,omitempty"`
	State    string   `json:"state,omitempty"`
	Zip      string   `json:"zip,omitempty"`
	Raw      string   `json:"raw,omitempty"` // title line the record was opened from
}

// GenerateID creates a deterministic ID for a record based on its title line
// and position in the input, so repeated parses of the same text agree.
func GenerateID(raw string, position int) string {
	h := sha1.New()
	fmt.Fprintf(h, "%d|%s", position, raw)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// New creates a Record opened from a title line. All location fields start
// unknown; Category defaults to Men's until inference says otherwise.
func New(name, raw string, position int) *Record {
	return &Record{
		ID:       GenerateID(raw, position),
		Name:     strings.TrimSpace(name),
		Category: CategoryMens,
		Raw:      raw,
	}
}

// Complete reports whether the record is emittable: it carries a name.
// Every other field may legitimately stay unknown.
func (r *Record) Complete() bool {
	return r != nil && r.Name != ""
}

// Missing returns the names of fields still unknown, in export-column
// order. Used to build the patch worklist shown to the user.
func (r *Record) Missing() []string {
	var missing []string
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.Course == "" {
		missing = append(missing, "course")
	}
	if r.City == "" {
		missing = append(missing, "city")
	}
	if r.State == "" {
		missing = append(missing, "state")
	}
	if r.Zip == "" {
		missing = append(missing, "zip")
	}
	return missing
}

// Header is the fixed export column order shared by the CSV and XLSX
// serializers.
func Header() []string {
	return []string{"Date", "Name", "Course", "Category", "City", "State", "Zip"}
}

// Row returns the record's values in Header order.
func (r *Record) Row() []string {
	return []string{r.Date, r.Name, r.Course, string(r.Category), r.City, r.State, r.Zip}
}
