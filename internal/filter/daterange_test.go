package filter

import (
	"testing"
	"time"
)

func TestParseDateRangeSameMonth(t *testing.T) {
	from, to, err := ParseDateRange("Mar 1-15", 2025)
	if err != nil {
		t.Fatalf("ParseDateRange failed: %v", err)
	}

	wantFrom := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, time.March, 15, 23, 59, 59, 0, time.UTC)

	if !from.Equal(wantFrom) {
		t.Errorf("from = %v, want %v", from, wantFrom)
	}
	if !to.Equal(wantTo) {
		t.Errorf("to = %v, want %v", to, wantTo)
	}
}

func TestParseDateRangeCrossMonth(t *testing.T) {
	from, to, err := ParseDateRange("March 20 - April 5", 2025)
	if err != nil {
		t.Fatalf("ParseDateRange failed: %v", err)
	}

	if from.Month() != time.March || from.Day() != 20 {
		t.Errorf("from = %v, want March 20", from)
	}
	if to.Month() != time.April || to.Day() != 5 {
		t.Errorf("to = %v, want April 5", to)
	}
}

func TestParseDateRangeCrossYear(t *testing.T) {
	from, to, err := ParseDateRange("December 20 - January 5", 2025)
	if err != nil {
		t.Fatalf("ParseDateRange failed: %v", err)
	}

	if from.Year() != 2025 {
		t.Errorf("from year = %d, want 2025", from.Year())
	}
	if to.Year() != 2026 {
		t.Errorf("to year = %d, want 2026 (end month wraps)", to.Year())
	}
}

func TestParseDateRangeMonthSpan(t *testing.T) {
	from, to, err := ParseDateRange("March - April", 2025)
	if err != nil {
		t.Fatalf("ParseDateRange failed: %v", err)
	}

	if from.Month() != time.March || from.Day() != 1 {
		t.Errorf("from = %v, want March 1", from)
	}
	if to.Month() != time.April || to.Day() != 30 {
		t.Errorf("to = %v, want April 30", to)
	}
}

func TestParseDateRangeWholeMonth(t *testing.T) {
	from, to, err := ParseDateRange("February", 2025)
	if err != nil {
		t.Fatalf("ParseDateRange failed: %v", err)
	}

	if from.Day() != 1 {
		t.Errorf("from day = %d, want 1", from.Day())
	}
	// 2025 is not a leap year.
	if to.Day() != 28 {
		t.Errorf("to day = %d, want 28", to.Day())
	}
}

func TestParseDateRangeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"gibberish", "next tuesday-ish"},
		{"backwards", "Mar 15-1"},
		{"bad day", "Mar 0-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseDateRange(tt.input, 2025); err == nil {
				t.Errorf("ParseDateRange(%q) expected error", tt.input)
			}
		})
	}
}

func TestParseDateRangeInfersYearWhenZero(t *testing.T) {
	from, _, err := ParseDateRange("March 1-2", 0)
	if err != nil {
		t.Fatalf("ParseDateRange failed: %v", err)
	}

	now := time.Now()
	wantYear := now.Year()
	if time.March < now.Month() {
		wantYear++
	}
	if from.Year() != wantYear {
		t.Errorf("inferred year = %d, want %d", from.Year(), wantYear)
	}
}
