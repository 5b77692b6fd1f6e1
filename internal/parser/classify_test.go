package parser

import "testing"

func TestClassifyTitles(t *testing.T) {
	tests := []struct {
		line     string
		expected string
	}{
		{"**Spring Open**", "Spring Open"},
		{"Spring Open", "Spring Open"},
		{"**Allegheny Senior Championship**", "Allegheny Senior Championship"},
		{"Keystone Junior Tournament", "Keystone Junior Tournament"},
		{"**Laurel Cup** **NEW**", "Laurel Cup"},
		{"**Summer Series**", "Summer Series"},
		{"**State Amateur**", "State Amateur"},
		{"**Autumn Amateur - Lakeside Course**", "Autumn Amateur - Lakeside Course"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c := Classify(tt.line)
			if c.Kind != KindTitle {
				t.Fatalf("Classify(%q).Kind = %s, want title", tt.line, c.Kind)
			}
			if c.Text != tt.expected {
				t.Errorf("Classify(%q).Text = %q, want %q", tt.line, c.Text, tt.expected)
			}
		})
	}
}

func TestClassifyDates(t *testing.T) {
	tests := []struct {
		line     string
		kind     LineKind
		expected string
	}{
		{"Wed, Apr 9, 2025", KindDate, "Apr 9, 2025"},
		{"**Wed, Apr 9, 2025**", KindDate, "Apr 9, 2025"},
		{"Sat, Jun 21", KindDate, "Jun 21"},
		{"Saturday, June 21", KindDate, "June 21"},
		// Ranges keep only the end date.
		{"Mon, May 5 - Wed, May 14, 2025", KindDateRange, "May 14, 2025"},
		{"Mon, May 5, 2025 - Wed, May 14, 2025", KindDateRange, "May 14, 2025"},
		{"Fri, Aug 1 - Sun, Aug 3", KindDateRange, "Aug 3"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c := Classify(tt.line)
			if c.Kind != tt.kind {
				t.Fatalf("Classify(%q).Kind = %s, want %s", tt.line, c.Kind, tt.kind)
			}
			if c.Text != tt.expected {
				t.Errorf("Classify(%q).Text = %q, want %q", tt.line, c.Text, tt.expected)
			}
		})
	}
}

func TestClassifyCourses(t *testing.T) {
	tests := []struct {
		line     string
		expected string
	}{
		{"Oak Hill Country Club", "Oak Hill Country Club"},
		{"**Oak Hill Country Club**", "Oak Hill Country Club"},
		{"Fox Chapel Golf Club, Pittsburgh", "Fox Chapel Golf Club, Pittsburgh"},
		{"Wanango CC", "Wanango CC"},
		{"Olde Stonewall GC", "Olde Stonewall GC"},
		{"Hershey G&CC", "Hershey G&CC"},
		{"Hazeltine National", "Hazeltine National"},
		{"Sea Island Plantation", "Sea Island Plantation"},
		{"Pinehurst Resort - Championship Course", "Pinehurst Resort - Championship Course"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c := Classify(tt.line)
			if c.Kind != KindCourse {
				t.Fatalf("Classify(%q).Kind = %s, want course", tt.line, c.Kind)
			}
			if c.Text != tt.expected {
				t.Errorf("Classify(%q).Text = %q, want %q", tt.line, c.Text, tt.expected)
			}
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	for _, line := range []string{"OPEN", "CLOSED", "INVITATION LIST", "**CLOSED**", "**INVITATION LIST**"} {
		t.Run(line, func(t *testing.T) {
			if c := Classify(line); c.Kind != KindStatus {
				t.Errorf("Classify(%q).Kind = %s, want status", line, c.Kind)
			}
		})
	}
}

func TestClassifyVenueHint(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind LineKind
	}{
		{"hint mid-line", "players meet at Hidden Valley Golf Course by noon", KindVenueHint},
		{"country club mention", "hosted again by Wanango Country Club this fall", KindVenueHint},
		// Bold-prefixed lines never use the heuristic.
		{"bold prefix", "**shotgun start at Oakmont Country Club maybe**", KindUnknown},
		{"no venue words", "carts available after 9am", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := Classify(tt.line); c.Kind != tt.kind {
				t.Errorf("Classify(%q).Kind = %s, want %s", tt.line, c.Kind, tt.kind)
			}
		})
	}
}

func TestClassifyPrecedenceTitleOverCourse(t *testing.T) {
	// Ends in both a title keyword and a venue keyword path; title wins.
	c := Classify("**Oakmont Country Club Open**")
	if c.Kind != KindTitle {
		t.Fatalf("Kind = %s, want title", c.Kind)
	}
	if c.Text != "Oakmont Country Club Open" {
		t.Errorf("Text = %q, want full title", c.Text)
	}
}
