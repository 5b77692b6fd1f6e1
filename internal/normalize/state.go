package normalize

import "strings"

// stateAbbrs maps lowercase full state names (50 states + DC) to USPS codes.
var stateAbbrs = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY", "district of columbia": "DC",
}

// State normalizes a state to its 2-letter USPS code.
//
// A value already 2 characters long is uppercased and returned as-is (not
// validated against the real state list). Full names are looked up in the
// 51-entry table; unmatched names are passed through uppercased with
// ok=false. Empty input stays empty.
func State(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if len(raw) == 2 {
		return strings.ToUpper(raw), true
	}

	if abbr, ok := stateAbbrs[strings.ToLower(raw)]; ok {
		return abbr, true
	}

	return strings.ToUpper(raw), false
}
