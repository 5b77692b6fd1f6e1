package geocode

import (
	"context"
	"strings"
)

// Venue suffixes whose prefix is usually the town the course sits in.
var heuristicSuffixes = []string{
	"Country Club", "Golf Club", "Golf Course",
}

// NamePattern is the last-resort strategy: many municipal and club courses
// are simply named "<Town> Country Club", so the prefix is taken as the
// city. It never invents a state or zip; with no state to attach the guess
// to, it declines.
type NamePattern struct{}

func (NamePattern) Name() string { return "name-pattern" }

func (NamePattern) Lookup(_ context.Context, course, state string) (*Location, error) {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state == "" {
		return nil, nil
	}

	course = strings.TrimSpace(course)
	for _, suffix := range heuristicSuffixes {
		if !strings.HasSuffix(course, suffix) {
			continue
		}

		prefix := strings.TrimSpace(strings.TrimSuffix(course, suffix))
		// One to three words reads like a town name; anything longer is a
		// descriptive course name, not a place.
		words := strings.Fields(prefix)
		if len(words) == 0 || len(words) > 3 {
			return nil, nil
		}

		return &Location{City: prefix, State: state}, nil
	}

	return nil, nil
}
