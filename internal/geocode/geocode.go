// Package geocode resolves golf course names to structured locations
// (city, state, zip) for tournament record enrichment.
package geocode

import (
	"context"
	"strings"
	"time"

	"github.com/pfrederiksen/teesheet-extract/internal/logger"
)

// Location contains the address components resolved for a course. Empty
// fields are unknown; zip in particular is frequently unavailable.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip,omitempty"`
}

// Strategy is one way of resolving a course to a location. A (nil, nil)
// return is a clean miss; a non-nil error is a transport failure. The two
// are distinct so callers can log failures without treating every miss as
// broken.
type Strategy interface {
	Name() string
	Lookup(ctx context.Context, course, state string) (*Location, error)
}

// Resolver runs an ordered chain of strategies, short-circuiting on the
// first hit, with a TTL cache in front.
type Resolver struct {
	strategies []Strategy
	cache      *Cache
}

// NewResolver creates a resolver over the given strategies, tried in order.
func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{
		strategies: strategies,
		cache:      NewCache(),
	}
}

// Lookup resolves a course name and state to a location. Transport errors
// from individual strategies are logged and the chain continues; the first
// error is returned only if no strategy produced a hit.
func (r *Resolver) Lookup(ctx context.Context, course, state string) (*Location, error) {
	course = strings.TrimSpace(course)
	if course == "" {
		return nil, nil
	}

	if loc := r.cache.Get(course, state); loc != nil {
		logger.IncrCounter("geocode.cache_hits")
		return loc, nil
	}

	var firstErr error
	for _, s := range r.strategies {
		start := time.Now()
		loc, err := s.Lookup(ctx, course, state)
		logger.RecordTiming("geocode."+s.Name(), time.Since(start))

		if err != nil {
			logger.Warn("geocode strategy failed", logger.Fields{
				"strategy": s.Name(),
				"course":   course,
				"state":    state,
			}, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if loc != nil {
			logger.IncrCounter("geocode.hits")
			r.cache.Set(course, state, loc)
			return loc, nil
		}
	}

	logger.IncrCounter("geocode.misses")
	return nil, firstErr
}
