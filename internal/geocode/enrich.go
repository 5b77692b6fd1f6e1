package geocode

import (
	"context"
	"sync"
	"time"

	"github.com/pfrederiksen/teesheet-extract/internal/logger"
	"github.com/pfrederiksen/teesheet-extract/internal/normalize"
	"github.com/pfrederiksen/teesheet-extract/internal/record"
)

const (
	enrichWorkers = 4
	lookupTimeout = 10 * time.Second
)

// LookupFunc is the geocoding collaborator contract consumed by Enrich.
// Resolver.Lookup satisfies it.
type LookupFunc func(ctx context.Context, course, state string) (*Location, error)

// Enrich fills missing location fields on records via the lookup.
//
// The default state is applied first to records with no state. Only records
// that still lack a city or zip (and have a course to search on) are looked
// up, and only the fields that were empty are written; known values are
// never overwritten, unlike the backfill pass. Lookups run on a bounded
// worker pool with a per-call timeout; failures leave the record's gaps
// intact.
func Enrich(ctx context.Context, records []*record.Record, lookup LookupFunc, defaultState string) {
	if defaultState != "" {
		defaultState, _ = normalize.State(defaultState)
		for _, r := range records {
			if r.State == "" {
				r.State = defaultState
			}
		}
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, enrichWorkers)

	for _, r := range records {
		if r.Course == "" || (r.City != "" && r.Zip != "") {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(r *record.Record) {
			defer wg.Done()
			defer func() { <-sem }()

			callCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
			defer cancel()

			loc, err := lookup(callCtx, r.Course, r.State)
			if err != nil {
				logger.Warn("geocode lookup failed", logger.Fields{
					"course": r.Course,
					"state":  r.State,
				}, err)
				return
			}
			if loc == nil {
				logger.Debug("no location found for course", logger.Fields{
					"course": r.Course,
					"state":  r.State,
				})
				return
			}

			if r.City == "" {
				r.City = loc.City
			}
			if r.State == "" && loc.State != "" {
				r.State, _ = normalize.State(loc.State)
			}
			if r.Zip == "" && loc.Zip != "" {
				r.Zip, _ = normalize.Zip(loc.Zip)
			}
		}(r)
	}

	wg.Wait()
}
