// Package geocode enriches tournament records with location data resolved
// from course names.
//
// Resolution is a chain of best-effort strategies tried in order: a
// structured directory search, a simplified name-only search, and a
// name-pattern heuristic. A clean miss and a transport failure are distinct
// outcomes; either way the pipeline proceeds with gaps intact. Enrichment
// runs lookups on a bounded worker pool and only ever fills fields that
// were empty.
package geocode
