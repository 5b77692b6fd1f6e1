// Package scrape fetches published tee-sheet pages and flattens them to the
// line-oriented plain text the tournament parser consumes.
package scrape
