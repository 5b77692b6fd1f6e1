// Package cli implements the command-line interface for teesheet-extract.
//
// The cli package provides the Cobra-based CLI with subcommands for parsing
// tee-sheet text (parse), pulling a page and parsing it (scrape), applying
// manual corrections to a saved run (patch), and re-exporting a saved run
// (export). It coordinates the parser, geocode, store, patch, filter, and
// export packages and handles output formatting and sorting.
package cli
