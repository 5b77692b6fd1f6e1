// Package parser reconstructs tournament records from unstructured
// tee-sheet text.
//
// The pipeline is a line classifier (ordered pattern matchers with explicit
// precedence), a two-state record builder that folds over classified lines
// (a new title line is the only record boundary), a name/category
// standardizer applied to emitted records, and a same-course location
// backfill pass. Parse is a pure function of its inputs; the surrounding
// CLI can call it repeatedly with no state bleed.
package parser
