// Package patch applies user-supplied field corrections to a saved parse
// run, filling the gaps the extractor and geocoder could not.
package patch
