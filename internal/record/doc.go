// Package record defines the tournament record entity produced by the
// tee-sheet parser.
//
// A record is opened from a title line and accumulates fields as the parser
// walks the input; only the name is mandatory. Records carry a deterministic
// SHA1-based ID derived from the title line and its position, so a saved run
// can be patched by ID across invocations.
package record
