// Package normalize provides pure canonicalizers for tournament record
// fields: dates to YYYY-MM-DD, states to 2-letter USPS codes, and zip codes
// to their 5-digit form.
//
// All three are best-effort: unrecognized input is passed through rather
// than rejected, with the second return value reporting whether the result
// is canonical. This keeps the parse pipeline non-fatal while still letting
// callers and tests distinguish normalized values from raw text.
package normalize
