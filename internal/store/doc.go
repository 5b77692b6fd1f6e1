// Package store persists parse runs as JSON files so a record set can be
// patched and exported across separate command invocations.
package store
