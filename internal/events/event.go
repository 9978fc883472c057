// Package events holds the calendar occasions bundled with mitra: the
// dataset loader, the immutable index it builds, and the per-day query
// service that merges fixed Jalali events with Hijri-mapped ones.
package events

import (
	"errors"
	"fmt"
)

// Kind tells which calendar an event's month and day refer to.
type Kind int

const (
	// Fixed events recur on the same Jalali month and day.
	Fixed Kind = iota
	// HijriMapped events recur on the same Hijri month and day; their Jalali
	// date moves from year to year.
	HijriMapped
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case HijriMapped:
		return "hijri"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a single recorded occasion. Month and Day are Jalali for Fixed
// events and Hijri for HijriMapped events.
type Event struct {
	Kind    Kind
	Title   string
	Holiday bool
	Month   int
	Day     int
}

var (
	// ErrMalformed is wrapped by load errors for documents that are not
	// valid JSON of the expected shape.
	ErrMalformed = errors.New("malformed event dataset")
	// ErrSchemaViolation is wrapped by every rejected record.
	ErrSchemaViolation = errors.New("event record violates dataset schema")
	// ErrConversionFailed is wrapped by query errors when the Hijri date of
	// the queried day cannot be derived.
	ErrConversionFailed = errors.New("hijri conversion failed")
)

// LoadError reports a dataset that could not be turned into an Index.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading events from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// QueryError reports a failed lookup for a Jalali date.
type QueryError struct {
	Year, Month, Day int
	Err              error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("events for %04d/%02d/%02d: %v", e.Year, e.Month, e.Day, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
