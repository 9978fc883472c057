package events

import (
	"encoding/json"
	"fmt"

	cerrors "cloudeng.io/errors"
)

type dayKey struct{ month, day int }

// Index is the validated, read-only form of the dataset.
type Index struct {
	fixed map[dayKey][]Event
	hijri []Event
	size  int
}

// Fixed returns the fixed events on a Jalali month and day in dataset order.
func (ix *Index) Fixed(month, day int) []Event {
	return ix.fixed[dayKey{month, day}]
}

// HijriMapped returns all Hijri-mapped events in dataset order.
func (ix *Index) HijriMapped() []Event {
	return ix.hijri
}

// Len returns the total number of events.
func (ix *Index) Len() int {
	return ix.size
}

// record is one entry of either dataset list before validation.
type record struct {
	Title      string `json:"title"`
	IsHoliday  bool   `json:"is_holiday"`
	Month      *int   `json:"month"`
	Day        *int   `json:"day"`
	HijriMonth *int   `json:"hijri_month"`
	HijriDay   *int   `json:"hijri_day"`
}

type document struct {
	Fixed []record `json:"fixed_events"`
	Hijri []record `json:"hijri_events_mapping"`
}

func (r record) hasJalali() bool { return r.Month != nil || r.Day != nil }
func (r record) hasHijri() bool  { return r.HijriMonth != nil || r.HijriDay != nil }

func inRange(v *int, hi int) bool {
	return v != nil && *v >= 1 && *v <= hi
}

func violation(list string, i int, r record, reason string) error {
	return fmt.Errorf("%s[%d] %q: %w: %s", list, i, r.Title, ErrSchemaViolation, reason)
}

func (r record) fixedEvent(i int) (Event, error) {
	switch {
	case r.Title == "":
		return Event{}, violation("fixed_events", i, r, "missing title")
	case r.hasHijri():
		return Event{}, violation("fixed_events", i, r, "hijri_month/hijri_day not allowed on a fixed event")
	case !inRange(r.Month, 12) || !inRange(r.Day, 31):
		return Event{}, violation("fixed_events", i, r, "month must be 1-12 and day 1-31")
	}
	return Event{Kind: Fixed, Title: r.Title, Holiday: r.IsHoliday, Month: *r.Month, Day: *r.Day}, nil
}

func (r record) hijriEvent(i int) (Event, error) {
	switch {
	case r.Title == "":
		return Event{}, violation("hijri_events_mapping", i, r, "missing title")
	case r.hasJalali():
		return Event{}, violation("hijri_events_mapping", i, r, "month/day not allowed on a hijri-mapped event")
	case !inRange(r.HijriMonth, 12) || !inRange(r.HijriDay, 30):
		return Event{}, violation("hijri_events_mapping", i, r, "hijri_month must be 1-12 and hijri_day 1-30")
	}
	return Event{Kind: HijriMapped, Title: r.Title, Holiday: r.IsHoliday, Month: *r.HijriMonth, Day: *r.HijriDay}, nil
}

// Parse validates a dataset document and builds its Index. Every rejected
// record is reported, not just the first.
func Parse(source string, data []byte) (*Index, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if doc.Fixed == nil && doc.Hijri == nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: neither fixed_events nor hijri_events_mapping present", ErrSchemaViolation)}
	}

	ix := &Index{fixed: make(map[dayKey][]Event)}
	var errs cerrors.M
	for i, r := range doc.Fixed {
		ev, err := r.fixedEvent(i)
		if err != nil {
			errs.Append(err)
			continue
		}
		k := dayKey{ev.Month, ev.Day}
		ix.fixed[k] = append(ix.fixed[k], ev)
		ix.size++
	}
	for i, r := range doc.Hijri {
		ev, err := r.hijriEvent(i)
		if err != nil {
			errs.Append(err)
			continue
		}
		ix.hijri = append(ix.hijri, ev)
		ix.size++
	}
	if err := errs.Err(); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return ix, nil
}
