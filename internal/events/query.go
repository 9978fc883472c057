package events

import (
	"fmt"

	"github.com/parsicore/mitra/internal/hijri"
)

// HijriConverter derives the Hijri date of a Jalali date.
type HijriConverter interface {
	JalaliToHijri(year, month, day int) (hijri.Date, error)
}

// Service answers per-day event queries against an Index.
type Service struct {
	index *Index
	conv  HijriConverter
}

// NewService returns a Service over ix that maps Hijri events with conv.
func NewService(ix *Index, conv HijriConverter) *Service {
	return &Service{index: ix, conv: conv}
}

// EventsFor returns the events of a Jalali date: fixed events first, then
// Hijri-mapped events whose Hijri month and day match the date, each group
// in dataset order. A day without events yields an empty slice and a nil
// error.
func (s *Service) EventsFor(year, month, day int) ([]Event, error) {
	fixed := s.index.Fixed(month, day)
	out := make([]Event, 0, len(fixed))
	out = append(out, fixed...)

	h, err := s.conv.JalaliToHijri(year, month, day)
	if err != nil {
		return nil, &QueryError{Year: year, Month: month, Day: day, Err: fmt.Errorf("%w: %w", ErrConversionFailed, err)}
	}
	for _, ev := range s.index.HijriMapped() {
		if ev.Month == h.Month && ev.Day == h.Day {
			out = append(out, ev)
		}
	}
	return out, nil
}

// HasHoliday reports whether any of evs is a holiday.
func HasHoliday(evs []Event) bool {
	for _, ev := range evs {
		if ev.Holiday {
			return true
		}
	}
	return false
}
