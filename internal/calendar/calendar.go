// Package calendar renders Jalali months as week grids annotated with the
// events of each day, and lays those grids out as text.
package calendar

import (
	"context"
	"errors"
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"github.com/parsicore/mitra/internal/events"
	"github.com/parsicore/mitra/internal/jdate"
)

// Indicator marks what kind of events fall on a day.
type Indicator int

const (
	None Indicator = iota
	Occasion
	Holiday
)

// Symbol returns the character printed after a day number.
func (i Indicator) Symbol() byte {
	switch i {
	case Holiday:
		return '*'
	case Occasion:
		return '+'
	}
	return ' '
}

func (i Indicator) String() string {
	switch i {
	case Holiday:
		return "holiday"
	case Occasion:
		return "occasion"
	}
	return "none"
}

// Classify derives the indicator of a day from its events: Holiday if any
// event is a holiday, Occasion if there are events but no holiday.
func Classify(evs []events.Event) Indicator {
	switch {
	case events.HasHoliday(evs):
		return Holiday
	case len(evs) > 0:
		return Occasion
	}
	return None
}

// Cell is one slot of the grid. Day is 0 for padding outside the month.
type Cell struct {
	Day       int
	Indicator Indicator
}

// Empty reports whether c is padding.
func (c Cell) Empty() bool { return c.Day == 0 }

// Week is a grid row, Saturday first.
type Week [7]Cell

// Month is the rendered grid of one Jalali month.
type Month struct {
	Year  int
	Month int
	Weeks []Week
}

// Name returns the Persian month name.
func (m Month) Name() string { return jdate.MonthName(m.Month) }

// ErrInvalidMonth is wrapped by RenderError.
var ErrInvalidMonth = errors.New("invalid month")

// RenderError reports a year and month that cannot be rendered.
type RenderError struct {
	Year, Month int
	Err         error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %04d/%02d: %v", e.Year, e.Month, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// EventSource provides the events of a Jalali date.
type EventSource interface {
	EventsFor(year, month, day int) ([]events.Event, error)
}

// Renderer builds month grids using an EventSource for day indicators.
type Renderer struct {
	src EventSource
}

// NewRenderer returns a Renderer backed by src.
func NewRenderer(src EventSource) *Renderer {
	return &Renderer{src: src}
}

// RenderMonth lays out a month: day 1 sits in its weekday column, the first
// week is padded on the left, the last on the right, and every week has
// exactly seven cells.
func (r *Renderer) RenderMonth(ctx context.Context, year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, &RenderError{Year: year, Month: month, Err: fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidMonth)}
	}
	first, err := jdate.Weekday(year, month, 1)
	if err != nil {
		return Month{}, &RenderError{Year: year, Month: month, Err: fmt.Errorf("%w: %w", ErrInvalidMonth, err)}
	}
	days := jdate.DaysInMonth(year, month)

	m := Month{Year: year, Month: month}
	var week Week
	col := first
	for day := 1; day <= days; day++ {
		evs, err := r.src.EventsFor(year, month, day)
		if err != nil {
			return Month{}, err
		}
		week[col] = Cell{Day: day, Indicator: Classify(evs)}
		col++
		if col == 7 {
			m.Weeks = append(m.Weeks, week)
			week, col = Week{}, 0
		}
	}
	if col > 0 {
		m.Weeks = append(m.Weeks, week)
	}
	ctxlog.Logger(ctx).Debug("rendered month", "year", year, "month", month, "first_weekday", first, "weeks", len(m.Weeks))
	return m, nil
}

// Shift returns the year and month n months away from year/month.
func Shift(year, month, n int) (int, int) {
	total := year*12 + month - 1 + n
	y, m := total/12, total%12
	if m < 0 {
		y, m = y-1, m+12
	}
	return y, m + 1
}

// RenderThree renders the month before, the given month, and the month
// after. Each month is rendered independently.
func (r *Renderer) RenderThree(ctx context.Context, year, month int) ([]Month, error) {
	if month < 1 || month > 12 {
		return nil, &RenderError{Year: year, Month: month, Err: fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidMonth)}
	}
	out := make([]Month, 0, 3)
	for n := -1; n <= 1; n++ {
		y, m := Shift(year, month, n)
		rendered, err := r.RenderMonth(ctx, y, m)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)
	}
	return out, nil
}

// RenderYear renders all twelve months of a year.
func (r *Renderer) RenderYear(ctx context.Context, year int) ([]Month, error) {
	out := make([]Month, 0, 12)
	for m := 1; m <= 12; m++ {
		rendered, err := r.RenderMonth(ctx, year, m)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)
	}
	return out, nil
}
