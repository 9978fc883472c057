package jdate

import (
	"github.com/parsicore/mitra/internal/hijri"
)

// HijriConverter derives Hijri dates from Jalali dates. Adjust shifts the
// result by whole days to follow the officially observed calendar.
type HijriConverter struct {
	Adjust int
}

// JalaliToHijri converts a Jalali date to the Hijri calendar.
func (c HijriConverter) JalaliToHijri(year, month, day int) (hijri.Date, error) {
	dt, err := NewDate(year, month, day)
	if err != nil {
		return hijri.Date{}, err
	}
	return hijri.FromGregorian(dt.Gregorian(), c.Adjust)
}
