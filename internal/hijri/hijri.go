// Package hijri converts civil days to Hijri dates for placing religious
// occasions.
//
// Days inside the Umm al-Qura tables (14 March 1937 to 16 November 2077) use
// them; other days fall back to the tabular calendar with the Kuwaiti leap
// pattern. Observed dates in Iran may still differ by a day, so callers pass
// an adjustment that shifts the civil day before converting.
package hijri

import (
	"errors"
	"fmt"
	"time"

	gohijri "github.com/hablullah/go-hijri"
)

// ErrOutOfRange is returned for days before the Hijri epoch.
var ErrOutOfRange = errors.New("date is before the Hijri epoch")

// Date is a Hijri calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

var monthNames = [12]string{
	"محرم", "صفر", "ربیع‌الاول", "ربیع‌الثانی", "جمادی‌الاول", "جمادی‌الثانی",
	"رجب", "شعبان", "رمضان", "شوال", "ذی‌القعده", "ذی‌الحجه",
}

// MonthName returns the Persian name of a Hijri month, or "" when month is
// outside 1..12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// FromGregorian converts the calendar day of t (in its own location) to a
// Hijri date, shifting it by adjust days first.
func FromGregorian(t time.Time, adjust int) (Date, error) {
	y, m, d := t.Date()
	day := time.Date(y, m, d+adjust, 12, 0, 0, 0, time.UTC)
	if uq, err := gohijri.CreateUmmAlQuraDate(day); err == nil {
		return Date{Year: int(uq.Year), Month: int(uq.Month), Day: int(uq.Day)}, nil
	}
	h, err := gohijri.CreateHijriDate(day, gohijri.Base15)
	if err != nil {
		return Date{}, fmt.Errorf("%s: %w: %v", day.Format(time.DateOnly), ErrOutOfRange, err)
	}
	return Date{Year: int(h.Year), Month: int(h.Month), Day: int(h.Day)}, nil
}
