package jdate

import (
	"fmt"
	"time"
)

func checkRange(dt DateTime, op string) (DateTime, error) {
	if dt.Year < MinYear || dt.Year > MaxYear {
		return DateTime{}, fmt.Errorf("%s: %w", op, ErrOutOfRange)
	}
	return dt, nil
}

// maxSpanDays exceeds the number of days between MinYear and MaxYear.
const maxSpanDays = (MaxYear + 1) * 366

// AddDays moves dt by n calendar days, keeping the time of day.
func AddDays(dt DateTime, n int) (DateTime, error) {
	if n > maxSpanDays || n < -maxSpanDays {
		return DateTime{}, fmt.Errorf("adding days: %w", ErrOutOfRange)
	}
	return checkRange(FromTime(dt.Gregorian().AddDate(0, 0, n)), "adding days")
}

// AddMonths moves dt by n months. The day is clamped to the length of the
// target month, so 31 Shahrivar plus one month is 30 Mehr.
func AddMonths(dt DateTime, n int) (DateTime, error) {
	total := dt.Year*12 + dt.Month - 1 + n
	if total < MinYear*12 || total >= (MaxYear+1)*12 {
		return DateTime{}, fmt.Errorf("adding months: %w", ErrOutOfRange)
	}
	out := dt
	out.Year, out.Month = total/12, total%12+1
	out.Day = min(dt.Day, DaysInMonth(out.Year, out.Month))
	return out, nil
}

// AddYears moves dt by n years. 30 Esfand becomes 29 Esfand when the target
// year is not leap.
func AddYears(dt DateTime, n int) (DateTime, error) {
	out := dt
	out.Year += n
	if _, err := checkRange(out, "adding years"); err != nil {
		return DateTime{}, err
	}
	out.Day = min(dt.Day, DaysInMonth(out.Year, out.Month))
	return out, nil
}

// AddDuration adds an exact duration to dt.
func AddDuration(dt DateTime, d time.Duration) (DateTime, error) {
	return checkRange(FromTime(dt.Gregorian().Add(d)), "adding duration")
}

// AddSeconds adds n seconds to dt. Whole days go through AddDays so that
// offsets beyond the range of time.Duration still resolve.
func AddSeconds(dt DateTime, n int64) (DateTime, error) {
	const day = 24 * 60 * 60
	days, rest := n/day, n%day
	if days > maxSpanDays || days < -maxSpanDays {
		return DateTime{}, fmt.Errorf("adding seconds: %w", ErrOutOfRange)
	}
	out, err := AddDays(dt, int(days))
	if err != nil {
		return DateTime{}, err
	}
	return AddDuration(out, time.Duration(rest)*time.Second)
}

// DaysBetween returns the signed number of days from a to b, ignoring the
// time of day.
func DaysBetween(a, b DateTime) int {
	const day = 24 * 60 * 60
	return int((b.Date().Gregorian().Unix() - a.Date().Gregorian().Unix()) / day)
}
