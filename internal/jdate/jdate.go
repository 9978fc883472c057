// Package jdate adapts the Jalali calendar library to the shapes the mitra
// commands work with: validated date-times, clamped arithmetic, pattern
// based formatting and parsing, and conversion to Gregorian and Hijri.
package jdate

import (
	"errors"
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

const (
	// MinYear and MaxYear bound the supported Jalali years. 962 is the first
	// year that starts after the Gregorian reform of 15 October 1582; the
	// conversion library is proleptic Julian before it.
	MinYear = 962
	MaxYear = 9999
)

var (
	ErrInvalidDate = errors.New("invalid Jalali date")
	ErrInvalidTime = errors.New("invalid time of day")
	ErrOutOfRange  = errors.New("date outside supported year range [962, 9999]")
)

// Saturday first. The library's names join the compound days with a ZWNJ
// (یک‌شنبه); mitra prints them as single words.
var weekdayNames = [7]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه",
}

// DateTime is a Jalali calendar date with a wall clock time. It carries no
// location; conversions treat the wall clock as UTC.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// New returns a validated DateTime.
func New(year, month, day, hour, minute, second int) (DateTime, error) {
	if err := Validate(year, month, day); err != nil {
		return DateTime{}, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return DateTime{}, fmt.Errorf("%02d:%02d:%02d: %w", hour, minute, second, ErrInvalidTime)
	}
	return DateTime{year, month, day, hour, minute, second}, nil
}

// NewDate returns a validated DateTime at midnight.
func NewDate(year, month, day int) (DateTime, error) {
	return New(year, month, day, 0, 0, 0)
}

// FromTime converts the wall clock of t, in its own location, to Jalali.
func FromTime(t time.Time) DateTime {
	p := ptime.New(t)
	return DateTime{
		Year:   p.Year(),
		Month:  int(p.Month()),
		Day:    p.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// Now returns the current date-time in loc.
func Now(loc *time.Location) DateTime {
	return FromTime(time.Now().In(loc))
}

func (dt DateTime) ptime() ptime.Time {
	return ptime.Date(dt.Year, ptime.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
}

// Gregorian returns the equivalent Gregorian wall clock in UTC.
func (dt DateTime) Gregorian() time.Time {
	return dt.ptime().Time()
}

// Date returns dt truncated to midnight.
func (dt DateTime) Date() DateTime {
	return DateTime{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

// Weekday returns the day of the week with Saturday as 0.
func (dt DateTime) Weekday() int {
	return int(dt.ptime().Weekday())
}

// YearDay returns the day of the year, starting at 1 on 1 Farvardin.
func (dt DateTime) YearDay() int {
	return dt.ptime().YearDay()
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%04d/%02d/%02d %02d:%02d:%02d", dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}

// DateString formats only the date part as YYYY/MM/DD.
func (dt DateTime) DateString() string {
	return fmt.Sprintf("%04d/%02d/%02d", dt.Year, dt.Month, dt.Day)
}

// IsLeap reports whether Esfand of the given year has 30 days.
func IsLeap(year int) bool {
	return ptime.Date(year, ptime.Esfand, 1, 0, 0, 0, 0, time.UTC).IsLeap()
}

// DaysInMonth returns the length of a month, or 0 for an invalid month.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return ptime.Date(year, ptime.Month(month), 1, 0, 0, 0, 0, time.UTC).LastMonthDay().Day()
}

// Validate checks that year, month and day name a real Jalali date.
func Validate(year, month, day int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year %d: %w", year, ErrOutOfRange)
	}
	if month < 1 || month > 12 || day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("%04d/%02d/%02d: %w", year, month, day, ErrInvalidDate)
	}
	return nil
}

// Weekday returns the weekday of a date with Saturday as 0.
func Weekday(year, month, day int) (int, error) {
	dt, err := NewDate(year, month, day)
	if err != nil {
		return 0, err
	}
	return dt.Weekday(), nil
}

// MonthName returns the Persian month name, or "" when month is outside 1..12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return ptime.Month(month).String()
}

// WeekdayName returns the Persian name of a Saturday-based weekday index.
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return weekdayNames[weekday]
}
