package jdate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	dateTimePatterns = []string{"%Y/%m/%d %H:%M:%S", "%Y-%m-%dT%T", "%Y-%m-%d %H:%M:%S"}
	datePatterns     = []string{"%Y/%m/%d", "%Y-%m-%d"}

	gregorianDateTimeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05"}
)

// ParseInput reads a Jalali date or date-time in one of the common forms
// YYYY/MM/DD, YYYY-MM-DD, YYYY/MM/DD HH:MM:SS, YYYY-MM-DDTHH:MM:SS or
// YYYY-MM-DD HH:MM:SS. It reports whether the input carried a time.
//
// When the input has the right shape but names an impossible date or time,
// that error is returned instead of a generic format error.
func ParseInput(input string) (DateTime, bool, error) {
	s := strings.TrimSpace(input)
	var invalid error
	try := func(patterns []string) (DateTime, bool) {
		for _, pattern := range patterns {
			dt, err := Parse(s, pattern)
			if err == nil {
				return dt, true
			}
			if invalid == nil && (errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrInvalidTime) || errors.Is(err, ErrOutOfRange)) {
				invalid = err
			}
		}
		return DateTime{}, false
	}
	if dt, ok := try(dateTimePatterns); ok {
		return dt, true, nil
	}
	if dt, ok := try(datePatterns); ok {
		return dt, false, nil
	}
	if invalid != nil {
		return DateTime{}, false, invalid
	}
	return DateTime{}, false, fmt.Errorf("could not parse input %q, expected YYYY/MM/DD, YYYY-MM-DD, YYYY/MM/DD HH:MM:SS or YYYY-MM-DDTHH:MM:SS: %w", s, ErrFormatMismatch)
}

// ParseGregorianInput reads a Gregorian YYYY-MM-DD, YYYY-MM-DD HH:MM:SS or
// YYYY-MM-DDTHH:MM:SS value as a UTC wall clock.
func ParseGregorianInput(input string) (time.Time, bool, error) {
	s := strings.TrimSpace(input)
	for _, layout := range gregorianDateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true, nil
		}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("could not parse Gregorian date/datetime %q, use YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS: %w", s, err)
	}
	return t, false, nil
}

// FromGregorian converts a Gregorian wall clock to Jalali.
func FromGregorian(t time.Time) (DateTime, error) {
	return checkRange(FromTime(t), "converting from Gregorian")
}
