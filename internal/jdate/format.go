package jdate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrFormatMismatch       = errors.New("input does not match the pattern or has extra characters")
	ErrInvalidNumber        = errors.New("could not parse number or wrong digit count")
	ErrUnsupportedSpecifier = errors.New("pattern contains a specifier unsupported for parsing")
	ErrInvalidMonthName     = errors.New("could not recognize Persian month name")
)

// Style is a predefined output format.
type Style string

const (
	StyleShort Style = "short"
	StyleLong  Style = "long"
	StyleISO   Style = "iso"
)

// Styles lists the accepted style names.
var Styles = []Style{StyleShort, StyleLong, StyleISO}

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	for _, st := range Styles {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown style %q (want short, long or iso)", s)
}

// FormatStyle renders dt in a predefined style. The time of day is included
// by short and iso when withTime is set; long is always date only.
func FormatStyle(dt DateTime, style Style, withTime bool) (string, error) {
	switch style {
	case StyleShort:
		if withTime {
			return Format(dt, "%Y/%m/%d %T"), nil
		}
		return Format(dt, "%Y/%m/%d"), nil
	case StyleLong:
		return fmt.Sprintf("%d %s %d", dt.Day, MonthName(dt.Month), dt.Year), nil
	case StyleISO:
		if withTime {
			return Format(dt, "%Y-%m-%dT%T"), nil
		}
		return Format(dt, "%Y-%m-%d"), nil
	}
	return "", fmt.Errorf("unknown style %q", style)
}

// Format renders dt using %-specifiers:
//
//	%Y year  %m month  %d day  %H hour  %M minute  %S second
//	%T %H:%M:%S  %B month name  %A weekday name  %j day of year  %% literal
//
// Unknown specifiers are copied to the output unchanged.
func Format(dt DateTime, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i == len(pattern)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch pattern[i] {
		case 'Y':
			fmt.Fprintf(&b, "%04d", dt.Year)
		case 'm':
			fmt.Fprintf(&b, "%02d", dt.Month)
		case 'd':
			fmt.Fprintf(&b, "%02d", dt.Day)
		case 'H':
			fmt.Fprintf(&b, "%02d", dt.Hour)
		case 'M':
			fmt.Fprintf(&b, "%02d", dt.Minute)
		case 'S':
			fmt.Fprintf(&b, "%02d", dt.Second)
		case 'T':
			fmt.Fprintf(&b, "%02d:%02d:%02d", dt.Hour, dt.Minute, dt.Second)
		case 'B':
			b.WriteString(MonthName(dt.Month))
		case 'A':
			b.WriteString(WeekdayName(dt.Weekday()))
		case 'j':
			fmt.Fprintf(&b, "%03d", dt.YearDay())
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(pattern[i])
		}
	}
	return b.String()
}

// HasTimeSpecifier reports whether a pattern parses or prints a time of day.
func HasTimeSpecifier(pattern string) bool {
	for _, s := range []string{"%H", "%M", "%S", "%T"} {
		if strings.Contains(pattern, s) {
			return true
		}
	}
	return false
}

type parser struct {
	input, pattern string
	pos            int
}

func (p *parser) fail(kind error) error {
	return fmt.Errorf("parsing %q with pattern %q: %w", p.input, p.pattern, kind)
}

func (p *parser) digits(n int) (int, error) {
	if p.pos+n > len(p.input) {
		return 0, p.fail(ErrInvalidNumber)
	}
	v := 0
	for _, c := range []byte(p.input[p.pos : p.pos+n]) {
		if c < '0' || c > '9' {
			return 0, p.fail(ErrInvalidNumber)
		}
		v = v*10 + int(c-'0')
	}
	p.pos += n
	return v, nil
}

func (p *parser) literal(s string) error {
	if !strings.HasPrefix(p.input[p.pos:], s) {
		return p.fail(ErrFormatMismatch)
	}
	p.pos += len(s)
	return nil
}

func (p *parser) monthName() (int, error) {
	best, bestLen := 0, 0
	rest := p.input[p.pos:]
	for m := 1; m <= 12; m++ {
		if name := MonthName(m); strings.HasPrefix(rest, name) && len(name) > bestLen {
			best, bestLen = m, len(name)
		}
	}
	if best == 0 {
		return 0, p.fail(ErrInvalidMonthName)
	}
	p.pos += bestLen
	return best, nil
}

// Parse reads input according to pattern. Numeric fields must have their
// full width (%Y four digits, the others two); %T reads HH:MM:SS and %B a
// Persian month name. The pattern must supply year, month and day.
func Parse(input, pattern string) (DateTime, error) {
	p := &parser{input: input, pattern: pattern}
	var dt DateTime
	var haveY, haveM, haveD bool
	for i := 0; i < len(pattern); {
		if pattern[i] != '%' {
			_, size := utf8.DecodeRuneInString(pattern[i:])
			if err := p.literal(pattern[i : i+size]); err != nil {
				return DateTime{}, err
			}
			i += size
			continue
		}
		if i == len(pattern)-1 {
			return DateTime{}, p.fail(ErrUnsupportedSpecifier)
		}
		var err error
		switch pattern[i+1] {
		case 'Y':
			dt.Year, err = p.digits(4)
			haveY = true
		case 'm':
			dt.Month, err = p.digits(2)
			haveM = true
		case 'd':
			dt.Day, err = p.digits(2)
			haveD = true
		case 'H':
			dt.Hour, err = p.digits(2)
		case 'M':
			dt.Minute, err = p.digits(2)
		case 'S':
			dt.Second, err = p.digits(2)
		case 'T':
			if dt.Hour, err = p.digits(2); err == nil {
				if err = p.literal(":"); err == nil {
					if dt.Minute, err = p.digits(2); err == nil {
						if err = p.literal(":"); err == nil {
							dt.Second, err = p.digits(2)
						}
					}
				}
			}
		case 'B':
			dt.Month, err = p.monthName()
			haveM = true
		case '%':
			err = p.literal("%")
		default:
			err = p.fail(ErrUnsupportedSpecifier)
		}
		if err != nil {
			return DateTime{}, err
		}
		i += 2
	}
	if p.pos != len(input) || !haveY || !haveM || !haveD {
		return DateTime{}, p.fail(ErrFormatMismatch)
	}
	if err := Validate(dt.Year, dt.Month, dt.Day); err != nil {
		return DateTime{}, p.fail(err)
	}
	out, err := New(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
	if err != nil {
		return DateTime{}, p.fail(ErrInvalidTime)
	}
	return out, nil
}
