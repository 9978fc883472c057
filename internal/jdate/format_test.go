package jdate

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	dt := DateTime{Year: 1403, Month: 5, Day: 2, Hour: 9, Minute: 5, Second: 7}
	tests := []struct {
		pattern string
		want    string
	}{
		{"%Y-%m-%d", "1403-05-02"},
		{"%Y/%m/%d %T", "1403/05/02 09:05:07"},
		{"%d %B %Y", "02 مرداد 1403"},
		{"%A", "سه‌شنبه"},
		{"%j", "126"},
		{"100%%", "100%"},
		{"%Q and %", "%Q and %"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := Format(dt, tt.pattern); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatStyle(t *testing.T) {
	dt := DateTime{Year: 1403, Month: 5, Day: 2, Hour: 10, Minute: 30}
	tests := []struct {
		style    Style
		withTime bool
		want     string
	}{
		{StyleShort, false, "1403/05/02"},
		{StyleShort, true, "1403/05/02 10:30:00"},
		{StyleLong, true, "2 مرداد 1403"},
		{StyleISO, false, "1403-05-02"},
		{StyleISO, true, "1403-05-02T10:30:00"},
	}

	for _, tt := range tests {
		got, err := FormatStyle(dt, tt.style, tt.withTime)
		if err != nil {
			t.Fatalf("FormatStyle(%s) error = %v", tt.style, err)
		}
		if got != tt.want {
			t.Errorf("FormatStyle(%s, %v) = %q, want %q", tt.style, tt.withTime, got, tt.want)
		}
	}

	if _, err := ParseStyle("fancy"); err == nil {
		t.Error("ParseStyle(\"fancy\") should fail")
	}
	if st, err := ParseStyle("ISO"); err != nil || st != StyleISO {
		t.Errorf("ParseStyle(\"ISO\") = %v, %v", st, err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pattern string
		want    DateTime
		wantErr error
	}{
		{"slash date", "1403/05/02", "%Y/%m/%d", DateTime{Year: 1403, Month: 5, Day: 2}, nil},
		{"datetime", "1403-05-02T10:30:15", "%Y-%m-%dT%T", DateTime{Year: 1403, Month: 5, Day: 2, Hour: 10, Minute: 30, Second: 15}, nil},
		{"month name", "02 مرداد 1403", "%d %B %Y", DateTime{Year: 1403, Month: 5, Day: 2}, nil},
		{"literal percent", "1403%05%02", "%Y%%%m%%%d", DateTime{Year: 1403, Month: 5, Day: 2}, nil},
		{"short year", "403/05/02", "%Y/%m/%d", DateTime{}, ErrInvalidNumber},
		{"trailing input", "1403/05/02x", "%Y/%m/%d", DateTime{}, ErrFormatMismatch},
		{"wrong separator", "1403-05-02", "%Y/%m/%d", DateTime{}, ErrFormatMismatch},
		{"unsupported", "1403/05/02", "%Y/%m/%A", DateTime{}, ErrUnsupportedSpecifier},
		{"bad month name", "02 foo 1403", "%d %B %Y", DateTime{}, ErrInvalidMonthName},
		{"invalid date", "1403/07/31", "%Y/%m/%d", DateTime{}, ErrInvalidDate},
		{"invalid time", "1403/05/02 24:00:00", "%Y/%m/%d %T", DateTime{}, ErrInvalidTime},
		{"missing day", "1403/05", "%Y/%m", DateTime{}, ErrFormatMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.pattern)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasTimeSpecifier(t *testing.T) {
	if HasTimeSpecifier("%Y/%m/%d") {
		t.Error("date pattern reported as having time")
	}
	if !HasTimeSpecifier("%Y/%m/%d %H:%M") {
		t.Error("datetime pattern reported as date only")
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		input    string
		want     DateTime
		wantTime bool
	}{
		{"1403/05/02", DateTime{Year: 1403, Month: 5, Day: 2}, false},
		{" 1403-05-02 ", DateTime{Year: 1403, Month: 5, Day: 2}, false},
		{"1403/05/02 10:30:00", DateTime{Year: 1403, Month: 5, Day: 2, Hour: 10, Minute: 30}, true},
		{"1403-05-02T10:30:00", DateTime{Year: 1403, Month: 5, Day: 2, Hour: 10, Minute: 30}, true},
		{"1403-05-02 10:30:00", DateTime{Year: 1403, Month: 5, Day: 2, Hour: 10, Minute: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, hasTime, err := ParseInput(tt.input)
			if err != nil {
				t.Fatalf("ParseInput() error = %v", err)
			}
			if got != tt.want || hasTime != tt.wantTime {
				t.Errorf("ParseInput() = %v, %v, want %v, %v", got, hasTime, tt.want, tt.wantTime)
			}
		})
	}

	if _, _, err := ParseInput("tomorrow"); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("ParseInput(\"tomorrow\") error = %v, want ErrFormatMismatch", err)
	}
	if _, _, err := ParseInput("1404/12/30"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ParseInput(\"1404/12/30\") error = %v, want ErrInvalidDate", err)
	}
}

func TestParseGregorianInput(t *testing.T) {
	got, hasTime, err := ParseGregorianInput("2024-03-20T08:15:00")
	if err != nil {
		t.Fatalf("ParseGregorianInput() error = %v", err)
	}
	if !hasTime || got.Hour() != 8 || got.Minute() != 15 {
		t.Errorf("ParseGregorianInput() = %v, %v", got, hasTime)
	}
	if _, hasTime, err := ParseGregorianInput("2024-03-20"); err != nil || hasTime {
		t.Errorf("ParseGregorianInput(date) = %v, %v", hasTime, err)
	}
	if _, _, err := ParseGregorianInput("20/03/2024"); err == nil {
		t.Error("ParseGregorianInput(\"20/03/2024\") should fail")
	}
}
