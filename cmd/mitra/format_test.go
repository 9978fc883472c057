package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/parsicore/mitra/internal/jdate"
)

func TestWriteFormatted(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		style   string
		pattern string
		want    string
	}{
		{"short date", "1403-05-02", "short", "", "1403/05/02\n"},
		{"short datetime", "1403/05/02 10:30:00", "short", "", "1403/05/02 10:30:00\n"},
		{"long", "1403/05/02 10:30:00", "long", "", "2 مرداد 1403\n"},
		{"iso date", "1403/05/02", "iso", "", "1403-05-02\n"},
		{"iso datetime", "1403/05/02 10:30:00", "ISO", "", "1403-05-02T10:30:00\n"},
		{"pattern", "1403/05/02", "", "%d %B %Y (%A)", "02 مرداد 1403 (سه‌شنبه)\n"},
		{"pattern day of year", "1403/01/01", "", "%j %%", "001 %\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeFormatted(&buf, tt.input, tt.style, tt.pattern); err != nil {
				t.Fatalf("writeFormatted() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("writeFormatted() = %q, want %q", buf.String(), tt.want)
			}
		})
	}

	if err := writeFormatted(io.Discard, "1403/05/02", "fancy", ""); err == nil {
		t.Error("writeFormatted() with unknown style succeeded")
	}
}

func TestWriteParsed(t *testing.T) {
	tests := []struct {
		input   string
		pattern string
		want    string
	}{
		{"1403/05/02", "%Y/%m/%d", "Parsed Date: 1403/05/02\n"},
		{"1403/05/02 10:30:00", "%Y/%m/%d %T", "Parsed DateTime: 1403/05/02 10:30:00\n"},
		{"02 مرداد 1403", "%d %B %Y", "Parsed Date: 1403/05/02\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := writeParsed(&buf, tt.input, tt.pattern); err != nil {
			t.Fatalf("writeParsed(%q, %q) error = %v", tt.input, tt.pattern, err)
		}
		if buf.String() != tt.want {
			t.Errorf("writeParsed(%q, %q) = %q, want %q", tt.input, tt.pattern, buf.String(), tt.want)
		}
	}

	err := writeParsed(io.Discard, "سه‌شنبه 1403/05/02", "%A %Y/%m/%d")
	if !errors.Is(err, jdate.ErrUnsupportedSpecifier) {
		t.Errorf("writeParsed() with %%A error = %v, want ErrUnsupportedSpecifier", err)
	}
}
