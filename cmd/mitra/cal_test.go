package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/parsicore/mitra/internal/calendar"
	"github.com/parsicore/mitra/internal/events"
	"github.com/parsicore/mitra/internal/jdate"
)

type noEvents struct{}

func (noEvents) EventsFor(year, month, day int) ([]events.Event, error) { return nil, nil }

func TestResolveCal(t *testing.T) {
	today := jdate.DateTime{Year: 1403, Month: 5, Day: 2}
	tests := []struct {
		name    string
		args    []string
		three   bool
		year    int
		yearSet bool
		want    calRequest
		wantErr bool
	}{
		{name: "current month", want: calRequest{calSingle, 1403, 5}},
		{name: "month only", args: []string{"7"}, want: calRequest{calSingle, 1403, 7}},
		{name: "month and year", args: []string{"12", "1399"}, want: calRequest{calSingle, 1399, 12}},
		{name: "three", three: true, want: calRequest{calAround, 1403, 5}},
		{name: "full year", year: 1404, yearSet: true, want: calRequest{calFullYear, 1404, 0}},
		{name: "month zero", args: []string{"0"}, wantErr: true},
		{name: "month thirteen", args: []string{"13"}, wantErr: true},
		{name: "month word", args: []string{"mehr"}, wantErr: true},
		{name: "bad year", args: []string{"1", "x"}, wantErr: true},
		{name: "year flag with args", args: []string{"1"}, year: 1403, yearSet: true, wantErr: true},
		{name: "three with args", args: []string{"1"}, three: true, wantErr: true},
		{name: "year flag zero", year: 0, yearSet: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveCal(tt.args, tt.three, tt.year, tt.yearSet, today)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveCal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("resolveCal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWriteCal(t *testing.T) {
	r := calendar.NewRenderer(noEvents{})
	ctx := context.Background()

	tests := []struct {
		name      string
		req       calRequest
		lines     int
		firstLine string
	}{
		{"single", calRequest{calSingle, 1403, 7}, calendar.BlockLines + 2, "مهر 1403"},
		{"three", calRequest{calAround, 1403, 1}, calendar.BlockLines + 2, "اسفند 1402"},
		{"year", calRequest{calFullYear, 1403, 0}, 2 + 4*(calendar.BlockLines+1) + 2, "1403"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeCal(ctx, &buf, r, tt.req, calendar.Style{}); err != nil {
				t.Fatalf("writeCal() error = %v", err)
			}
			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if len(lines) != tt.lines {
				t.Errorf("writeCal() wrote %d lines, want %d:\n%s", len(lines), tt.lines, buf.String())
			}
			if !strings.Contains(lines[0], tt.firstLine) {
				t.Errorf("first line = %q, want it to contain %q", lines[0], tt.firstLine)
			}
			if last := lines[len(lines)-1]; last != calendar.Legend {
				t.Errorf("last line = %q, want legend", last)
			}
		})
	}
}

func TestWriteCalInvalidYear(t *testing.T) {
	err := writeCal(context.Background(), &bytes.Buffer{}, calendar.NewRenderer(noEvents{}), calRequest{calSingle, 0, 1}, calendar.Style{})
	if err == nil {
		t.Error("writeCal() for year 0 succeeded")
	}
}
