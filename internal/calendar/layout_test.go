package calendar

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/parsicore/mitra/internal/events"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func visible(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func renderTir(t *testing.T) Month {
	t.Helper()
	src := &stubSource{events: map[dayKey][]events.Event{
		{1403, 4, 1}:  {{Title: "holiday", Holiday: true}},
		{1403, 4, 10}: {{Title: "occasion"}},
	}}
	m, err := NewRenderer(src).RenderMonth(context.Background(), 1403, 4)
	if err != nil {
		t.Fatalf("RenderMonth() error = %v", err)
	}
	return m
}

func TestLines(t *testing.T) {
	m := renderTir(t)
	lines := Lines(m, Style{})

	if len(lines) != BlockLines {
		t.Fatalf("Lines() returned %d lines, want %d", len(lines), BlockLines)
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != Width {
			t.Errorf("line %d %q has width %d, want %d", i, l, n, Width)
		}
	}
	if !strings.Contains(lines[0], "تیر 1403") {
		t.Errorf("title = %q", lines[0])
	}
	if lines[1] != weekdayHeader {
		t.Errorf("header = %q", lines[1])
	}
	// Day 1 is a Friday: six empty cells then " 1*".
	if want := strings.Repeat(" ", 24) + " 1* "; lines[2] != want {
		t.Errorf("first week = %q, want %q", lines[2], want)
	}
	if !strings.Contains(lines[4], "10+") {
		t.Errorf("third week = %q, want day 10 marked as occasion", lines[4])
	}
}

func TestLinesPadsShortMonths(t *testing.T) {
	// Esfand 1404 has 29 days starting on a Friday: five weeks, one blank line.
	m, err := NewRenderer(&stubSource{}).RenderMonth(context.Background(), 1404, 12)
	if err != nil {
		t.Fatal(err)
	}
	lines := Lines(m, Style{})
	if len(lines) != BlockLines {
		t.Fatalf("Lines() returned %d lines", len(lines))
	}
	if strings.TrimSpace(lines[BlockLines-1]) != "" {
		t.Errorf("last line = %q, want blank padding", lines[BlockLines-1])
	}
}

func TestLinesStyle(t *testing.T) {
	m := renderTir(t)
	lines := Lines(m, Style{HighlightYear: 1403, HighlightMonth: 4, HighlightDay: 10, Color: true})

	if !strings.Contains(lines[2], red) {
		t.Errorf("holiday not coloured: %q", lines[2])
	}
	if !strings.Contains(lines[4], reverse+"10+"+reset) {
		t.Errorf("day 10 not highlighted: %q", lines[4])
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(visible(l)); n != Width {
			t.Errorf("line %d has visible width %d, want %d", i, n, Width)
		}
	}

	// Highlighting another month leaves this one plain.
	plain := Lines(m, Style{HighlightYear: 1403, HighlightMonth: 5, HighlightDay: 10})
	if strings.Contains(strings.Join(plain, "\n"), reverse) {
		t.Error("highlight leaked into another month")
	}
}

func TestSideBySide(t *testing.T) {
	a := []string{"aa", "bb", "cc"}
	b := []string{"xx"}
	got := SideBySide(a, b)
	if len(got) != 3 {
		t.Fatalf("SideBySide() returned %d lines", len(got))
	}
	if got[0] != "aa"+gutter+"xx" {
		t.Errorf("line 0 = %q", got[0])
	}
	if got[2] != "cc"+gutter+strings.Repeat(" ", Width) {
		t.Errorf("line 2 = %q", got[2])
	}
}

func TestYearLines(t *testing.T) {
	months, err := NewRenderer(&stubSource{}).RenderYear(context.Background(), 1403)
	if err != nil {
		t.Fatal(err)
	}
	lines := YearLines(1403, months, Style{})

	// Title, blank, then four rows of BlockLines lines each followed by a blank.
	if want := 2 + 4*(BlockLines+1); len(lines) != want {
		t.Fatalf("YearLines() returned %d lines, want %d", len(lines), want)
	}
	if strings.TrimSpace(lines[0]) != "1403" {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.Contains(lines[2], "فروردین") || !strings.Contains(lines[2], "خرداد") {
		t.Errorf("first row title = %q", lines[2])
	}
}
