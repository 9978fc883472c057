package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	cellWidth = 4
	// Width is the visible width of every line of a month block.
	Width = 7 * cellWidth
	// BlockLines is the number of lines in a month block: title, weekday
	// header and six week rows, padded with blank lines.
	BlockLines = 8

	weekdayHeader = " Sat Sun Mon Tue Wed Thu Fri"
	gutter        = "  "

	// Legend explains the indicators.
	Legend = "*: Holiday  +: Other Event"

	reverse = "\x1b[7m"
	red     = "\x1b[38;2;255;0;0m"
	reset   = "\x1b[0m"
)

// Style controls terminal decoration of a month block.
type Style struct {
	// HighlightYear/Month/Day select a day shown in reverse video. A zero
	// day highlights nothing.
	HighlightYear, HighlightMonth, HighlightDay int
	// Color paints holidays red.
	Color bool
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func (st Style) cell(m Month, c Cell) string {
	if c.Empty() {
		return strings.Repeat(" ", cellWidth)
	}
	text := fmt.Sprintf("%2d%c", c.Day, c.Indicator.Symbol())
	if st.Color && c.Indicator == Holiday {
		text = red + text + reset
	}
	if st.HighlightDay == c.Day && st.HighlightMonth == m.Month && st.HighlightYear == m.Year {
		text = reverse + text + reset
	}
	return text + " "
}

// Lines renders m as a block of BlockLines lines, each Width columns wide
// once escape sequences are discarded.
func Lines(m Month, st Style) []string {
	lines := make([]string, 0, BlockLines)
	lines = append(lines, center(m.Name()+" "+strconv.Itoa(m.Year), Width), weekdayHeader)
	for _, w := range m.Weeks {
		var b strings.Builder
		for _, c := range w {
			b.WriteString(st.cell(m, c))
		}
		lines = append(lines, b.String())
	}
	for len(lines) < BlockLines {
		lines = append(lines, strings.Repeat(" ", Width))
	}
	return lines
}

// SideBySide joins month blocks column-wise.
func SideBySide(blocks ...[]string) []string {
	rows := 0
	for _, b := range blocks {
		rows = max(rows, len(b))
	}
	out := make([]string, rows)
	for i := range out {
		parts := make([]string, len(blocks))
		for j, b := range blocks {
			if i < len(b) {
				parts[j] = b[i]
			} else {
				parts[j] = strings.Repeat(" ", Width)
			}
		}
		out[i] = strings.Join(parts, gutter)
	}
	return out
}

// YearLines lays out twelve months in four rows of three under a centred
// year title, with a blank line after each row.
func YearLines(year int, months []Month, st Style) []string {
	const perRow = 3
	out := []string{center(strconv.Itoa(year), perRow*Width+(perRow-1)*len(gutter)), ""}
	for i := 0; i < len(months); i += perRow {
		var blocks [][]string
		for _, m := range months[i:min(i+perRow, len(months))] {
			blocks = append(blocks, Lines(m, st))
		}
		out = append(out, SideBySide(blocks...)...)
		out = append(out, "")
	}
	return out
}
