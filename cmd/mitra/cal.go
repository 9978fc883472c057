package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/parsicore/mitra/internal/calendar"
	"github.com/parsicore/mitra/internal/jdate"
	"github.com/spf13/cobra"
)

var (
	calThree bool
	calYear  int
)

var calCmd = &cobra.Command{
	Use:   "cal [MONTH] [YEAR]",
	Short: "Display a Jalali calendar",
	Long: `Display a month calendar with holidays marked '*' and other events '+'.

Without arguments the current month is shown. MONTH (1-12) and YEAR select
another month; YEAR defaults to the current year. Today is highlighted
when writing to a terminal.

Example:
  mitra cal
  mitra cal 7 1403
  mitra cal -3
  mitra cal -y 1403`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runCal,
}

func init() {
	calCmd.Flags().BoolVarP(&calThree, "three", "3", false, "show the previous, current and next month")
	calCmd.Flags().IntVarP(&calYear, "year", "y", 0, "show all twelve months of a year")
	calCmd.MarkFlagsMutuallyExclusive("three", "year")

	rootCmd.AddCommand(calCmd)
}

// calMode selects what cal prints.
type calMode int

const (
	calSingle calMode = iota
	calAround
	calFullYear
)

// calRequest is a resolved cal invocation.
type calRequest struct {
	mode        calMode
	year, month int
}

// resolveCal turns cal's arguments into a request relative to today.
func resolveCal(args []string, three bool, year int, yearSet bool, today jdate.DateTime) (calRequest, error) {
	switch {
	case yearSet:
		if len(args) > 0 {
			return calRequest{}, fmt.Errorf("--year cannot be combined with MONTH or YEAR arguments")
		}
		if year < jdate.MinYear || year > jdate.MaxYear {
			return calRequest{}, fmt.Errorf("year must be between %d and %d, got %d", jdate.MinYear, jdate.MaxYear, year)
		}
		return calRequest{mode: calFullYear, year: year}, nil
	case three:
		if len(args) > 0 {
			return calRequest{}, fmt.Errorf("--three cannot be combined with MONTH or YEAR arguments")
		}
		return calRequest{mode: calAround, year: today.Year, month: today.Month}, nil
	}

	req := calRequest{mode: calSingle, year: today.Year, month: today.Month}
	if len(args) > 0 {
		m, err := strconv.Atoi(args[0])
		if err != nil || m < 1 || m > 12 {
			return calRequest{}, fmt.Errorf("month must be between 1 and 12, got %q", args[0])
		}
		req.month = m
	}
	if len(args) > 1 {
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return calRequest{}, fmt.Errorf("invalid year %q: %w", args[1], err)
		}
		req.year = y
	}
	return req, nil
}

func runCal(cmd *cobra.Command, args []string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	today := jdate.FromTime(time.Now().In(loc))
	req, err := resolveCal(args, calThree, calYear, cmd.Flags().Changed("year"), today)
	if err != nil {
		return err
	}

	svc, err := newEventService(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	tty := isTerminal(w)
	st := calendar.Style{Color: cfg.ColorEnabled(tty)}
	if tty {
		st.HighlightYear, st.HighlightMonth, st.HighlightDay = today.Year, today.Month, today.Day
	}
	return writeCal(cmd.Context(), w, calendar.NewRenderer(svc), req, st)
}

// writeCal renders req and writes it followed by the legend.
func writeCal(ctx context.Context, w io.Writer, r *calendar.Renderer, req calRequest, st calendar.Style) error {
	var lines []string
	switch req.mode {
	case calFullYear:
		months, err := r.RenderYear(ctx, req.year)
		if err != nil {
			return err
		}
		lines = calendar.YearLines(req.year, months, st)
	case calAround:
		months, err := r.RenderThree(ctx, req.year, req.month)
		if err != nil {
			return err
		}
		blocks := make([][]string, len(months))
		for i, m := range months {
			blocks[i] = calendar.Lines(m, st)
		}
		lines = calendar.SideBySide(blocks...)
	default:
		m, err := r.RenderMonth(ctx, req.year, req.month)
		if err != nil {
			return err
		}
		lines = calendar.Lines(m, st)
	}
	_, err := fmt.Fprintf(w, "%s\n\n%s\n", strings.Join(lines, "\n"), calendar.Legend)
	return err
}
