package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/parsicore/mitra/internal/config"
	"github.com/parsicore/mitra/internal/events"
	"github.com/parsicore/mitra/internal/jdate"
	"golang.org/x/term"
)

// newEventService loads the dataset named by c, or the bundled one, and
// returns a query service over it. Only commands that need events call it.
func newEventService(ctx context.Context, c *config.Config) (*events.Service, error) {
	ix, err := events.NewLoader(c.EventsPath()).Load(ctx)
	if err != nil {
		return nil, err
	}
	return events.NewService(ix, jdate.HijriConverter{Adjust: c.Calendar.HijriAdjust}), nil
}

// isTerminal reports whether w writes to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// parseArg parses a command argument as a Jalali date or date-time.
func parseArg(what, input string) (jdate.DateTime, bool, error) {
	dt, withTime, err := jdate.ParseInput(input)
	if err != nil {
		return jdate.DateTime{}, false, wrapf(err, "parsing %s %q", what, input)
	}
	return dt, withTime, nil
}

// printResult writes dt with its time only when the input carried one.
func printResult(w io.Writer, dt jdate.DateTime, withTime bool) error {
	out := dt.DateString()
	if withTime {
		out = dt.String()
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}

// wrapf prefixes err with a description of what was being done.
func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
