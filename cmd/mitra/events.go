package main

import (
	"fmt"
	"io"

	"github.com/parsicore/mitra/internal/events"
	"github.com/parsicore/mitra/internal/jdate"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events <date>",
	Short: "List the events and holidays of a date",
	Long: `List the official events of a Jalali date: solar-calendar events first,
then those fixed in the lunar Hijri calendar. Holidays are marked [تعطیل].

Example:
  mitra events 1403/01/01`,
	Args: cobra.ExactArgs(1),
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}

// eventLister answers per-day event queries.
type eventLister interface {
	EventsFor(year, month, day int) ([]events.Event, error)
}

func runEvents(cmd *cobra.Command, args []string) error {
	dt, _, err := parseArg("date", args[0])
	if err != nil {
		return err
	}
	svc, err := newEventService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return writeEvents(cmd.OutOrStdout(), svc, dt)
}

func writeEvents(w io.Writer, src eventLister, dt jdate.DateTime) error {
	evs, err := src.EventsFor(dt.Year, dt.Month, dt.Day)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Events for %s:\n", jdate.Format(dt, "%A، %d %B %Y"))
	if len(evs) == 0 {
		_, err = fmt.Fprintln(w, "  - No events found.")
		return err
	}
	for _, ev := range evs {
		prefix := "- "
		if ev.Holiday {
			prefix = "[تعطیل] "
		}
		if _, err := fmt.Fprintf(w, "  %s%s\n", prefix, ev.Title); err != nil {
			return err
		}
	}
	return nil
}
