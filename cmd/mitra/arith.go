package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/parsicore/mitra/internal/jdate"
	"github.com/spf13/cobra"
)

// offsetUnits are the flags of add and sub. Exactly one is accepted.
var offsetUnits = []string{"days", "months", "years", "hours", "minutes", "seconds"}

var unitSeconds = map[string]int64{"hours": 3600, "minutes": 60, "seconds": 1}

var addCmd = &cobra.Command{
	Use:   "add <date|datetime>",
	Short: "Add a duration to a date or datetime",
	Long: `Add one duration unit to a date (YYYY/MM/DD or YYYY-MM-DD) or datetime
(YYYY/MM/DD HH:MM:SS or YYYY-MM-DDTHH:MM:SS). Values may be negative.

Months clamp the day to the target month and years move 30 Esfand to
29 Esfand in a common year. Hours, minutes and seconds are exact.

Example:
  mitra add 1403/06/31 --months 1
  mitra add "1403/01/01 23:30:00" --minutes 90`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var subCmd = &cobra.Command{
	Use:   "sub <date|datetime>",
	Short: "Subtract a duration from a date or datetime",
	Long: `Subtract one duration unit from a date or datetime. Values must be
non-negative; the same clamping rules as add apply.

Example:
  mitra sub 1404/12/29 --years 1`,
	Args: cobra.ExactArgs(1),
	RunE: runSub,
}

var diffCmd = &cobra.Command{
	Use:   "diff <date1> <date2>",
	Short: "Number of days between two dates",
	Long:  `Print the absolute number of days between two dates or datetimes. Times of day are ignored.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	addOffsetFlags(addCmd, "add")
	addOffsetFlags(subCmd, "subtract")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(diffCmd)
}

func addOffsetFlags(cmd *cobra.Command, verb string) {
	for _, u := range offsetUnits {
		cmd.Flags().Int64(u, 0, fmt.Sprintf("number of %s to %s", u, verb))
	}
	cmd.MarkFlagsMutuallyExclusive(offsetUnits...)
	cmd.MarkFlagsOneRequired(offsetUnits...)
}

// offsetFlag returns the duration unit set on cmd and its value.
func offsetFlag(cmd *cobra.Command) (string, int64, error) {
	for _, u := range offsetUnits {
		if cmd.Flags().Changed(u) {
			n, err := cmd.Flags().GetInt64(u)
			return u, n, err
		}
	}
	return "", 0, fmt.Errorf("one of --%s is required", strings.Join(offsetUnits, ", --"))
}

// shift moves dt by n of unit.
func shift(dt jdate.DateTime, unit string, n int64) (jdate.DateTime, error) {
	switch unit {
	case "days":
		return jdate.AddDays(dt, clampInt(n))
	case "months":
		return jdate.AddMonths(dt, clampInt(n))
	case "years":
		return jdate.AddYears(dt, clampInt(n))
	}
	mult, ok := unitSeconds[unit]
	if !ok {
		return jdate.DateTime{}, fmt.Errorf("unknown unit %q", unit)
	}
	if n > math.MaxInt64/mult || n < math.MinInt64/mult {
		return jdate.DateTime{}, fmt.Errorf("adding %s: %w", unit, jdate.ErrOutOfRange)
	}
	return jdate.AddSeconds(dt, n*mult)
}

// clampInt bounds n to a span no date arithmetic can survive, so the
// range check in jdate reports it instead of an integer overflow.
func clampInt(n int64) int {
	const limit = 12 * (jdate.MaxYear + 1) * 366
	return int(max(-limit, min(limit, n)))
}

func runAdd(cmd *cobra.Command, args []string) error {
	unit, n, err := offsetFlag(cmd)
	if err != nil {
		return err
	}
	return writeShifted(cmd.OutOrStdout(), args[0], unit, n)
}

func runSub(cmd *cobra.Command, args []string) error {
	unit, n, err := offsetFlag(cmd)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("--%s must be non-negative, got %d", unit, n)
	}
	return writeShifted(cmd.OutOrStdout(), args[0], unit, -n)
}

func writeShifted(w io.Writer, input, unit string, n int64) error {
	dt, withTime, err := parseArg("date", input)
	if err != nil {
		return err
	}
	out, err := shift(dt, unit, n)
	if err != nil {
		return wrapf(err, "shifting %s by %d %s", input, n, unit)
	}
	return printResult(w, out, withTime)
}

func runDiff(cmd *cobra.Command, args []string) error {
	return writeDiff(cmd.OutOrStdout(), args[0], args[1])
}

func writeDiff(w io.Writer, first, second string) error {
	a, _, err := parseArg("first date", first)
	if err != nil {
		return err
	}
	b, _, err := parseArg("second date", second)
	if err != nil {
		return err
	}
	days := jdate.DaysBetween(a, b)
	if days < 0 {
		days = -days
	}
	_, err = fmt.Fprintf(w, "Difference: %d days\n", days)
	return err
}
