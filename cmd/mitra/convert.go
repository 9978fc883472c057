package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/parsicore/mitra/internal/jdate"
	"github.com/spf13/cobra"
)

var toGregorianCmd = &cobra.Command{
	Use:   "to-gregorian <date|datetime>",
	Short: "Convert a Jalali date or datetime to Gregorian",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeGregorian(cmd.OutOrStdout(), args[0])
	},
}

var fromGregorianCmd = &cobra.Command{
	Use:   "from-gregorian <date|datetime>",
	Short: "Convert a Gregorian date or datetime to Jalali",
	Long:  `Convert a Gregorian YYYY-MM-DD, YYYY-MM-DD HH:MM:SS or YYYY-MM-DDTHH:MM:SS value to Jalali.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeFromGregorian(cmd.OutOrStdout(), args[0])
	},
}

var weekdayCmd = &cobra.Command{
	Use:   "weekday <date>",
	Short: "Print the Persian weekday name of a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeWeekday(cmd.OutOrStdout(), args[0])
	},
}

var isLeapCmd = &cobra.Command{
	Use:   "is-leap <year>",
	Short: "Check whether a Jalali year is a leap year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeIsLeap(cmd.OutOrStdout(), args[0])
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <date|datetime>",
	Short: "Display detailed information about a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeInfo(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(toGregorianCmd)
	rootCmd.AddCommand(fromGregorianCmd)
	rootCmd.AddCommand(weekdayCmd)
	rootCmd.AddCommand(isLeapCmd)
	rootCmd.AddCommand(infoCmd)
}

func writeGregorian(w io.Writer, input string) error {
	dt, withTime, err := parseArg("Jalali date", input)
	if err != nil {
		return err
	}
	layout := "2006-01-02"
	if withTime {
		layout = "2006-01-02 15:04:05"
	}
	_, err = fmt.Fprintln(w, dt.Gregorian().Format(layout))
	return err
}

func writeFromGregorian(w io.Writer, input string) error {
	t, withTime, err := jdate.ParseGregorianInput(input)
	if err != nil {
		return err
	}
	dt, err := jdate.FromGregorian(t)
	if err != nil {
		return wrapf(err, "converting %s", input)
	}
	return printResult(w, dt, withTime)
}

func writeWeekday(w io.Writer, input string) error {
	dt, _, err := parseArg("date", input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, jdate.WeekdayName(dt.Weekday()))
	return err
}

func writeIsLeap(w io.Writer, arg string) error {
	year, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", arg, err)
	}
	if year <= 0 {
		return fmt.Errorf("year must be a positive number, got %d", year)
	}
	_, err = fmt.Fprintln(w, yesNo(jdate.IsLeap(year)))
	return err
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func writeInfo(w io.Writer, input string) error {
	dt, withTime, err := parseArg("date", input)
	if err != nil {
		return err
	}
	info := jdate.Describe(dt, withTime)

	fmt.Fprintf(w, "Input Parsi Date/Time: %s\n", input)
	fmt.Fprintln(w, "-------------------------")
	fmt.Fprintf(w, " Parsed Date: %s\n", info.Date)
	if info.Time != "" {
		fmt.Fprintf(w, " Parsed Time: %s\n", info.Time)
	}
	fmt.Fprintf(w, " Weekday: %s\n", info.Weekday)
	fmt.Fprintf(w, " Day of Year: %d\n", info.DayOfYear)
	fmt.Fprintf(w, " Days in Current Month: %d\n", info.DaysInMonth)
	fmt.Fprintf(w, " Is Leap Year: %s\n", yesNo(info.IsLeapYear))
	fmt.Fprintf(w, " Gregorian Equivalent: %s\n", info.Gregorian)
	fmt.Fprintf(w, " First Day of Month: %s\n", info.FirstOfMonth)
	fmt.Fprintf(w, " Last Day of Month: %s\n", info.LastOfMonth)
	fmt.Fprintf(w, " First Day of Year: %s\n", info.FirstOfYear)
	_, err = fmt.Fprintf(w, " Last Day of Year: %s\n", info.LastOfYear)
	return err
}
