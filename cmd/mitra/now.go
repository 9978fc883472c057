package main

import (
	"fmt"
	"io"
	"time"

	"github.com/parsicore/mitra/internal/jdate"
	"github.com/spf13/cobra"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Display the current Jalali date and time (default)",
	Long: `Display the current Jalali date and time as YYYY/MM/DD HH:MM:SS.

The clock is read in the configured timezone: local, tehran or an IANA name.`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	return printNow(cmd.OutOrStdout(), time.Now().In(loc))
}

func printNow(w io.Writer, t time.Time) error {
	_, err := fmt.Fprintln(w, jdate.FromTime(t))
	return err
}
