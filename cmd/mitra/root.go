package main

import (
	"log/slog"

	"cloudeng.io/logging/ctxlog"
	"github.com/parsicore/mitra/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	// cfg is loaded before any command runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mitra",
	Short: "Persian (Jalali) calendar tool",
	Long: `mitra works with dates in the Persian (Jalali/Shamsi) calendar.

Without a command it prints the current date and time. It can also:

  - convert between Jalali and Gregorian dates
  - do date arithmetic and compute differences
  - format and parse dates with %-patterns
  - print month and year calendars marked with holidays
  - list the official events and holidays of a day`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Args:              cobra.NoArgs,
	RunE:              runNow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $MITRA_CONFIG or "+config.DefaultConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}

// setup loads the configuration and installs the logger in the command's
// context.
func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		cmd.SetContext(ctxlog.Context(cmd.Context(), logger))
	}
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c
	ctxlog.Logger(cmd.Context()).Debug("loaded config", "path", config.ResolvePath(configPath), "timezone", cfg.Timezone, "events", cfg.EventsPath())
	return nil
}
