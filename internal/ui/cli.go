// Package ui implements the slotfinder command line.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/slotfinder/internal/config"
	"github.com/javiermolinar/slotfinder/internal/logging"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	log     *zap.Logger
	root    *cobra.Command
	debug   bool // Enable debug logging to stderr
	noColor bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, log: zap.NewNop()}

	a.root = &cobra.Command{
		Use:   "slotfinder",
		Short: "Suggest meeting start times for a working day",
		Long: `Slotfinder suggests meeting start times within a day's working hours.

Working hours are Mon-Thu 09:00-17:00 and Fri 09:00-15:00, lunch
(12:00-13:00) is always blocked, and meetings start on the half hour.
Busy time comes from an events file (JSON, TOML, YAML or iCalendar).`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.noColor || a.config.Output.NoColor {
				DisableColor()
			}
			logger, err := logging.New(a.debug || a.config.Log.Debug, a.config.Log.Level)
			if err != nil {
				return err
			}
			a.log = logger
			return nil
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (to stderr)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.suggestCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.nextCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slotfinder %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close flushes the logger.
func (a *App) Close() error {
	_ = a.log.Sync()
	return nil
}
