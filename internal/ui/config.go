package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotfinder/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View configuration",
		Long: `Show the effective configuration.

With --init, writes a config file with default values if none exists.

Example:
  slotfinder config --init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd.OutOrStdout(), a.config, config.DefaultConfigPath(), initFile)
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Create a default config file if missing")
	return cmd
}

func runConfig(w io.Writer, cfg *config.Config, path string, initFile bool) error {
	fmt.Fprintf(w, "Config file: %s\n\n", path)

	_, err := os.Stat(path)
	isNew := os.IsNotExist(err)
	if isNew && initFile {
		if err := config.Default().SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(w, "Created %s\n\n", path)
	} else if isNew {
		fmt.Fprintln(w, formatMuted("No config file found, using defaults."))
		fmt.Fprintln(w)
	}

	printConfig(w, cfg)
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[suggest]")
	fmt.Fprintf(w, "  duration         = %d\n", cfg.Suggest.Duration)
	if cfg.Suggest.Events != "" {
		fmt.Fprintf(w, "  events           = %s\n", cfg.Suggest.Events)
	}
	fmt.Fprintf(w, "  horizon          = %d\n", cfg.Suggest.Horizon)
	fmt.Fprintln(w, "\n[output]")
	fmt.Fprintf(w, "  format           = %s\n", cfg.Output.Format)
	fmt.Fprintf(w, "  no_color         = %t\n", cfg.Output.NoColor)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  debug            = %t\n", cfg.Log.Debug)
	fmt.Fprintf(w, "  level            = %s\n", cfg.Log.Level)
}
