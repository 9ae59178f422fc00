package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/slotfinder/internal/config"
	"github.com/javiermolinar/slotfinder/internal/scheduler"
	"github.com/javiermolinar/slotfinder/internal/slot"
)

func (a *App) suggestCmd() *cobra.Command {
	var (
		day      string
		duration int
		events   string
		asJSON   bool
		copyOut  bool
		timeline bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest meeting start times for one day",
		Long: `List every half-hour start time on a day where a meeting of the given
length fits between events and the lunch break.

The day is a weekday (Mon..Fri), a date (YYYY-MM-DD) or a relative
keyword (today, tomorrow, friday, next-monday). Weekends and malformed
days have no slots.`,
		Example: `  slotfinder suggest --day Mon --duration 60
  slotfinder suggest --day 2026-02-02 --events calendar.ics --timeline
  slotfinder suggest --day tomorrow --duration 30 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("duration") {
				duration = a.config.Suggest.Duration
			}

			designator, err := resolveDesignator(day, time.Now())
			if err != nil {
				return err
			}

			resolved := slot.ResolveDay(designator)
			var from time.Time
			if resolved.HasDate() {
				from = resolved.Date
			}
			cal, err := a.loadCalendar(events, from, 1)
			if err != nil {
				return err
			}

			s := scheduler.New(cal, a.log)
			res, err := s.Day(context.Background(), designator, duration)
			if err != nil {
				return fmt.Errorf("planning %s: %w", designator, err)
			}
			a.log.Debug("suggested",
				zap.String("designator", designator),
				zap.Bool("valid", res.Day.Valid),
				zap.Int("slots", len(res.Starts)),
			)

			if copyOut && len(res.Starts) > 0 {
				if err := clipboard.WriteAll(strings.Join(res.Times(), "\n")); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if asJSON || a.config.Output.Format == config.FormatJSON {
				return writeJSON(out, toDayJSON(res))
			}
			PrintDay(out, res, PrintOpts{Timeline: timeline})
			if copyOut && len(res.Starts) > 0 {
				fmt.Fprintln(out, formatMuted("Copied to clipboard."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Day: Mon..Fri, YYYY-MM-DD or a relative keyword (defaults to today)")
	cmd.Flags().IntVarP(&duration, "duration", "m", 60, "Meeting length in minutes")
	cmd.Flags().StringVarP(&events, "events", "e", "", "Events file (.json, .toml, .yaml, .ics)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the suggested times to the clipboard")
	cmd.Flags().BoolVarP(&timeline, "timeline", "t", false, "Show the availability timeline")
	return cmd
}
