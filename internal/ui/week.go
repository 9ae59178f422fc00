package ui

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotfinder/internal/config"
	"github.com/javiermolinar/slotfinder/internal/dateutil"
	"github.com/javiermolinar/slotfinder/internal/scheduler"
	"github.com/javiermolinar/slotfinder/internal/slot"
)

func (a *App) weekCmd() *cobra.Command {
	var (
		date     string
		duration int
		events   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show free meeting slots for every working day of a week",
		Long: `Plan Monday through Friday of the week containing --date and show
each day's availability timeline and free start times.`,
		Example: `  slotfinder week
  slotfinder week --date 2026-02-04 --duration 30 --events calendar.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("duration") {
				duration = a.config.Suggest.Duration
			}

			anchor := time.Now()
			if date != "" {
				var err error
				anchor, err = dateutil.ParseDate(date)
				if err != nil {
					return err
				}
			}
			monday, _ := dateutil.WeekRange(localDay(anchor))

			cal, err := a.loadCalendar(events, monday, 7)
			if err != nil {
				return err
			}

			week, err := scheduler.New(cal, a.log).Week(context.Background(), monday, duration)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON || a.config.Output.Format == config.FormatJSON {
				days := make([]dayJSON, 0, len(week))
				for _, d := range week {
					days = append(days, toDayJSON(d.Result))
				}
				return writeJSON(out, days)
			}

			results := make([]slot.Result, 0, len(week))
			for _, d := range week {
				results = append(results, d.Result)
			}
			PrintWeek(out, results, PrintOpts{})
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date in the week (YYYY-MM-DD, defaults to today)")
	cmd.Flags().IntVarP(&duration, "duration", "m", 60, "Meeting length in minutes")
	cmd.Flags().StringVarP(&events, "events", "e", "", "Events file (.json, .toml, .yaml, .ics)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
