package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotfinder/internal/config"
	"github.com/javiermolinar/slotfinder/internal/dateutil"
	"github.com/javiermolinar/slotfinder/internal/scheduler"
)

// nextJSON is the JSON shape of the next free slot.
type nextJSON struct {
	Found bool   `json:"found"`
	Date  string `json:"date,omitempty"`
	Day   string `json:"day,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

func (a *App) nextCmd() *cobra.Command {
	var (
		duration int
		horizon  int
		events   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Find the next free meeting slot",
		Long: `Search forward from now for the first start time where a meeting of
the given length fits. Weekends are skipped; today's past slots are not offered.`,
		Example: `  slotfinder next --duration 45
  slotfinder next --events calendar.ics --horizon 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("duration") {
				duration = a.config.Suggest.Duration
			}
			if !cmd.Flags().Changed("horizon") {
				horizon = a.config.Suggest.Horizon
			}

			now := time.Now()
			cal, err := a.loadCalendar(events, now, horizon)
			if err != nil {
				return err
			}

			sug, ok, err := scheduler.New(cal, a.log).Next(context.Background(), now, duration, horizon)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON || a.config.Output.Format == config.FormatJSON {
				res := nextJSON{Found: ok}
				if ok {
					res.Date = dateutil.FormatDate(sug.Date)
					res.Day = dateutil.WeekdayKey(sug.Date)
					res.Start, res.End = sug.Start, sug.End
				}
				return writeJSON(out, res)
			}

			if !ok {
				fmt.Fprintf(out, "No free slot in the next %d days.\n", horizon)
				return nil
			}
			fmt.Fprintf(out, "Next slot: %s %s %s\n",
				formatHeader(sug.Date.Format("Mon")),
				dateutil.FormatDate(sug.Date),
				formatSlot(sug.Start+"-"+sug.End))
			return nil
		},
	}

	cmd.Flags().IntVarP(&duration, "duration", "m", 60, "Meeting length in minutes")
	cmd.Flags().IntVar(&horizon, "horizon", 14, "Number of days to search")
	cmd.Flags().StringVarP(&events, "events", "e", "", "Events file (.json, .toml, .yaml, .ics)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
