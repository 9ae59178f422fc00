// Package scheduler runs the slot finder across days: a full working week
// or a forward search for the next free slot.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/javiermolinar/slotfinder/internal/clock"
	"github.com/javiermolinar/slotfinder/internal/dateutil"
	"github.com/javiermolinar/slotfinder/internal/slot"
)

// ErrInvalidHorizon is returned when Next is asked to search zero days.
var ErrInvalidHorizon = errors.New("horizon must be at least one day")

// EventSource provides the calendar events for a resolved day.
type EventSource interface {
	EventsFor(ctx context.Context, day slot.Day) ([]slot.Event, error)
}

// Scheduler plans meeting slots using events from a source.
type Scheduler struct {
	source EventSource
	log    *zap.Logger
}

// New creates a Scheduler. A nil source means no events; a nil logger disables logging.
func New(source EventSource, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{source: source, log: log}
}

// DaySlots is the plan for one day of a week.
type DaySlots struct {
	Date time.Time
	slot.Result
}

// Suggestion is a single free slot on a concrete date.
type Suggestion struct {
	Date  time.Time
	Start string // "HH:MM"
	End   string // "HH:MM"
}

// Day plans a single day given as "Mon".."Fri" or YYYY-MM-DD.
// An invalid designator yields an empty result, not an error.
func (s *Scheduler) Day(ctx context.Context, designator string, duration int) (slot.Result, error) {
	return s.plan(ctx, slot.ResolveDay(designator), duration)
}

// Week plans every working day of the ISO week containing anchor.
// Days are planned concurrently and returned in calendar order.
func (s *Scheduler) Week(ctx context.Context, anchor time.Time, duration int) ([]DaySlots, error) {
	monday, _ := dateutil.WeekRange(anchor)
	keys := slot.Weekdays()
	results := make([]DaySlots, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	for i := range keys {
		i := i
		date := monday.AddDate(0, 0, i)
		g.Go(func() error {
			res, err := s.plan(ctx, slot.ResolveDate(date), duration)
			if err != nil {
				return fmt.Errorf("planning %s: %w", dateutil.FormatDate(date), err)
			}
			results[i] = DaySlots{Date: date, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("planned week",
		zap.String("monday", dateutil.FormatDate(monday)),
		zap.Int("duration", duration),
	)
	return results, nil
}

// Next returns the first free slot at or after now, searching up to horizon
// calendar days starting with today. Weekends are skipped. On today, slots
// that start before now are not offered.
func (s *Scheduler) Next(ctx context.Context, now time.Time, duration, horizon int) (Suggestion, bool, error) {
	if horizon < 1 {
		return Suggestion{}, false, ErrInvalidHorizon
	}

	today := dateutil.TruncateToDay(now)
	nowMinutes := now.Hour()*60 + now.Minute()
	if now.Second() > 0 || now.Nanosecond() > 0 {
		nowMinutes++
	}

	for offset := 0; offset < horizon; offset++ {
		if err := ctx.Err(); err != nil {
			return Suggestion{}, false, err
		}

		date := today.AddDate(0, 0, offset)
		day := slot.ResolveDate(date)
		if !day.Valid {
			continue
		}

		res, err := s.plan(ctx, day, duration)
		if err != nil {
			return Suggestion{}, false, fmt.Errorf("planning %s: %w", dateutil.FormatDate(date), err)
		}
		for _, start := range res.Starts {
			if offset == 0 && start < nowMinutes {
				continue
			}
			return Suggestion{
				Date:  date,
				Start: clock.FromMinutes(start),
				End:   clock.FromMinutes(start + duration),
			}, true, nil
		}
	}

	s.log.Debug("no slot found", zap.Int("horizon", horizon), zap.Int("duration", duration))
	return Suggestion{}, false, nil
}

// plan fetches the day's events and runs the finder.
func (s *Scheduler) plan(ctx context.Context, day slot.Day, duration int) (slot.Result, error) {
	if !day.Valid {
		s.log.Debug("invalid day, no slots")
		return slot.PlanDay(nil, duration, day), nil
	}

	var events []slot.Event
	if s.source != nil {
		var err error
		events, err = s.source.EventsFor(ctx, day)
		if err != nil {
			return slot.Result{}, fmt.Errorf("fetching events: %w", err)
		}
	}

	res := slot.PlanDay(events, duration, day)
	s.log.Debug("planned day",
		zap.String("day", day.Key),
		zap.Int("events", len(events)),
		zap.Int("dropped", res.Dropped),
		zap.Int("busy", len(res.Busy)),
		zap.Int("slots", len(res.Starts)),
	)
	return res, nil
}
