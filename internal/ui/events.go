package ui

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/slotfinder/internal/dateutil"
	"github.com/javiermolinar/slotfinder/internal/event"
)

// loadCalendar reads the events file, falling back to the configured default.
// from and days bound the dates expanded from iCalendar files; a zero from
// means no date is known.
func (a *App) loadCalendar(path string, from time.Time, days int) (*event.Calendar, error) {
	if path == "" {
		path = a.config.Suggest.Events
	}
	if path == "" {
		return &event.Calendar{}, nil
	}

	var to time.Time
	if !from.IsZero() {
		from = localDay(from)
		to = from.AddDate(0, 0, days)
	}

	cal, err := event.Load(path, from, to)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded events", zap.String("path", path), zap.Int("records", cal.Len()))
	return cal, nil
}

// resolveDesignator turns CLI day input into a day designator. Relative
// keywords ("today", "tomorrow", "friday", "next-monday") become dates;
// weekday keys and absolute dates pass through unchanged.
func resolveDesignator(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return dateutil.FormatDate(now), nil
	}
	if !dateutil.IsRelativeKeyword(s) {
		return s, nil
	}
	date, err := dateutil.ParseRelativeDate(s, now)
	if err != nil {
		return "", err
	}
	return dateutil.FormatDate(date), nil
}

// localDay returns midnight of t's calendar date in the local zone.
func localDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
