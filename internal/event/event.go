// Package event loads calendar events from files.
//
// A calendar file carries undated events that apply to every day plus
// optional per-day events keyed by weekday ("Mon".."Fri") or by date
// ("YYYY-MM-DD"). JSON, TOML and YAML files share that shape; iCalendar
// (.ics) files are expanded into dated entries for a requested date range.
package event

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/javiermolinar/slotfinder/internal/dateutil"
	"github.com/javiermolinar/slotfinder/internal/slot"
)

// Load errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported events file format")
	ErrDateRequired      = errors.New("calendar format requires a date range")
)

// Calendar holds the events read from one source.
type Calendar struct {
	Events []slot.Event            `json:"events" toml:"events" yaml:"events"`
	Days   map[string][]slot.Event `json:"days" toml:"days" yaml:"days"`
}

// For returns the events that apply to day: undated events, events keyed by
// the weekday and, when the day came from a date, events keyed by that date.
func (c *Calendar) For(day slot.Day) []slot.Event {
	if c == nil {
		return nil
	}
	out := make([]slot.Event, 0, len(c.Events))
	out = append(out, c.Events...)
	if day.Key != "" {
		out = append(out, c.Days[day.Key]...)
	}
	if day.HasDate() {
		out = append(out, c.Days[dateutil.FormatDate(day.Date)]...)
	}
	return out
}

// EventsFor returns the events that apply to day.
func (c *Calendar) EventsFor(_ context.Context, day slot.Day) ([]slot.Event, error) {
	return c.For(day), nil
}

// Len returns the total number of event records.
func (c *Calendar) Len() int {
	if c == nil {
		return 0
	}
	n := len(c.Events)
	for _, evs := range c.Days {
		n += len(evs)
	}
	return n
}

// add appends an event under key, creating the map if needed.
func (c *Calendar) add(key string, e slot.Event) {
	if c.Days == nil {
		c.Days = make(map[string][]slot.Event)
	}
	c.Days[key] = append(c.Days[key], e)
}

// Load reads a calendar file, choosing the decoder from the file extension.
// from and to bound the dates materialized for .ics files (to is exclusive)
// and are ignored for the other formats.
func Load(path string, from, to time.Time) (*Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var cal *Calendar
	switch ext {
	case ".json":
		cal, err = decodeJSON(data)
	case ".toml":
		cal, err = decodeTOML(data)
	case ".yaml", ".yml":
		cal, err = decodeYAML(data)
	case ".ics", ".ical":
		cal, err = decodeICS(data, from, to)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return cal, nil
}
