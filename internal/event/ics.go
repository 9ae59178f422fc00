package event

import (
	"bytes"
	"time"

	"github.com/apognu/gocal"

	"github.com/javiermolinar/slotfinder/internal/dateutil"
	"github.com/javiermolinar/slotfinder/internal/slot"
)

// decodeICS expands the VEVENTs of an iCalendar document that fall inside
// [from, to) into per-date entries. An event spanning midnight is split so
// each date sees only its own part; parts running past midnight end at 23:59.
func decodeICS(data []byte, from, to time.Time) (*Calendar, error) {
	if from.IsZero() || !to.After(from) {
		return nil, ErrDateRequired
	}
	from = dateutil.TruncateToDay(from)
	loc := from.Location()

	parser := gocal.NewParser(bytes.NewReader(data))
	parser.Start, parser.End = &from, &to
	if err := parser.Parse(); err != nil {
		return nil, err
	}

	cal := &Calendar{}
	for _, e := range parser.Events {
		if e.Start == nil || e.End == nil {
			continue
		}
		start, end := e.Start.In(loc), e.End.In(loc)
		for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
			next := day.AddDate(0, 0, 1)
			if !start.Before(next) || !end.After(day) {
				continue
			}
			cal.add(dateutil.FormatDate(day), slot.Event{
				Start: clockOn(day, start),
				End:   clockOn(day, end),
			})
		}
	}
	return cal, nil
}

// clockOn returns t as "HH:MM" seen from day, clamped to that day.
func clockOn(day, t time.Time) string {
	if t.Before(day) {
		return "00:00"
	}
	if !t.Before(day.AddDate(0, 0, 1)) {
		return "23:59"
	}
	return t.Format("15:04")
}
