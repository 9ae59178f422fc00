package slot

import (
	"time"

	"github.com/javiermolinar/slotfinder/internal/dateutil"
)

// Day is the outcome of resolving a day designator.
// When Valid is false the other fields are zero.
type Day struct {
	Key    string    // weekday key, "Mon".."Fri"
	Window Window    // working hours for Key
	Date   time.Time // set only when the designator was a YYYY-MM-DD date
	Valid  bool
}

// HasDate reports whether the day was resolved from a calendar date.
func (d Day) HasDate() bool {
	return !d.Date.IsZero()
}

// ResolveDay resolves a weekday abbreviation ("Mon".."Fri") or a YYYY-MM-DD
// date to a working day. Weekend dates, malformed strings and unknown
// abbreviations resolve to an invalid Day.
func ResolveDay(designator string) Day {
	if w, ok := WindowFor(designator); ok {
		return Day{Key: designator, Window: w, Valid: true}
	}

	date, err := dateutil.ParseDate(designator)
	if err != nil {
		return Day{}
	}
	return ResolveDate(date)
}

// ResolveDate resolves a calendar date to its working day.
func ResolveDate(date time.Time) Day {
	key := dateutil.WeekdayKey(date)
	w, ok := WindowFor(key)
	if !ok {
		return Day{}
	}
	return Day{Key: key, Window: w, Date: dateutil.TruncateToDay(date), Valid: true}
}
