// Package slot computes candidate meeting start times within a working day.
//
// The computation is pure: busy intervals (calendar events plus a fixed lunch
// block) are clamped to the day's working window, merged, and a fixed
// 30-minute grid is walked across the window. Every function in this package
// is safe for concurrent use.
package slot

import "github.com/javiermolinar/slotfinder/internal/clock"

// GridStep is the spacing between permissible meeting starts, anchored at midnight.
const GridStep = 30

// Lunch block, busy on every working day.
var (
	LunchStart = clock.MustMinutes("12:00")
	LunchEnd   = clock.MustMinutes("13:00")
)

// Window is the open/close range of a working day, in minutes since midnight.
type Window struct {
	Open  int
	Close int
}

// Minutes returns the length of the window.
func (w Window) Minutes() int {
	return max(0, w.Close-w.Open)
}

// String returns the window as "HH:MM-HH:MM".
func (w Window) String() string {
	return clock.FromMinutes(w.Open) + "-" + clock.FromMinutes(w.Close)
}

// weekdays lists the working days in calendar order.
var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// workingHours maps a weekday key to its working window.
var workingHours = map[string]Window{
	"Mon": {Open: clock.MustMinutes("09:00"), Close: clock.MustMinutes("17:00")},
	"Tue": {Open: clock.MustMinutes("09:00"), Close: clock.MustMinutes("17:00")},
	"Wed": {Open: clock.MustMinutes("09:00"), Close: clock.MustMinutes("17:00")},
	"Thu": {Open: clock.MustMinutes("09:00"), Close: clock.MustMinutes("17:00")},
	"Fri": {Open: clock.MustMinutes("09:00"), Close: clock.MustMinutes("15:00")},
}

// WindowFor returns the working window for a weekday key ("Mon".."Fri").
func WindowFor(key string) (Window, bool) {
	w, ok := workingHours[key]
	return w, ok
}

// Weekdays returns the working weekday keys in calendar order.
func Weekdays() []string {
	out := make([]string, len(weekdays))
	copy(out, weekdays)
	return out
}
