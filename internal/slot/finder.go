package slot

import "github.com/javiermolinar/slotfinder/internal/clock"

// Result holds the outcome of planning one day.
type Result struct {
	Day      Day
	Duration int
	Busy     []Interval // merged busy set, empty when the request was rejected early
	Starts   []int      // slot starts in minutes since midnight, ascending
	Dropped  int        // events discarded by normalization
}

// Times returns the slot starts formatted as "HH:MM".
func (r Result) Times() []string {
	out := make([]string, 0, len(r.Starts))
	for _, m := range r.Starts {
		out = append(out, clock.FromMinutes(m))
	}
	return out
}

// Suggest returns the ascending "HH:MM" meeting starts on day where a meeting
// of duration minutes overlaps neither an event nor lunch. day is "Mon".."Fri"
// or a YYYY-MM-DD date. Invalid input and a fully booked day both return an
// empty slice.
func Suggest(events []Event, duration int, day string) []string {
	return Plan(events, duration, day).Times()
}

// Plan runs the same computation as Suggest and keeps the intermediate results.
func Plan(events []Event, duration int, day string) Result {
	return PlanDay(events, duration, ResolveDay(day))
}

// PlanDay plans an already resolved day.
func PlanDay(events []Event, duration int, day Day) Result {
	res := Result{Day: day, Duration: duration, Busy: []Interval{}, Starts: []int{}}
	if !day.Valid || duration <= 0 {
		return res
	}
	w := day.Window
	if w.Open+duration > w.Close {
		return res
	}

	busy, dropped := busySet(events, w)
	res.Dropped = dropped
	res.Busy = Merge(busy)
	res.Starts = Walk(w, duration, res.Busy)
	return res
}

// Walk returns the grid points in w where [t, t+duration) misses every
// interval of merged. merged must be sorted and disjoint, as returned by Merge.
func Walk(w Window, duration int, merged []Interval) []int {
	starts := []int{}
	if duration <= 0 || w.Open+duration > w.Close {
		return starts
	}

	latest := w.Close - duration
	i := 0
	for t := firstGridPoint(w.Open); t <= latest; t += GridStep {
		for i < len(merged) && merged[i].End <= t {
			i++
		}
		if i < len(merged) && clock.Overlaps(t, t+duration, merged[i].Start, merged[i].End) {
			continue
		}
		starts = append(starts, t)
	}
	return starts
}

// firstGridPoint rounds m up to the next multiple of GridStep.
func firstGridPoint(m int) int {
	if rem := m % GridStep; rem != 0 {
		return m + GridStep - rem
	}
	return m
}
