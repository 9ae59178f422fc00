package slot

import (
	"slices"

	"github.com/javiermolinar/slotfinder/internal/clock"
)

// Event is a raw calendar record. An empty field counts as missing.
type Event struct {
	Start string `json:"start" toml:"start" yaml:"start"`
	End   string `json:"end" toml:"end" yaml:"end"`
}

// Interval is a half-open range [Start, End) in minutes since midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// String returns the interval as "HH:MM-HH:MM".
func (iv Interval) String() string {
	return clock.FromMinutes(iv.Start) + "-" + clock.FromMinutes(iv.End)
}

// Clamp restricts iv to w. The second result is false when nothing remains.
func (iv Interval) Clamp(w Window) (Interval, bool) {
	out := Interval{Start: max(iv.Start, w.Open), End: min(iv.End, w.Close)}
	if out.End <= out.Start {
		return Interval{}, false
	}
	return out, true
}

// NormalizeEvent parses an event and clamps it to w. It reports false for
// records with missing or unparsable times, zero or negative length, or no
// overlap with the window.
func NormalizeEvent(e Event, w Window) (Interval, bool) {
	start, err := clock.ToMinutes(e.Start)
	if err != nil {
		return Interval{}, false
	}
	end, err := clock.ToMinutes(e.End)
	if err != nil {
		return Interval{}, false
	}
	if end <= start {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}.Clamp(w)
}

// BusySet builds the unmerged busy intervals for w: every usable event plus
// the lunch block, all clamped to the window.
func BusySet(events []Event, w Window) []Interval {
	busy, _ := busySet(events, w)
	return busy
}

// busySet is BusySet that also reports how many events were dropped.
func busySet(events []Event, w Window) ([]Interval, int) {
	busy := make([]Interval, 0, len(events)+1)
	for _, e := range events {
		if iv, ok := NormalizeEvent(e, w); ok {
			busy = append(busy, iv)
		}
	}
	dropped := len(events) - len(busy)
	if lunch, ok := (Interval{Start: LunchStart, End: LunchEnd}).Clamp(w); ok {
		busy = append(busy, lunch)
	}
	return busy, dropped
}

// Merge sorts intervals by start and joins those that overlap or touch.
// The input slice is not modified.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return []Interval{}
	}

	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b Interval) int {
		return a.Start - b.Start
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			last.End = max(last.End, iv.End)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
