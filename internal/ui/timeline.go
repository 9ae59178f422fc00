package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/slotfinder/internal/clock"
	"github.com/javiermolinar/slotfinder/internal/slot"
)

const (
	cellFree = "░"
	cellBusy = "█"
)

// Timeline renders a day's working window as one cell per grid step,
// busy cells filled, e.g. "09:00 ░░░░░░██░░░░░░░░ 17:00".
// The line is truncated to width when width is positive.
func Timeline(res slot.Result, width int) string {
	if !res.Day.Valid {
		return ""
	}
	w := res.Day.Window

	var bar strings.Builder
	for t := w.Open; t < w.Close; t += slot.GridStep {
		end := min(t+slot.GridStep, w.Close)
		if cellBusyAt(res.Busy, t, end) {
			bar.WriteString(styleBusy.Render(cellBusy))
		} else {
			bar.WriteString(styleFree.Render(cellFree))
		}
	}

	line := styleEdge.Render(clock.FromMinutes(w.Open)) + " " + bar.String() + " " +
		styleEdge.Render(clock.FromMinutes(w.Close))
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}

// cellBusyAt reports whether any busy interval touches [start, end).
func cellBusyAt(busy []slot.Interval, start, end int) bool {
	for _, iv := range busy {
		if clock.Overlaps(start, end, iv.Start, iv.End) {
			return true
		}
	}
	return false
}
