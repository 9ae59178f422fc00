package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/javiermolinar/slotfinder/internal/clock"
	"github.com/javiermolinar/slotfinder/internal/dateutil"
	"github.com/javiermolinar/slotfinder/internal/slot"
)

const noSlotsMessage = "No available slots."

// dayJSON is the JSON shape of one planned day.
type dayJSON struct {
	Day      string   `json:"day"`
	Date     string   `json:"date,omitempty"`
	Window   string   `json:"window,omitempty"`
	Duration int      `json:"duration"`
	Slots    []string `json:"slots"`
	Busy     []string `json:"busy"`
}

func toDayJSON(res slot.Result) dayJSON {
	out := dayJSON{
		Day:      res.Day.Key,
		Duration: res.Duration,
		Slots:    res.Times(),
		Busy:     make([]string, 0, len(res.Busy)),
	}
	if res.Day.HasDate() {
		out.Date = dateutil.FormatDate(res.Day.Date)
	}
	if res.Day.Valid {
		out.Window = res.Day.Window.String()
	}
	for _, iv := range res.Busy {
		out.Busy = append(out.Busy, iv.String())
	}
	return out
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// dayTitle returns "Monday 2026-02-02" or just "Monday" for weekday-only requests.
func dayTitle(day slot.Day) string {
	name := longDayNames[day.Key]
	if day.HasDate() {
		return name + " " + dateutil.FormatDate(day.Date)
	}
	return name
}

var longDayNames = map[string]string{
	"Mon": "Monday",
	"Tue": "Tuesday",
	"Wed": "Wednesday",
	"Thu": "Thursday",
	"Fri": "Friday",
}

// PrintOpts configures text output.
type PrintOpts struct {
	Timeline bool // Show the availability timeline
	Width    int  // Line width (0 = terminal width)
}

func (o PrintOpts) width() int {
	if o.Width > 0 {
		return o.Width
	}
	return termWidth()
}

// PrintDay prints one planned day as text.
func PrintDay(w io.Writer, res slot.Result, opts PrintOpts) {
	if !res.Day.Valid || len(res.Starts) == 0 {
		fmt.Fprintln(w, noSlotsMessage)
		return
	}

	fmt.Fprintf(w, "=== %s ===\n", formatHeader(fmt.Sprintf("%s (%s) · %s meetings",
		dayTitle(res.Day), res.Day.Window, clock.FormatDuration(res.Duration))))
	if opts.Timeline {
		fmt.Fprintln(w, Timeline(res, opts.width()))
	}
	fmt.Fprintln(w)

	for _, row := range slotRows(res.Times(), opts.width()) {
		fmt.Fprintf(w, "  %s\n", row)
	}
	fmt.Fprintln(w)

	summary := fmt.Sprintf("%d slots", len(res.Starts))
	if len(res.Starts) == 1 {
		summary = "1 slot"
	}
	fmt.Fprint(w, formatStats(summary))
	if res.Dropped > 0 {
		fmt.Fprint(w, formatMuted(fmt.Sprintf(" (%d events ignored)", res.Dropped)))
	}
	fmt.Fprintln(w)
}

// slotRows lays times out in rows that fit width.
func slotRows(times []string, width int) []string {
	const cell = 7 // "HH:MM" plus two spaces
	perRow := min(8, max(1, (width-2)/cell))

	var rows []string
	for i := 0; i < len(times); i += perRow {
		end := min(i+perRow, len(times))
		cells := make([]string, 0, end-i)
		for _, t := range times[i:end] {
			cells = append(cells, formatSlot(t))
		}
		rows = append(rows, strings.Join(cells, "  "))
	}
	return rows
}

// PrintWeek prints a compact line per day with its timeline and first slots.
func PrintWeek(w io.Writer, days []slot.Result, opts PrintOpts) {
	width := opts.width()
	for _, res := range days {
		label := res.Day.Key
		if res.Day.HasDate() {
			label += " " + dateutil.FormatDate(res.Day.Date)
		}
		fmt.Fprintf(w, "%s  %s\n", formatHeader(label), Timeline(res, max(0, width-len(label)-2)))

		if len(res.Starts) == 0 {
			fmt.Fprintf(w, "  %s\n", formatWarning(noSlotsMessage))
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", formatStats(fmt.Sprintf("%2d free:", len(res.Starts))),
			strings.Join(colorAll(res.Times()), " "))
	}
}

func colorAll(times []string) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = formatSlot(t)
	}
	return out
}
