package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/slotfinder/internal/slot"
)

func TestTimeline(t *testing.T) {
	tests := []struct {
		name   string
		events []slot.Event
		day    string
		want   string
	}{
		{
			name: "monday lunch only",
			day:  "Mon",
			want: "09:00 ░░░░░░██░░░░░░░░ 17:00",
		},
		{
			name:   "partial cells count as busy",
			events: []slot.Event{{Start: "09:45", End: "10:15"}, {Start: "16:50", End: "18:00"}},
			day:    "Tue",
			want:   "09:00 ░██░░░██░░░░░░░█ 17:00",
		},
		{
			name: "friday",
			day:  "Fri",
			want: "09:00 ░░░░░░██░░░░ 15:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Timeline(slot.Plan(tt.events, 30, tt.day), 0)
			if got != tt.want {
				t.Errorf("Timeline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeline_Truncates(t *testing.T) {
	got := Timeline(slot.Plan(nil, 30, "Mon"), 10)
	if w := ansi.StringWidth(got); w > 10 {
		t.Errorf("width = %d, want <= 10 (%q)", w, got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis, got %q", got)
	}
}

func TestTimeline_InvalidDay(t *testing.T) {
	if got := Timeline(slot.Plan(nil, 30, "Sat"), 0); got != "" {
		t.Errorf("Timeline() = %q, want empty", got)
	}
}

func TestSlotRows(t *testing.T) {
	times := []string{"09:00", "09:30", "10:00", "10:30", "11:00"}

	tests := []struct {
		width int
		want  []string
	}{
		{80, []string{"09:00  09:30  10:00  10:30  11:00"}},
		{16, []string{"09:00  09:30", "10:00  10:30", "11:00"}},
		{3, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}},
	}

	for _, tt := range tests {
		got := slotRows(times, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("slotRows(width=%d) = %q, want %q", tt.width, got, tt.want)
		}
	}
}
