package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2026-02-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	invalid := []string{
		"",
		"01-15-2025",
		"2026-2-2",
		"2026-02-30",
		"2026-13-01",
		"Mon",
		"2026-02-02T10:00",
	}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParseDate(in)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseDate(%q) error = %v, want %v", in, err, ErrInvalidDateFormat)
			}
		})
	}
}

func TestWeekdayKey(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), "Sun"},
		{time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), "Mon"},
		{time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC), "Fri"},
		{time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC), "Sat"},
	}

	for _, tt := range tests {
		if got := WeekdayKey(tt.date); got != tt.want {
			t.Errorf("WeekdayKey(%s) = %q, want %q", FormatDate(tt.date), got, tt.want)
		}
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name       string
		input      time.Time
		wantMonday time.Time
		wantSunday time.Time
	}{
		{
			name:       "Monday input returns same Monday",
			input:      time.Date(2025, 1, 6, 10, 30, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Wednesday returns previous Monday",
			input:      time.Date(2025, 1, 8, 14, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Sunday belongs to the week that started on Monday",
			input:      time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.input)
			if !monday.Equal(tt.wantMonday) {
				t.Errorf("monday = %v, want %v", monday, tt.wantMonday)
			}
			if !sunday.Equal(tt.wantSunday) {
				t.Errorf("sunday = %v, want %v", sunday, tt.wantSunday)
			}
		})
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Wednesday, January 8, 2025
	now := time.Date(2025, 1, 8, 15, 0, 0, 0, time.UTC)
	today := TruncateToDay(now)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", today},
		{"TODAY", today},
		{"tomorrow", today.AddDate(0, 0, 1)},
		{"next-week", today.AddDate(0, 0, 7)},
		{"friday", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"next-monday", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"2025-01-20", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseRelativeDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRelativeDate_Errors(t *testing.T) {
	now := time.Date(2025, 1, 8, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		input   string
		wantErr error
	}{
		{"yesterday", ErrInvalidDateFormat},
		{"next-funday", ErrInvalidDateFormat},
		{"2025-01-07", ErrDateInPast},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseRelativeDate(tt.input, now)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsRelativeKeyword(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"today", true},
		{"Tomorrow", true},
		{"next-week", true},
		{"monday", true},
		{"next-friday", true},
		{"Mon", false},
		{"2026-02-02", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsRelativeKeyword(tt.input); got != tt.want {
			t.Errorf("IsRelativeKeyword(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
