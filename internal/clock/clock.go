// Package clock converts between "HH:MM" time-of-day strings and minutes since midnight.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the exclusive upper bound of a time-of-day value.
const MinutesPerDay = 24 * 60

// ErrInvalidTimeFormat is returned for strings that are not a valid HH:MM time of day.
var ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")

// ToMinutes converts "HH:MM" (or "H:MM") to minutes since midnight.
// Hours must be 0-23 and minutes 0-59.
func ToMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if !isDigits(hh) || !isDigits(mm) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hours, _ := strconv.Atoi(hh)
	mins, _ := strconv.Atoi(mm)
	if hours > 23 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return hours*60 + mins, nil
}

// MustMinutes is ToMinutes for compile-time constants. It panics on bad input.
func MustMinutes(s string) int {
	m, err := ToMinutes(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromMinutes converts minutes since midnight to "HH:MM" format.
func FromMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= MinutesPerDay {
		m = MinutesPerDay - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps reports whether the half-open ranges [s1, e1) and [s2, e2) intersect.
// Ranges that only touch do not overlap.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
