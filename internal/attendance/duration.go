package attendance

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// parseClock parses a 24-hour "HH:mm" timestamp into minutes since midnight.
func parseClock(s string) (int, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid clock time %q (expected HH:mm)", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	if hour > 23 {
		return 0, fmt.Errorf("hour %d out of range", hour)
	}
	if minute > 59 {
		return 0, fmt.Errorf("minute %d out of range", minute)
	}

	return hour*60 + minute, nil
}

// WorkedDuration computes the wall-clock time between the entry and exit
// timestamps as a human-friendly string, e.g. "8h 30m". Malformed timestamps
// or an exit before the entry make the duration unavailable (ok=false) rather
// than an error: the caller degrades to a placeholder, nothing fails.
func WorkedDuration(entryTime, exitTime string) (string, bool) {
	entry, err := parseClock(entryTime)
	if err != nil {
		return "", false
	}
	exit, err := parseClock(exitTime)
	if err != nil {
		return "", false
	}
	if exit < entry {
		return "", false
	}
	return FormatMinutes(exit - entry), true
}

// FormatMinutes converts a minute count to a human-friendly string.
// Examples: 510 → "8h 30m", 30 → "30m", 0 → "0m".
func FormatMinutes(m int) string {
	if m <= 0 {
		return "0m"
	}

	hours := m / 60
	mins := m % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 || hours == 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}

	return strings.Join(parts, " ")
}
