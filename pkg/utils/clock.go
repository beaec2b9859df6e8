package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockMinutes parses an HH:mm clock string into minutes since midnight.
func ClockMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock %q", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q", clock)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock %q out of range", clock)
	}

	return hours*60 + minutes, nil
}

// MinutesClock renders minutes since midnight as HH:mm.
func MinutesClock(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
