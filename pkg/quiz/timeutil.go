package quiz

import "fmt"

// FormatTime renders a second count for a countdown display: H:MM:SS once
// hours are involved, M:SS below an hour.
func FormatTime(totalSeconds int) string {
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ParseTimeLimit converts a time limit in minutes to seconds.
func ParseTimeLimit(minutes int) int {
	return minutes * 60
}
