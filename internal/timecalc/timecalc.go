package timecalc

import (
	"fmt"
	"math"
	"time"
)

// FormatHours renders a decimal-hours quantity as "1h 30m", "1h", or "45m".
// Minutes are rounded half-up over the whole quantity so that every view of
// the same duration agrees. Zero renders as "0m".
func FormatHours(decimalHours float64) string {
	totalMinutes := int64(math.Round(decimalHours * 60))
	h := totalMinutes / 60
	m := totalMinutes % 60
	if h > 0 {
		if m > 0 {
			return fmt.Sprintf("%dh %dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatClock formats seconds as HH:MM:SS for the stopwatch display.
func FormatClock(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Today returns the local calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
