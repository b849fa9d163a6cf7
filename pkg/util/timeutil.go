package util

import (
	"fmt"
	"time"
)

// Layouts for the literal formats accepted and emitted by the API.
const (
	LayoutDate      = "2006-01-02"
	LayoutTimestamp = "2006-01-02 15:04:05"
	LayoutClock     = "15:04:05"
)

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatClock renders an instant as HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Format(LayoutClock)
}

// FormatSegment renders a duration as H:MM:SS, truncated to whole seconds.
func FormatSegment(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	total := int64(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
