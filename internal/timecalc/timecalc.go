package timecalc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Display layouts: two-digit 24h clock time and day/month/year dates.
const (
	ClockLayout = "15:04"
	DateLayout  = "02/01/2006"

	// MissingClock is shown in place of a clock time that was never punched.
	MissingClock = "--:--"
)

// GenerateID creates a unique record ID from the timestamp and a random UUID suffix.
func GenerateID(t time.Time) string {
	return fmt.Sprintf("%s-%s", t.Format("20060102-150405"), uuid.NewString()[:8])
}

// FormatClock formats t as a clock time like "08:05". The zero time yields "--:--".
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return MissingClock
	}
	return t.Format(ClockLayout)
}

// FormatDate formats t as a calendar date like "27/02/2026". The zero time yields "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatHHMM formats d as HH:MM, truncating seconds. Negative durations read as 00:00.
func FormatHHMM(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatHours formats fractional hours with two decimals, e.g. "8.50h".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2fh", h)
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	// Go's weekday: Sunday=0, Monday=1, ..., Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := StartOfDay(t.AddDate(0, 0, -(wd - 1)))
	sunday := EndOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
