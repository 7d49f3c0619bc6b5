package services

import (
	"errors"
	"time"
)

const weekStartLayout = "2006-01-02"

var ErrInvalidWeekStart = errors.New("invalid week start date")

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var dayAbbreviations = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekStart returns the Sunday at 00:00:00 UTC on or before value. Applying
// it to its own output returns the same instant.
func WeekStart(value time.Time) time.Time {
	localized := value.UTC()
	year, month, day := localized.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return date.AddDate(0, 0, -int(date.Weekday()))
}

// WeekEnd returns the Saturday 23:59:59.999 UTC closing the week that starts
// at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	end := weekStart.UTC().AddDate(0, 0, 6)
	return time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, time.UTC)
}

// FormatWeekRange renders "Jan 2, 2026 – Jan 8, 2026" in UTC. Presentational
// only; never used for comparisons.
func FormatWeekRange(start time.Time, end time.Time) string {
	const layout = "Jan 2, 2006"
	return start.UTC().Format(layout) + " – " + end.UTC().Format(layout)
}

// ShiftWeek moves an ISO week start date by deltaWeeks weeks. Malformed input
// is returned unchanged; callers are expected to pass dates produced by
// CurrentWeekStart or a prior ShiftWeek.
func ShiftWeek(weekStartISO string, deltaWeeks int) string {
	weekStart, err := time.ParseInLocation(weekStartLayout, weekStartISO, time.UTC)
	if err != nil {
		return weekStartISO
	}
	return weekStart.AddDate(0, 0, 7*deltaWeeks).Format(weekStartLayout)
}

func CurrentWeekStart() string {
	return WeekStart(time.Now()).Format(weekStartLayout)
}

// ParseWeekStart parses an ISO date and normalizes it to the Sunday starting
// the week it falls in.
func ParseWeekStart(weekStartISO string) (time.Time, error) {
	parsed, err := time.ParseInLocation(weekStartLayout, weekStartISO, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidWeekStart
	}
	return WeekStart(parsed), nil
}

func FormatWeekStart(weekStart time.Time) string {
	return weekStart.UTC().Format(weekStartLayout)
}

func DayName(dayIndex int) string {
	if dayIndex < 0 || dayIndex > 6 {
		return ""
	}
	return dayNames[dayIndex]
}

func DayAbbreviation(dayIndex int) string {
	if dayIndex < 0 || dayIndex > 6 {
		return ""
	}
	return dayAbbreviations[dayIndex]
}
