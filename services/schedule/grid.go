package schedule

import (
	"fmt"
	"time"

	"odontocarol/models"
)

const dateLayout = "2006-01-02"

// NormalizeDate pins a calendar day to noon UTC. Serializing a midnight
// timestamp through a timezone offset can shift the day; noon cannot.
func NormalizeDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into its noon-normalized day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NormalizeDate(t.Year(), t.Month(), t.Day()), nil
}

// FormatDate renders the date-only form of t.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// IsDateDisabled reports whether a calendar day is not selectable: strictly
// before today (date-only comparison) or on a weekday the provider does not
// work.
func IsDateDisabled(date time.Time, workDays models.WorkDaySet, clock Clock) bool {
	now := clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return true
	}
	return !workDays.Contains(day.Weekday())
}

// BuildMonthGrid produces the 7-column week grid for one displayed month.
// Leading cells pad the first row so day 1 lands on its weekday column
// (Sunday first); the trailing row is padded to a full week.
func BuildMonthGrid(year int, month time.Month, workDays models.WorkDaySet, clock Clock) models.CalendarMonth {
	first := NormalizeDate(year, month, 1)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday())

	cells := make([]models.CalendarDay, 0, leading+daysInMonth+6)
	for i := 0; i < leading; i++ {
		cells = append(cells, models.CalendarDay{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := NormalizeDate(year, month, day)
		cells = append(cells, models.CalendarDay{
			Day:      day,
			Date:     FormatDate(date),
			Disabled: IsDateDisabled(date, workDays, clock),
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, models.CalendarDay{})
	}

	weeks := make([][]models.CalendarDay, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}

	return models.CalendarMonth{Year: year, Month: int(month), Weeks: weeks}
}
