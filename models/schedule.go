package models

import "time"

// WorkDaySet is the set of weekday indices (Sunday=0) on which a provider
// accepts bookings.
type WorkDaySet []int

// Contains reports whether the weekday is part of the set.
func (w WorkDaySet) Contains(day time.Weekday) bool {
	for _, d := range w {
		if d == int(day) {
			return true
		}
	}
	return false
}

// AvailableSlot is a selectable reservable unit within a day. ScheduleID
// identifies the underlying schedule window; time labels can collide across
// windows and are not trusted as identity.
type AvailableSlot struct {
	Time       string `json:"time"` // HH:MM
	ScheduleID int    `json:"scheduleId"`
	Duration   int    `json:"duration"` // minutes
}

// BookedSlot is a time label already taken within a day.
type BookedSlot struct {
	Time   string `json:"time"`
	Reason string `json:"reason,omitempty"`
}

// DayAvailability is the ephemeral snapshot of one provider day, recomputed
// from the live backend response on every date selection.
type DayAvailability struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	Available []AvailableSlot `json:"available"`
	Booked    []BookedSlot    `json:"booked"`
}

// CalendarDay is one cell of the month grid. A zero Day is a padding cell.
type CalendarDay struct {
	Day      int    `json:"day"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD
	Disabled bool   `json:"disabled"`
}

// CalendarMonth is the 7-column week grid for one displayed month.
type CalendarMonth struct {
	Year  int             `json:"year"`
	Month int             `json:"month"` // 1-12
	Weeks [][]CalendarDay `json:"weeks"`
}
