package schedule

import (
	"sort"

	"odontocarol/clinicapi"
	"odontocarol/models"
)

// PartitionDay splits a day's schedule windows into selectable and taken
// slots. Every window and every time label inside it is scanned; availability
// is always evaluated against the live response, never a cached copy.
func PartitionDay(date string, windows []clinicapi.ScheduleWindow) models.DayAvailability {
	day := models.DayAvailability{
		Date:      date,
		Available: []models.AvailableSlot{},
		Booked:    []models.BookedSlot{},
	}

	for _, w := range windows {
		for label, free := range w.Slots {
			if free {
				day.Available = append(day.Available, models.AvailableSlot{
					Time:       label,
					ScheduleID: w.ScheduleID,
					Duration:   w.Duration,
				})
			} else {
				day.Booked = append(day.Booked, models.BookedSlot{
					Time:   label,
					Reason: "reservado",
				})
			}
		}
	}

	// HH:MM labels sort correctly as strings.
	sort.Slice(day.Available, func(i, j int) bool {
		if day.Available[i].Time == day.Available[j].Time {
			return day.Available[i].ScheduleID < day.Available[j].ScheduleID
		}
		return day.Available[i].Time < day.Available[j].Time
	})
	sort.Slice(day.Booked, func(i, j int) bool {
		return day.Booked[i].Time < day.Booked[j].Time
	})

	return day
}

// FindSlot returns the available slot matching both time label and schedule
// id. A time label alone is not proof of a reservable unit.
func FindSlot(day models.DayAvailability, timeLabel string, scheduleID int) (models.AvailableSlot, bool) {
	for _, s := range day.Available {
		if s.Time == timeLabel && s.ScheduleID == scheduleID {
			return s, true
		}
	}
	return models.AvailableSlot{}, false
}
