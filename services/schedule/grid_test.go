package schedule

import (
	"testing"
	"time"

	"odontocarol/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allWeek = models.WorkDaySet{0, 1, 2, 3, 4, 5, 6}

func fixedAt(year int, month time.Month, day int) FixedClock {
	return FixedClock{At: time.Date(year, month, day, 9, 30, 0, 0, time.UTC)}
}

func TestIsDateDisabled_PastDates(t *testing.T) {
	clock := fixedAt(2026, time.September, 16)

	past := []time.Time{
		NormalizeDate(2026, time.September, 15),
		NormalizeDate(2026, time.August, 31),
		NormalizeDate(2020, time.January, 1),
	}
	for _, d := range past {
		assert.True(t, IsDateDisabled(d, allWeek, clock), "expected %s disabled", FormatDate(d))
	}

	// Today itself is selectable when the weekday works out.
	assert.False(t, IsDateDisabled(NormalizeDate(2026, time.September, 16), allWeek, clock))
}

func TestIsDateDisabled_NonWorkDays(t *testing.T) {
	clock := fixedAt(2026, time.September, 1)
	monWedFri := models.WorkDaySet{1, 3, 5}

	// 2026-09-22 is a Tuesday: future, but not a work day.
	tuesday := NormalizeDate(2026, time.September, 22)
	require.Equal(t, time.Tuesday, tuesday.Weekday())
	assert.True(t, IsDateDisabled(tuesday, monWedFri, clock))

	// 2026-09-23 is a Wednesday: future and a work day.
	wednesday := NormalizeDate(2026, time.September, 23)
	require.Equal(t, time.Wednesday, wednesday.Weekday())
	assert.False(t, IsDateDisabled(wednesday, monWedFri, clock))

	// Past work days stay disabled regardless of the work-day set.
	pastMonday := NormalizeDate(2026, time.August, 24)
	require.Equal(t, time.Monday, pastMonday.Weekday())
	assert.True(t, IsDateDisabled(pastMonday, monWedFri, clock))
}

func TestNormalizeDate_Noon(t *testing.T) {
	d := NormalizeDate(2026, time.September, 16)
	assert.Equal(t, 12, d.Hour())
	assert.Equal(t, "2026-09-16", FormatDate(d))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-16")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16", FormatDate(d))
	assert.Equal(t, 12, d.Hour())

	_, err = ParseDate("16/09/2026")
	assert.Error(t, err)
}

func TestBuildMonthGrid_Shape(t *testing.T) {
	clock := fixedAt(2026, time.September, 1)

	// September 2026 starts on a Tuesday and has 30 days:
	// 2 leading pads + 30 days = 32 cells -> 5 rows of 7 with 3 trailing pads.
	grid := BuildMonthGrid(2026, time.September, allWeek, clock)
	require.Len(t, grid.Weeks, 5)
	for _, week := range grid.Weeks {
		require.Len(t, week, 7)
	}

	firstWeek := grid.Weeks[0]
	assert.Zero(t, firstWeek[0].Day)
	assert.Zero(t, firstWeek[1].Day)
	assert.Equal(t, 1, firstWeek[2].Day, "day 1 must land on the Tuesday column")
	assert.Equal(t, "2026-09-01", firstWeek[2].Date)

	lastWeek := grid.Weeks[len(grid.Weeks)-1]
	assert.Equal(t, 30, lastWeek[3].Day)
	assert.Zero(t, lastWeek[4].Day)
	assert.Zero(t, lastWeek[6].Day)
}

func TestBuildMonthGrid_DisabledFlags(t *testing.T) {
	clock := fixedAt(2026, time.September, 16)
	monWedFri := models.WorkDaySet{1, 3, 5}

	grid := BuildMonthGrid(2026, time.September, monWedFri, clock)

	byDate := map[string]models.CalendarDay{}
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Day != 0 {
				byDate[cell.Date] = cell
			}
		}
	}

	assert.True(t, byDate["2026-09-15"].Disabled, "yesterday")
	assert.True(t, byDate["2026-09-22"].Disabled, "future Tuesday, not a work day")
	assert.False(t, byDate["2026-09-16"].Disabled, "today, Wednesday")
	assert.False(t, byDate["2026-09-23"].Disabled, "future Wednesday")
}
