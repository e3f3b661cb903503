package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haverststudio-backend/models"
	"haverststudio-backend/seed"
)

func TestAppointmentsOnFiltersAndSorts(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "a1", ClientName: "María González", Date: "2026-01-20", Time: "14:00", Status: models.StatusConfirmed},
		{ID: "a2", ClientName: "Ana Martínez", Date: "2026-01-20", Time: "10:00", Status: models.StatusPending},
		{ID: "a3", ClientName: "Laura Ramírez", Date: "2026-01-21", Time: "09:00", Status: models.StatusConfirmed},
	}

	day := AppointmentsOn(appointments, "2026-01-20", "", "")
	require.Len(t, day, 2)
	// Ascending by time of day.
	assert.Equal(t, "a2", day[0].ID)
	assert.Equal(t, "a1", day[1].ID)

	// Case-insensitive substring on the client name.
	byName := AppointmentsOn(appointments, "2026-01-20", "maría", "")
	require.Len(t, byName, 1)
	assert.Equal(t, "a1", byName[0].ID)

	// Exact status match.
	pending := AppointmentsOn(appointments, "2026-01-20", "", models.StatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "a2", pending[0].ID)

	assert.Empty(t, AppointmentsOn(appointments, "2026-01-25", "", ""))
}

func TestAppointmentsOnIsPure(t *testing.T) {
	appointments := seed.Appointments()
	before := append([]models.Appointment(nil), appointments...)

	first := AppointmentsOn(appointments, "2026-01-20", "", "")
	second := AppointmentsOn(appointments, "2026-01-20", "", "")

	assert.Equal(t, first, second)
	assert.Equal(t, before, appointments)

	// Every result is an element of the input with a matching date.
	for _, apt := range first {
		assert.Equal(t, "2026-01-20", apt.Date)
		assert.Contains(t, appointments, apt)
	}
}

func TestWeekDaysStartsOnMonday(t *testing.T) {
	// 2026-01-21 is a Wednesday; its week starts Monday the 19th.
	anchor := time.Date(2026, time.January, 21, 15, 30, 0, 0, time.UTC)

	days := WeekDays(anchor)
	require.Len(t, days, 7)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, "2026-01-19", days[0].Format("2006-01-02"))
	assert.Equal(t, "2026-01-25", days[6].Format("2006-01-02"))

	// The anchor day itself falls inside the window.
	assert.Equal(t, "2026-01-21", days[2].Format("2006-01-02"))

	// A Monday anchor is its own week start.
	monday := time.Date(2026, time.January, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, WeekDays(monday)[0])
}

func TestWeekScheduleMatchesDayQueries(t *testing.T) {
	appointments := seed.Appointments()
	anchor := time.Date(2026, time.January, 21, 0, 0, 0, 0, time.UTC)

	schedule := WeekSchedule(appointments, anchor, "", "")
	require.Len(t, schedule, 7)

	for _, day := range schedule {
		assert.Equal(t, AppointmentsOn(appointments, day.Date, "", ""), day.Appointments)
	}

	// Seed agenda has two appointments on Tuesday the 20th.
	assert.Len(t, schedule[1].Appointments, 2)
}

func TestPendingCount(t *testing.T) {
	assert.Equal(t, 2, PendingCount(seed.Appointments()))
	assert.Equal(t, 0, PendingCount(nil))
}
