// Package analytics holds the derived views the app renders: agenda
// filters, financial roll-ups, stock alerts, client rankings. Every
// function is pure. It reads a snapshot and returns fresh values, never
// touching its inputs.
package analytics

import (
	"sort"
	"strings"
	"time"

	"haverststudio-backend/models"
	"haverststudio-backend/utils"
)

// AppointmentsOn returns the appointments on an exact yyyy-MM-dd date,
// optionally narrowed by a case-insensitive substring of the client name
// and/or an exact status. Results are ordered by time of day; HH:MM is
// fixed-width so plain string order is chronological.
func AppointmentsOn(appointments []models.Appointment, date, clientQuery string, status models.AppointmentStatus) []models.Appointment {
	query := strings.ToLower(clientQuery)

	var matched []models.Appointment
	for _, apt := range appointments {
		if apt.Date != date {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(apt.ClientName), query) {
			continue
		}
		if status != "" && apt.Status != status {
			continue
		}
		matched = append(matched, apt)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Time < matched[j].Time
	})
	return matched
}

// DaySchedule is one day of the week view.
type DaySchedule struct {
	Date         string               `json:"date"`
	Appointments []models.Appointment `json:"appointments"`
}

// WeekDays returns the Monday-starting 7-day window containing anchor.
func WeekDays(anchor time.Time) []time.Time {
	start := utils.StartOfWeek(anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekSchedule applies AppointmentsOn to each day of the week containing
// anchor, with the same optional filters.
func WeekSchedule(appointments []models.Appointment, anchor time.Time, clientQuery string, status models.AppointmentStatus) []DaySchedule {
	days := WeekDays(anchor)
	schedule := make([]DaySchedule, 0, len(days))
	for _, day := range days {
		date := day.Format(utils.DateLayout)
		schedule = append(schedule, DaySchedule{
			Date:         date,
			Appointments: AppointmentsOn(appointments, date, clientQuery, status),
		})
	}
	return schedule
}

// PendingCount counts appointments still awaiting confirmation, shown as
// the agenda badge.
func PendingCount(appointments []models.Appointment) int {
	count := 0
	for _, apt := range appointments {
		if apt.Status == models.StatusPending {
			count++
		}
	}
	return count
}
