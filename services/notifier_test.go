package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haverststudio-backend/models"
	"haverststudio-backend/store"
)

func newSeededNotifier(t *testing.T) (*Notifier, *store.Store) {
	t.Helper()
	s, err := store.Open(store.NewMemoryBackend())
	require.NoError(t, err)
	// No Twilio credentials in tests; messaging stays disabled.
	return NewNotifier(s), s
}

func TestRunGeneratesAppointmentReminders(t *testing.T) {
	n, s := newSeededNotifier(t)
	before := len(s.Notifications())

	// The day before the seed agenda's 2026-01-20 appointments. María's
	// reminder already exists in the seed feed, so only Ana's is new;
	// both seed low-stock alerts already exist as well.
	now := time.Date(2026, time.January, 19, 9, 0, 0, 0, time.UTC)
	n.Run(now)

	notifications := s.Notifications()
	require.Len(t, notifications, before+1)

	added := notifications[len(notifications)-1]
	assert.Equal(t, models.NotifyAppointment, added.Type)
	assert.Equal(t, "Ana Martínez tiene cita mañana a las 14:00", added.Message)
	assert.False(t, added.Read)
}

func TestRunIsIdempotentPerDay(t *testing.T) {
	n, s := newSeededNotifier(t)

	now := time.Date(2026, time.January, 19, 9, 0, 0, 0, time.UTC)
	n.Run(now)
	after := len(s.Notifications())

	n.Run(now)
	assert.Len(t, s.Notifications(), after)
}

func TestRunSkipsUnremindedAndCancelled(t *testing.T) {
	n, s := newSeededNotifier(t)

	// a4 on the 21st has no reminder flag; cancel a3 so only its
	// reminder disappears.
	_, err := s.SetAppointmentStatus("a3", models.StatusCancelled)
	require.NoError(t, err)
	before := len(s.Notifications())

	now := time.Date(2026, time.January, 20, 9, 0, 0, 0, time.UTC)
	n.Run(now)

	assert.Len(t, s.Notifications(), before)
}

func TestRunFlagsLowStockAndInactiveClients(t *testing.T) {
	n, s := newSeededNotifier(t)

	quantity := 5
	_, err := s.UpdateInventoryItem("i1", store.InventoryItemUpdate{Quantity: &quantity})
	require.NoError(t, err)

	// Far enough out that every seed client has gone inactive and no
	// appointment or birthday is close.
	now := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	n.Run(now)

	var lowStock, inactive int
	for _, notification := range s.Notifications() {
		switch notification.Type {
		case models.NotifyLowStock:
			if notification.Message == "Tinte Rubio Ceniza por debajo del stock mínimo" {
				lowStock++
			}
		case models.NotifyReminder:
			inactive++
		}
	}
	assert.Equal(t, 1, lowStock)
	// The seed "Cliente inactiva" entry for Patricia is superseded by a
	// fresh message with the current day count, so all five appear.
	assert.Equal(t, 6, inactive)
}
