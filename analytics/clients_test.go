package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haverststudio-backend/models"
	"haverststudio-backend/seed"
)

func TestTopClientsRanksByTotalSpent(t *testing.T) {
	clients := seed.Clients()

	top := TopClients(clients, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "Carmen Silva", top[0].Name)  // 28500
	assert.Equal(t, "Laura Ramírez", top[1].Name) // 18900
	assert.Equal(t, "María González", top[2].Name)

	// Input order untouched.
	assert.Equal(t, "María González", clients[0].Name)

	all := TopClients(clients, 0)
	assert.Len(t, all, len(clients))
}

func TestActiveClientsWindow(t *testing.T) {
	now := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)
	clients := []models.Client{
		{Name: "reciente", LastVisit: "2026-01-25"},
		{Name: "al límite", LastVisit: "2026-01-02"}, // exactly 30 days
		{Name: "inactiva", LastVisit: "2025-12-01"},
		{Name: "sin fecha", LastVisit: ""},
	}

	assert.Equal(t, 2, ActiveClients(clients, now))

	// Recomputed against now on every call: a later now shrinks the set.
	later := now.AddDate(0, 2, 0)
	assert.Equal(t, 0, ActiveClients(clients, later))
}

func TestUnreadCount(t *testing.T) {
	assert.Equal(t, 3, UnreadCount(seed.Notifications()))

	read := []models.Notification{{Read: true}, {Read: true}}
	assert.Equal(t, 0, UnreadCount(read))
	assert.Equal(t, 0, UnreadCount(nil))
}
