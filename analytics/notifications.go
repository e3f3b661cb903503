package analytics

import "haverststudio-backend/models"

// UnreadCount counts notifications not yet marked read.
func UnreadCount(notifications []models.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
