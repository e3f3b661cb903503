package analytics

import (
	"sort"
	"time"

	"haverststudio-backend/models"
	"haverststudio-backend/utils"
)

// TopClients ranks clients by their stored totalSpent counter, highest
// first, returning at most limit entries. The counter is informational and
// may drift from actual transaction history; ranking uses it as-is.
func TopClients(clients []models.Client, limit int) []models.Client {
	ranked := append([]models.Client(nil), clients...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ActiveClients counts clients whose last visit was within the past 30
// days of now. The classification is recomputed against now on every call,
// so it is deliberately not stable across time.
func ActiveClients(clients []models.Client, now time.Time) int {
	count := 0
	for _, client := range clients {
		lastVisit, err := time.Parse(utils.DateLayout, client.LastVisit)
		if err != nil {
			continue
		}
		days := utils.DaysBetween(lastVisit, now)
		if days >= 0 && days <= 30 {
			count++
		}
	}
	return count
}
