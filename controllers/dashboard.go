package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"haverststudio-backend/analytics"
	"haverststudio-backend/models"
	"haverststudio-backend/utils"
)

type DashboardOverview struct {
	Date                string                 `json:"date"`
	TodayAppointments   []models.Appointment   `json:"todayAppointments"`
	PendingAppointments int                    `json:"pendingAppointments"`
	MonthlyIncome       float64                `json:"monthlyIncome"`
	MonthlyExpenses     float64                `json:"monthlyExpenses"`
	MonthlyProfit       float64                `json:"monthlyProfit"`
	LowStockItems       []models.InventoryItem `json:"lowStockItems"`
	UnreadNotifications int                    `json:"unreadNotifications"`
	ActiveClients       int                    `json:"activeClients"`
	TopClients          []models.Client        `json:"topClients"`
}

// GetDashboardOverview assembles the home screen: today's agenda, the
// running month's totals, stock alerts and the top-clients panel. All
// values are derived fresh from the current snapshots.
func (ctrl *Controller) GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	today := now.Format(utils.DateLayout)

	appointments := ctrl.Store.Appointments()
	clients := ctrl.Store.Clients()
	summary := analytics.MonthlySummary(ctrl.Store.Transactions(), now.Year(), now.Month())

	overview := DashboardOverview{
		Date:                today,
		TodayAppointments:   analytics.AppointmentsOn(appointments, today, "", ""),
		PendingAppointments: analytics.PendingCount(appointments),
		MonthlyIncome:       summary.Income,
		MonthlyExpenses:     summary.Expense,
		MonthlyProfit:       summary.Net,
		LowStockItems:       analytics.LowStock(ctrl.Store.Inventory()),
		UnreadNotifications: analytics.UnreadCount(ctrl.Store.Notifications()),
		ActiveClients:       analytics.ActiveClients(clients, now),
		TopClients:          analytics.TopClients(clients, 5),
	}

	c.JSON(http.StatusOK, overview)
}
