package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"haverststudio-backend/analytics"
	"haverststudio-backend/utils"
)

const monthLayout = "2006-01"

// GetFinanceSummary returns one month's income/expense/net plus the
// expense breakdown by category. Month defaults to the current one.
func (ctrl *Controller) GetFinanceSummary(c *gin.Context) {
	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse(monthLayout, raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid month format, expected yyyy-MM")
			return
		}
		month = parsed
	}

	transactions := ctrl.Store.Transactions()
	summary := analytics.MonthlySummary(transactions, month.Year(), month.Month())
	breakdown := analytics.ExpensesByCategory(transactions, month.Year(), month.Month())

	c.JSON(http.StatusOK, gin.H{
		"month":              month.Format(monthLayout),
		"income":             summary.Income,
		"expense":            summary.Expense,
		"net":                summary.Net,
		"expensesByCategory": breakdown,
	})
}

// GetFinanceTrend returns the trailing six-month series, oldest first.
func (ctrl *Controller) GetFinanceTrend(c *gin.Context) {
	trend := analytics.LastSixMonths(ctrl.Store.Transactions(), time.Now())
	c.JSON(http.StatusOK, trend)
}
