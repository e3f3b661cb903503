package analytics

import (
	"time"

	"haverststudio-backend/models"
	"haverststudio-backend/utils"
)

// Summary is a single month's financial roll-up. Net is always
// Income - Expense.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// MonthTrend is one entry of the trailing six-month series.
type MonthTrend struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// MonthlySummary sums transaction amounts whose date falls in the given
// calendar month, partitioned by type. Transactions with unparseable dates
// are ignored.
func MonthlySummary(transactions []models.Transaction, year int, month time.Month) Summary {
	var s Summary
	for _, tx := range transactions {
		date, err := time.Parse(utils.DateLayout, tx.Date)
		if err != nil || date.Year() != year || date.Month() != month {
			continue
		}
		switch tx.Type {
		case models.TypeIncome:
			s.Income += tx.Amount
		case models.TypeExpense:
			s.Expense += tx.Amount
		}
	}
	s.Net = s.Income - s.Expense
	return s
}

// LastSixMonths produces the six calendar months ending at now's month,
// oldest first, each with its monthly summary and a short label.
func LastSixMonths(transactions []models.Transaction, now time.Time) []MonthTrend {
	anchor := utils.StartOfMonth(now)
	trend := make([]MonthTrend, 0, 6)
	for i := 5; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0)
		summary := MonthlySummary(transactions, month.Year(), month.Month())
		trend = append(trend, MonthTrend{
			Month:   utils.ShortMonth(month.Month()),
			Income:  summary.Income,
			Expense: summary.Expense,
			Net:     summary.Net,
		})
	}
	return trend
}

// ExpensesByCategory groups one month's expenses by category, summing
// amounts.
func ExpensesByCategory(transactions []models.Transaction, year int, month time.Month) map[string]float64 {
	totals := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Type != models.TypeExpense {
			continue
		}
		date, err := time.Parse(utils.DateLayout, tx.Date)
		if err != nil || date.Year() != year || date.Month() != month {
			continue
		}
		totals[tx.Category] += tx.Amount
	}
	return totals
}
