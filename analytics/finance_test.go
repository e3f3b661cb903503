package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haverststudio-backend/models"
	"haverststudio-backend/seed"
)

func TestMonthlySummaryPartitionsByType(t *testing.T) {
	summary := MonthlySummary(seed.Transactions(), 2026, time.January)

	assert.InDelta(t, 5730, summary.Income, 0.001)
	assert.InDelta(t, 2700, summary.Expense, 0.001)
	assert.InDelta(t, summary.Income-summary.Expense, summary.Net, 0.001)

	empty := MonthlySummary(seed.Transactions(), 2025, time.June)
	assert.Zero(t, empty.Income)
	assert.Zero(t, empty.Expense)
	assert.Zero(t, empty.Net)
}

func TestMonthlySummaryAddedExpense(t *testing.T) {
	transactions := seed.Transactions()
	before := MonthlySummary(transactions, 2026, time.January)

	transactions = append(transactions, models.Transaction{
		ID:       "t13",
		Date:     "2026-01-25",
		Type:     models.TypeExpense,
		Amount:   100,
		Category: "Renta",
	})

	after := MonthlySummary(transactions, 2026, time.January)
	assert.InDelta(t, before.Expense+100, after.Expense, 0.001)
	assert.InDelta(t, before.Income, after.Income, 0.001)
	assert.InDelta(t, after.Income-after.Expense, after.Net, 0.001)

	breakdown := ExpensesByCategory(transactions, 2026, time.January)
	assert.InDelta(t, 100, breakdown["Renta"], 0.001)
}

func TestLastSixMonthsOrderAndConsistency(t *testing.T) {
	transactions := seed.Transactions()
	now := time.Date(2026, time.January, 21, 12, 0, 0, 0, time.UTC)

	trend := LastSixMonths(transactions, now)
	require.Len(t, trend, 6)

	// Oldest to newest: Aug 2025 through Jan 2026.
	assert.Equal(t, "Ago", trend[0].Month)
	assert.Equal(t, "Ene", trend[5].Month)

	// Each entry agrees with an independent single-month summary.
	first := MonthlySummary(transactions, 2025, time.August)
	last := MonthlySummary(transactions, 2026, time.January)
	assert.Equal(t, first.Income, trend[0].Income)
	assert.Equal(t, first.Net, trend[0].Net)
	assert.Equal(t, last.Income, trend[5].Income)
	assert.Equal(t, last.Expense, trend[5].Expense)
	assert.Equal(t, last.Net, trend[5].Net)

	for _, entry := range trend {
		assert.InDelta(t, entry.Income-entry.Expense, entry.Net, 0.001)
	}
}

func TestLastSixMonthsEndOfMonthAnchor(t *testing.T) {
	// Jan 31 must still walk back through Dec, Nov, ... without the
	// day-of-month overflowing into the wrong month.
	now := time.Date(2026, time.January, 31, 23, 0, 0, 0, time.UTC)

	trend := LastSixMonths(nil, now)
	labels := make([]string, 0, 6)
	for _, entry := range trend {
		labels = append(labels, entry.Month)
	}
	assert.Equal(t, []string{"Ago", "Sep", "Oct", "Nov", "Dic", "Ene"}, labels)
}

func TestExpensesByCategory(t *testing.T) {
	breakdown := ExpensesByCategory(seed.Transactions(), 2026, time.January)

	assert.InDelta(t, 2000, breakdown["Inventario"], 0.001)
	assert.InDelta(t, 450, breakdown["Servicios"], 0.001)
	assert.InDelta(t, 250, breakdown["Gastos"], 0.001)
	assert.Len(t, breakdown, 3)

	// Income never leaks into the expense breakdown.
	total := 0.0
	for _, v := range breakdown {
		total += v
	}
	assert.InDelta(t, MonthlySummary(seed.Transactions(), 2026, time.January).Expense, total, 0.001)
}
