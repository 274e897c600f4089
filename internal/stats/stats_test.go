package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"duoprofits/internal/model"
)

func tx(txType, person, category string, amount float64, date time.Time) model.Transaction {
	return model.Transaction{
		Type:            txType,
		Person:          person,
		Category:        category,
		Amount:          amount,
		TransactionDate: date,
	}
}

func TestTotalsAndPersonBalances(t *testing.T) {
	date := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.TypeIncome, model.PersonOne, "salary", 3_000_000, date),
		tx(model.TypeExpense, model.PersonTwo, "food", 500_000, date),
	}

	require.Equal(t, 3_000_000.0, TotalIncome(txs))
	require.Equal(t, 500_000.0, TotalExpenses(txs))
	require.Equal(t, 2_500_000.0, Balance(txs))
	require.Equal(t, 3_000_000.0, PersonBalance(txs, model.PersonOne))
	require.Equal(t, -500_000.0, PersonBalance(txs, model.PersonTwo))
}

func TestBalanceMatchesTotalsExactly(t *testing.T) {
	date := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	var txs []model.Transaction
	for i := 1; i <= 50; i++ {
		txs = append(txs, tx(model.TypeIncome, model.PersonOne, "salary", float64(i)*1000, date))
		txs = append(txs, tx(model.TypeExpense, model.PersonTwo, "food", float64(i)*700, date))
	}
	require.Equal(t, TotalIncome(txs)-TotalExpenses(txs), Balance(txs))
}

func TestEmptyInputYieldsZeros(t *testing.T) {
	require.Zero(t, TotalIncome(nil))
	require.Zero(t, TotalExpenses(nil))
	require.Zero(t, Balance(nil))
	require.Zero(t, PersonBalance(nil, model.PersonOne))
	require.Empty(t, CategoryBreakdown(nil, 2026, time.August))
	require.Empty(t, CompareBudgets(nil, nil))
}

func TestCategoryBreakdown(t *testing.T) {
	august := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.TypeExpense, model.PersonOne, "food", 300_000, august),
		tx(model.TypeExpense, model.PersonTwo, "food", 200_000, august),
		tx(model.TypeExpense, model.PersonOne, "housing", 1_000_000, august),
		tx(model.TypeExpense, model.PersonOne, "transport", 100_000, august),
		// income never shows up in the breakdown
		tx(model.TypeIncome, model.PersonOne, "salary", 5_000_000, august),
		// wrong month
		tx(model.TypeExpense, model.PersonOne, "food", 999_999, august.AddDate(0, -1, 0)),
	}

	breakdown := CategoryBreakdown(txs, 2026, time.August)
	require.Len(t, breakdown, 3)

	require.Equal(t, "housing", breakdown[0].Category)
	require.Equal(t, 1_000_000.0, breakdown[0].Amount)
	require.Equal(t, 1, breakdown[0].Count)

	require.Equal(t, "food", breakdown[1].Category)
	require.Equal(t, 500_000.0, breakdown[1].Amount)
	require.Equal(t, 2, breakdown[1].Count)

	require.Equal(t, "transport", breakdown[2].Category)

	var pct float64
	for _, s := range breakdown {
		pct += s.Percentage
	}
	require.InDelta(t, 100.0, pct, 1e-9)
}

func TestCategoryBreakdownMonthBoundaries(t *testing.T) {
	first := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2026, time.August, 31, 23, 59, 0, 0, time.UTC)
	nextFirst := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.TypeExpense, model.PersonOne, "food", 100, first),
		tx(model.TypeExpense, model.PersonOne, "food", 200, last),
		tx(model.TypeExpense, model.PersonOne, "food", 400, nextFirst),
	}

	breakdown := CategoryBreakdown(txs, 2026, time.August)
	require.Len(t, breakdown, 1)
	require.Equal(t, 300.0, breakdown[0].Amount)
}

func TestCompareBudgets(t *testing.T) {
	breakdown := []CategoryStat{
		{Category: "food", Amount: 500_000},
		{Category: "transport", Amount: 100_000},
	}
	budgets := []model.MonthlyBudget{
		{Category: "food", BudgetAmount: 1_000_000},
		{Category: "housing", BudgetAmount: 2_000_000},
		{Category: "transport", BudgetAmount: 0},
	}

	usage := CompareBudgets(breakdown, budgets)
	require.Len(t, usage, 3)

	byCategory := make(map[string]BudgetUsage)
	for _, u := range usage {
		byCategory[u.Category] = u
	}
	require.InDelta(t, 50.0, byCategory["food"].Percentage, 1e-9)
	require.Zero(t, byCategory["transport"].Percentage) // zero budget never divides
	require.Zero(t, byCategory["housing"].Amount)
	require.Equal(t, 2_000_000.0, byCategory["housing"].Budget)

	// sorted by spend descending
	require.Equal(t, "food", usage[0].Category)
	require.Equal(t, "transport", usage[1].Category)
}
