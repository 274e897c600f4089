// Package stats derives display-ready statistics from transaction records
// already loaded into memory. Every function tolerates an empty input and
// returns zero totals or empty slices instead of failing.
package stats

import (
	"sort"
	"time"

	"duoprofits/internal/model"
)

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(txs []model.Transaction) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type == model.TypeIncome {
			sum += t.Amount
		}
	}
	return sum
}

// TotalExpenses sums the amounts of all expense transactions.
func TotalExpenses(txs []model.Transaction) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type == model.TypeExpense {
			sum += t.Amount
		}
	}
	return sum
}

// Balance is total income minus total expenses.
func Balance(txs []model.Transaction) float64 {
	return TotalIncome(txs) - TotalExpenses(txs)
}

// PersonBalance is the signed balance of a single household member:
// income tagged with the person minus expenses tagged with the person.
func PersonBalance(txs []model.Transaction, person string) float64 {
	var sum float64
	for _, t := range txs {
		if t.Person != person {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			sum += t.Amount
		case model.TypeExpense:
			sum -= t.Amount
		}
	}
	return sum
}

// CategoryStat is one category's share of a month's expenses.
type CategoryStat struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdown partitions the expense transactions of one calendar month
// by category, most expensive first. Month membership is decided by the
// half-open range [month start, next month start) over the transaction date.
// Percentages are shares of the month's total expenses and sum to 100 when
// the month has any expenses.
func CategoryBreakdown(txs []model.Transaction, year int, month time.Month) []CategoryStat {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	amounts := make(map[string]float64)
	counts := make(map[string]int)
	var total float64
	for _, t := range txs {
		if t.Type != model.TypeExpense || !inRange(t.TransactionDate, start, end) {
			continue
		}
		amounts[t.Category] += t.Amount
		counts[t.Category]++
		total += t.Amount
	}

	breakdown := make([]CategoryStat, 0, len(amounts))
	for category, amount := range amounts {
		stat := CategoryStat{Category: category, Amount: amount, Count: counts[category]}
		if total > 0 {
			stat.Percentage = amount / total * 100
		}
		breakdown = append(breakdown, stat)
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// BudgetUsage pairs a month's spending per category with its budget.
type BudgetUsage struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Budget     float64 `json:"budget"`
	Percentage float64 `json:"percentage"`
}

// CompareBudgets merges a category breakdown with the month's budgets into
// spend-vs-budget rows, sorted by amount descending. Categories present only
// in the budgets still show up with zero spending; a zero budget yields a
// zero percentage rather than dividing by it.
func CompareBudgets(breakdown []CategoryStat, budgets []model.MonthlyBudget) []BudgetUsage {
	spent := make(map[string]float64, len(breakdown))
	for _, s := range breakdown {
		spent[s.Category] = s.Amount
	}
	capped := make(map[string]float64, len(budgets))
	for _, b := range budgets {
		capped[b.Category] = b.BudgetAmount
	}

	seen := make(map[string]bool)
	usage := make([]BudgetUsage, 0, len(spent)+len(capped))
	add := func(category string) {
		if seen[category] {
			return
		}
		seen[category] = true
		row := BudgetUsage{Category: category, Amount: spent[category], Budget: capped[category]}
		if row.Budget > 0 {
			row.Percentage = row.Amount / row.Budget * 100
		}
		usage = append(usage, row)
	}
	for _, s := range breakdown {
		add(s.Category)
	}
	for _, b := range budgets {
		add(b.Category)
	}

	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Amount != usage[j].Amount {
			return usage[i].Amount > usage[j].Amount
		}
		return usage[i].Category < usage[j].Category
	})
	return usage
}

// inRange compares only the calendar date, so transactions stored with a
// time-of-day or another location still land in the right month.
func inRange(d, start, end time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && day.Before(end)
}
