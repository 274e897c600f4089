package service

import (
	"context"
	"fmt"
	"time"

	"duoprofits/internal/model"
	"duoprofits/internal/stats"
)

// Summary bundles the household's headline numbers.
type Summary struct {
	TotalIncome    float64 `json:"total_income"`
	TotalExpenses  float64 `json:"total_expenses"`
	Balance        float64 `json:"balance"`
	Person1Balance float64 `json:"person1_balance"`
	Person2Balance float64 `json:"person2_balance"`
	Transactions   int     `json:"transactions"`
}

// StatsService computes statistics over the household's transactions.
// Aggregation happens in memory over the full transaction list; the math
// lives in the stats package. "Now" is taken in the household's timezone so
// month buckets follow its calendar, not the server's.
type StatsService struct {
	txs     TransactionStore
	couples CoupleStore
	budgets BudgetStore
	now     func() time.Time
}

func NewStatsService(txs TransactionStore, couples CoupleStore, budgets BudgetStore, loc *time.Location) *StatsService {
	return &StatsService{
		txs:     txs,
		couples: couples,
		budgets: budgets,
		now:     func() time.Time { return time.Now().In(loc) },
	}
}

func (s *StatsService) Summary(ctx context.Context) (*Summary, error) {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.txs.ListByCouple(ctx, couple.ID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalIncome:    stats.TotalIncome(txs),
		TotalExpenses:  stats.TotalExpenses(txs),
		Balance:        stats.Balance(txs),
		Person1Balance: stats.PersonBalance(txs, model.PersonOne),
		Person2Balance: stats.PersonBalance(txs, model.PersonTwo),
		Transactions:   len(txs),
	}, nil
}

// CategoryStats returns the month's expense breakdown together with the
// spend-vs-budget comparison.
func (s *StatsService) CategoryStats(ctx context.Context, year int, month time.Month) ([]stats.CategoryStat, []stats.BudgetUsage, error) {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, nil, err
	}
	txs, err := s.txs.ListByCouple(ctx, couple.ID)
	if err != nil {
		return nil, nil, err
	}
	breakdown := stats.CategoryBreakdown(txs, year, month)

	monthYear := fmt.Sprintf("%04d-%02d", year, month)
	budgets, err := s.budgets.ListByMonth(ctx, couple.ID, monthYear)
	if err != nil {
		return nil, nil, err
	}
	return breakdown, stats.CompareBudgets(breakdown, budgets), nil
}

// Trends returns the monthly trend series ending at the current month,
// oldest month first.
func (s *StatsService) Trends(ctx context.Context, months int) ([]stats.TrendPoint, error) {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.txs.ListByCouple(ctx, couple.ID)
	if err != nil {
		return nil, err
	}
	return stats.MonthlyTrends(txs, months, s.now()), nil
}
