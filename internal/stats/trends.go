package stats

import (
	"time"

	"duoprofits/internal/model"
)

// TrendPoint summarises one calendar month of activity.
type TrendPoint struct {
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Income   float64    `json:"income"`
	Expenses float64    `json:"expenses"`
	Balance  float64    `json:"balance"`
}

// MonthlyTrends builds a fixed-length series of month summaries ending at
// now's month, ordered oldest first. The series always has exactly months
// points; months without transactions yield zero totals.
func MonthlyTrends(txs []model.Transaction, months int, now time.Time) []TrendPoint {
	if months <= 0 {
		return nil
	}

	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	series := make([]TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := base.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		point := TrendPoint{Year: start.Year(), Month: start.Month()}
		for _, t := range txs {
			if !inRange(t.TransactionDate, start, end) {
				continue
			}
			switch t.Type {
			case model.TypeIncome:
				point.Income += t.Amount
			case model.TypeExpense:
				point.Expenses += t.Amount
			}
		}
		point.Balance = point.Income - point.Expenses
		series = append(series, point)
	}
	return series
}
