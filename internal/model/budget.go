package model

import "time"

// MonthlyBudget caps spending for one category in one month. The app only
// reads budgets; they are seeded directly in the database.
type MonthlyBudget struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CoupleID     uint      `gorm:"index" json:"couple_id"`
	Category     string    `json:"category"`
	BudgetAmount float64   `json:"budget_amount"`
	MonthYear    string    `gorm:"index" json:"month_year"` // YYYY-MM
	CreatedAt    time.Time `json:"created_at"`
}
