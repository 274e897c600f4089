package repository

import (
	"context"

	"gorm.io/gorm"

	"duoprofits/internal/model"
)

// BudgetRepository reads monthly budgets. Budgets have no creation flow in
// the app; rows are seeded directly in the database.
type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// ListByMonth returns the household's budgets for a YYYY-MM month key.
func (r *BudgetRepository) ListByMonth(ctx context.Context, coupleID uint, monthYear string) ([]model.MonthlyBudget, error) {
	var budgets []model.MonthlyBudget
	if err := r.db.WithContext(ctx).
		Where("couple_id = ? AND month_year = ?", coupleID, monthYear).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}
