package service

import (
	"context"

	"duoprofits/internal/model"
)

// Store interfaces implemented by the repository layer. Services depend on
// these so tests can swap in fakes without a database.

type TransactionStore interface {
	Create(ctx context.Context, tx *model.Transaction) error
	ListByCouple(ctx context.Context, coupleID uint) ([]model.Transaction, error)
	ListRecent(ctx context.Context, coupleID uint, limit int) ([]model.Transaction, error)
	FindByID(ctx context.Context, coupleID, id uint) (*model.Transaction, error)
	Update(ctx context.Context, tx *model.Transaction) error
	Delete(ctx context.Context, coupleID, id uint) error
	SearchByDescription(ctx context.Context, coupleID uint, query string, limit int) ([]model.Transaction, error)
}

type CoupleStore interface {
	Household(ctx context.Context) (*model.Couple, error)
}

type GoalStore interface {
	Create(ctx context.Context, goal *model.SavingsGoal) error
	ListByCouple(ctx context.Context, coupleID uint) ([]model.SavingsGoal, error)
	FindByID(ctx context.Context, coupleID, id uint) (*model.SavingsGoal, error)
	Save(ctx context.Context, goal *model.SavingsGoal) error
	Delete(ctx context.Context, coupleID, id uint) error
}

type BudgetStore interface {
	ListByMonth(ctx context.Context, coupleID uint, monthYear string) ([]model.MonthlyBudget, error)
}
