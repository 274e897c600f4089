package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"duoprofits/internal/model"
)

// GoalRepository handles CRUD for savings goals.
type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *model.SavingsGoal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

func (r *GoalRepository) ListByCouple(ctx context.Context, coupleID uint) ([]model.SavingsGoal, error) {
	var goals []model.SavingsGoal
	if err := r.db.WithContext(ctx).Where("couple_id = ?", coupleID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *GoalRepository) FindByID(ctx context.Context, coupleID, id uint) (*model.SavingsGoal, error) {
	var goal model.SavingsGoal
	if err := r.db.WithContext(ctx).Where("couple_id = ? AND id = ?", coupleID, id).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Save(ctx context.Context, goal *model.SavingsGoal) error {
	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, coupleID, id uint) error {
	res := r.db.WithContext(ctx).Where("couple_id = ? AND id = ?", coupleID, id).
		Delete(&model.SavingsGoal{})
	if res.Error != nil {
		return fmt.Errorf("delete goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
