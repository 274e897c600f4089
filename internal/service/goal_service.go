package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"duoprofits/internal/model"
)

// ErrUnknownGoalCategory rejects a goal category outside the catalog.
var ErrUnknownGoalCategory = errors.New("unknown goal category")

// GoalInput carries the fields needed to create a savings goal.
type GoalInput struct {
	Title        string     `json:"title" validate:"required"`
	TargetAmount float64    `json:"target_amount" validate:"required,gt=0"`
	TargetDate   *time.Time `json:"target_date"`
	Category     string     `json:"category" validate:"required"`
}

// GoalService manages savings goals and their progress.
type GoalService struct {
	goals    GoalStore
	couples  CoupleStore
	validate *validator.Validate
}

func NewGoalService(goals GoalStore, couples CoupleStore) *GoalService {
	return &GoalService{
		goals:    goals,
		couples:  couples,
		validate: validator.New(),
	}
}

func (s *GoalService) Create(ctx context.Context, input GoalInput) (*model.SavingsGoal, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid goal: %w", err)
	}
	if !model.ValidGoalCategory(input.Category) {
		return nil, ErrUnknownGoalCategory
	}

	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, err
	}

	goal := model.SavingsGoal{
		CoupleID:     couple.ID,
		Title:        input.Title,
		TargetAmount: input.TargetAmount,
		TargetDate:   input.TargetDate,
		Category:     input.Category,
	}
	if err := s.goals.Create(ctx, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) List(ctx context.Context) ([]model.SavingsGoal, error) {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, err
	}
	return s.goals.ListByCouple(ctx, couple.ID)
}

// AddProgress adds a saved amount to a goal. Once the current amount reaches
// the target the goal is marked completed; crossing back under the target
// never clears the flag.
func (s *GoalService) AddProgress(ctx context.Context, id uint, amount float64) (*model.SavingsGoal, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("progress amount must be positive, got %v", amount)
	}

	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.FindByID(ctx, couple.ID, id)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount += amount
	if goal.CurrentAmount >= goal.TargetAmount {
		goal.IsCompleted = true
	}
	if err := s.goals.Save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, id uint) error {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return err
	}
	return s.goals.Delete(ctx, couple.ID, id)
}
