package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"duoprofits/internal/model"
)

// ErrCategoryMismatch rejects a category that does not belong to the list of
// its declared transaction type. The pairing is enforced here, at the
// persistence boundary, not just by whichever UI built the input.
var ErrCategoryMismatch = errors.New("category does not belong to transaction type")

// TransactionInput carries the fields needed to record a transaction.
type TransactionInput struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Person      string  `json:"person" validate:"required,oneof=person1 person2"`
	Date        time.Time `json:"transaction_date"`
}

// TransactionService validates and persists transactions for the household.
type TransactionService struct {
	txs      TransactionStore
	couples  CoupleStore
	validate *validator.Validate
}

func NewTransactionService(txs TransactionStore, couples CoupleStore) *TransactionService {
	return &TransactionService{
		txs:      txs,
		couples:  couples,
		validate: validator.New(),
	}
}

// Create validates the input and stores a new transaction. A zero date means
// "today". Validation failures are reported before any persistence call.
func (s *TransactionService) Create(ctx context.Context, input TransactionInput) (*model.Transaction, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}
	if !model.ValidCategory(input.Type, input.Category) {
		return nil, ErrCategoryMismatch
	}

	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = today()
	}

	tx := model.Transaction{
		CoupleID:        couple.ID,
		Amount:          input.Amount,
		Description:     input.Description,
		Category:        input.Category,
		Type:            input.Type,
		Person:          input.Person,
		TransactionDate: date,
	}
	if err := s.txs.Create(ctx, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Update edits the mutable fields of an existing transaction. The id, couple,
// type and person are immutable; amount, category, description and date can
// change but stay subject to the same validation as creation.
func (s *TransactionService) Update(ctx context.Context, id uint, input TransactionInput) (*model.Transaction, error) {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := s.txs.FindByID(ctx, couple.ID, id)
	if err != nil {
		return nil, err
	}

	input.Type = tx.Type
	input.Person = tx.Person
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}
	if !model.ValidCategory(tx.Type, input.Category) {
		return nil, ErrCategoryMismatch
	}

	tx.Amount = input.Amount
	tx.Description = input.Description
	tx.Category = input.Category
	if !input.Date.IsZero() {
		tx.TransactionDate = input.Date
	}
	if err := s.txs.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, id uint) error {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return err
	}
	return s.txs.Delete(ctx, couple.ID, id)
}

// List returns every transaction of the household, newest created first.
func (s *TransactionService) List(ctx context.Context) ([]model.Transaction, error) {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, err
	}
	return s.txs.ListByCouple(ctx, couple.ID)
}

// Recent returns the latest transactions by transaction date.
func (s *TransactionService) Recent(ctx context.Context, limit int) ([]model.Transaction, error) {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, err
	}
	return s.txs.ListRecent(ctx, couple.ID, limit)
}

// Search finds transactions whose description contains the query.
func (s *TransactionService) Search(ctx context.Context, query string, limit int) ([]model.Transaction, error) {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return nil, err
	}
	return s.txs.SearchByDescription(ctx, couple.ID, query, limit)
}

// today is the current calendar date without a time-of-day component.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
