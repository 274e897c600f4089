package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"duoprofits/internal/model"
)

// TransactionRepository handles CRUD for transactions.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// ListByCouple returns every transaction of the household, newest created first.
func (r *TransactionRepository) ListByCouple(ctx context.Context, coupleID uint) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := r.db.WithContext(ctx).Where("couple_id = ?", coupleID).
		Order("created_at DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// ListRecent returns the latest transactions by transaction date.
func (r *TransactionRepository) ListRecent(ctx context.Context, coupleID uint, limit int) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := r.db.WithContext(ctx).Where("couple_id = ?", coupleID).
		Order("transaction_date DESC, created_at DESC").
		Limit(limit).
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, coupleID, id uint) (*model.Transaction, error) {
	var tx model.Transaction
	if err := r.db.WithContext(ctx).Where("couple_id = ? AND id = ?", coupleID, id).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *model.Transaction) error {
	if err := r.db.WithContext(ctx).Save(tx).Error; err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete removes a transaction by id. Deleting an id that does not exist for
// the household reports gorm.ErrRecordNotFound.
func (r *TransactionRepository) Delete(ctx context.Context, coupleID, id uint) error {
	res := r.db.WithContext(ctx).Where("couple_id = ? AND id = ?", coupleID, id).
		Delete(&model.Transaction{})
	if res.Error != nil {
		return fmt.Errorf("delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchByDescription finds transactions whose description contains the query,
// case-insensitively, newest first.
func (r *TransactionRepository) SearchByDescription(ctx context.Context, coupleID uint, query string, limit int) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := r.db.WithContext(ctx).
		Where("couple_id = ? AND description ILIKE ?", coupleID, "%"+query+"%").
		Order("transaction_date DESC, created_at DESC").
		Limit(limit).
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
