package repository

import (
	"context"

	"gorm.io/gorm"

	"duoprofits/internal/model"
)

// CoupleRepository reads the household record.
type CoupleRepository struct {
	db *gorm.DB
}

func NewCoupleRepository(db *gorm.DB) *CoupleRepository {
	return &CoupleRepository{db: db}
}

// Household returns "the" couple: the most recently created row. Every flow
// in the app operates on this single record.
func (r *CoupleRepository) Household(ctx context.Context) (*model.Couple, error) {
	var couple model.Couple
	if err := r.db.WithContext(ctx).Order("created_at DESC").First(&couple).Error; err != nil {
		return nil, err
	}
	return &couple, nil
}
