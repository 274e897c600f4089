package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"duoprofits/internal/model"
)

// SubscriptionRepository stores Telegram chats' notification preferences.
type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Set upserts the daily summary preference for a chat.
func (r *SubscriptionRepository) Set(ctx context.Context, chatID int64, enabled bool) error {
	sub := model.ChatSubscription{ChatID: chatID, DailySummary: enabled}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"daily_summary", "updated_at"}),
	}).Create(&sub).Error
	if err != nil {
		return fmt.Errorf("set subscription: %w", err)
	}
	return nil
}

// IsEnabled reports whether a chat subscribed to the daily summary. Unknown
// chats are simply not subscribed.
func (r *SubscriptionRepository) IsEnabled(ctx context.Context, chatID int64) (bool, error) {
	var sub model.ChatSubscription
	err := r.db.WithContext(ctx).First(&sub, "chat_id = ?", chatID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return sub.DailySummary, nil
}

// ListEnabled returns every chat that opted into the daily summary.
func (r *SubscriptionRepository) ListEnabled(ctx context.Context) ([]model.ChatSubscription, error) {
	var subs []model.ChatSubscription
	if err := r.db.WithContext(ctx).Where("daily_summary = ?", true).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
