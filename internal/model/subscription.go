package model

import "time"

// ChatSubscription stores a Telegram chat's notification preference.
type ChatSubscription struct {
	ChatID       int64     `gorm:"primaryKey;autoIncrement:false" json:"chat_id"`
	DailySummary bool      `gorm:"default:false" json:"daily_summary"`
	UpdatedAt    time.Time `json:"updated_at"`
}
