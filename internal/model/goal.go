package model

import "time"

// SavingsGoal is a target amount the couple saves towards. Progress is added
// manually; IsCompleted is latched once the current amount reaches the target
// and is never reverted automatically.
type SavingsGoal struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CoupleID      uint       `gorm:"index" json:"couple_id"`
	Title         string     `json:"title"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	TargetDate    *time.Time `json:"target_date"`
	Category      string     `json:"category"`
	IsCompleted   bool       `gorm:"default:false" json:"is_completed"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
