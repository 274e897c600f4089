package model

import "time"

// Transaction types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Person tags identifying which household member a transaction belongs to.
const (
	PersonOne = "person1"
	PersonTwo = "person2"
)

// Transaction is a single income or expense entry of the household.
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CoupleID        uint      `gorm:"index" json:"couple_id"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	Category        string    `gorm:"index" json:"category"`
	Type            string    `gorm:"index" json:"type"`
	Person          string    `json:"person"`
	TransactionDate time.Time `gorm:"index" json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
}
