package model

import "time"

// Couple is the single household record all data belongs to.
type Couple struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Person1Name string    `json:"person1_name"`
	Person2Name string    `json:"person2_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PersonName resolves a person tag to the configured member name.
func (c *Couple) PersonName(person string) string {
	if person == PersonTwo {
		return c.Person2Name
	}
	return c.Person1Name
}
