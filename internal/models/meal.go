package models

import "time"

// Meal is a single diary entry. Datetime is the composed date+time the meal
// was eaten, stored as one naive timestamp with no offset.
type Meal struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Datetime    time.Time `db:"datetime" json:"datetime"`
	IsOnDiet    bool      `db:"is_on_diet" json:"is_on_diet"`
	UserID      string    `db:"user_id" json:"user_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
