package models

import "time"

// Payment represents a debit event in a user's ledger.
// Amount is stored in kopecks and must never overdraw the balance at the
// payment's own Date. Quantity and Grams are presentational metadata and
// take no part in the ledger invariant.
type Payment struct {
	Base
	UserID     string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID string    `gorm:"type:uuid;not null;index" json:"category_id"`
	Name       string    `gorm:"not null" json:"name"`
	Amount     int64     `gorm:"type:bigint;not null" json:"amount"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	Quantity   *int      `json:"quantity,omitempty"`
	Grams      *int      `json:"grams,omitempty"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
