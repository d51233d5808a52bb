package models

import "time"

// Income represents a credit event in a user's ledger.
// Amount is stored in kopecks. Date is the economic date of the income,
// independent of insertion time and editable afterwards; all balance
// arithmetic scopes by it.
type Income struct {
	Base
	UserID string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string    `gorm:"not null" json:"name"`
	Amount int64     `gorm:"type:bigint;not null" json:"amount"`
	Date   time.Time `gorm:"not null;index" json:"date"`
}
