package models

// User represents the user model in the database.
// Users own their categories, incomes, and payments; a user is never
// deleted by the ledger engine.
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`

	Categories []Category `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Incomes    []Income   `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Payments   []Payment  `gorm:"foreignKey:UserID" json:"payments,omitempty"`
}
