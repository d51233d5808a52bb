// Package store defines the transactional persistence contract the ledger
// engine consumes, and its GORM implementation. The engine never reaches
// past this interface: every aggregate it needs is a typed method here, so
// the balance logic has no hidden lazy-loading or implicit flush behavior.
package store

import (
	"time"

	"kassa/internal/models"
	"kassa/internal/pagination"
)

// Window bounds a ledger query to a reporting period. The zero value means
// all-time. Year alone covers the whole year; Year with Month covers that
// calendar month.
type Window struct {
	Year  int
	Month time.Month
}

// IsZero reports whether the window places no bounds at all.
func (w Window) IsZero() bool {
	return w.Year == 0
}

// Bounds resolves the window to an inclusive [from, to] interval.
// ok is false for an all-time window, which has no bounds.
func (w Window) Bounds(loc *time.Location) (from, to time.Time, ok bool) {
	if w.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	if w.Month == 0 {
		from = time.Date(w.Year, time.January, 1, 0, 0, 0, 0, loc)
		to = time.Date(w.Year, time.December, 31, 23, 59, 59, 999999999, loc)
		return from, to, true
	}
	from = time.Date(w.Year, w.Month, 1, 0, 0, 0, 0, loc)
	last := from.AddDate(0, 1, -1)
	to = time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 999999999, loc)
	return from, to, true
}

// RecordKind discriminates the entries of the combined ledger.
type RecordKind string

const (
	RecordKindIncome  RecordKind = "income"
	RecordKindPayment RecordKind = "payment"
)

// Record is the tagged union of Income and Payment used by read paths that
// walk the whole ledger. CategoryName is set only for payments.
type Record struct {
	Kind         RecordKind `json:"kind"`
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Amount       int64      `json:"amount"`
	CategoryName string     `json:"category_name,omitempty"`
	Date         time.Time  `json:"date"`
}

// Store is the transactional capability set the ledger engine consumes.
// Mutations must run inside Transact so a balance check and the write it
// guards commit atomically (or not at all); the implementation rejects
// conflicting concurrent writes rather than letting both through.
type Store interface {
	// Transact runs fn against a store bound to one database transaction.
	// A non-nil error from fn rolls the transaction back.
	Transact(fn func(Store) error) error

	// SumIncome returns the total income in kopecks for the owner with
	// date <= maxDate.
	SumIncome(userID string, maxDate time.Time) (int64, error)
	// SumPayments returns the total spending in kopecks for the owner with
	// date <= maxDate.
	SumPayments(userID string, maxDate time.Time) (int64, error)
	// MinMaxDates returns the oldest and newest economic dates across the
	// owner's combined ledger within the window. ok is false when the
	// ledger holds no records there.
	MinMaxDates(userID string, window Window) (min, max time.Time, ok bool, err error)
	// ListRecords returns the owner's combined ledger within the window,
	// newest first.
	ListRecords(userID string, window Window) ([]Record, error)
	// ListYears returns the distinct years, ascending, in which the owner
	// has ledger records.
	ListYears(userID string) ([]int, error)

	// GetPayment looks a payment up by id alone; found is false when no
	// such row exists. Ownership is the caller's concern.
	GetPayment(id string) (*models.Payment, bool, error)
	ListPayments(userID string, window Window, page pagination.PageRequest) ([]models.Payment, int64, error)
	CreatePayment(p *models.Payment) error
	UpdatePayment(id string, fields map[string]any) error
	DeletePayment(p *models.Payment) error

	GetIncome(id string) (*models.Income, bool, error)
	ListIncomes(userID string, window Window, page pagination.PageRequest) ([]models.Income, int64, error)
	CreateIncome(i *models.Income) error
	UpdateIncome(id string, fields map[string]any) error
	DeleteIncome(i *models.Income) error

	// GetCategory is owner-scoped: a category belonging to another user is
	// reported as absent, not as forbidden.
	GetCategory(userID, id string) (*models.Category, bool, error)
	// ListCategories returns the owner's categories in creation order.
	ListCategories(userID string) ([]models.Category, error)
	CountCategoriesByName(userID, name string) (int64, error)
	CreateCategory(c *models.Category) error
	UpdateCategory(id string, fields map[string]any) error

	GetUserByUsername(username string) (*models.User, bool, error)
	GetUserByID(id string) (*models.User, bool, error)
	CountUsersByUsername(username string) (int64, error)
	CreateUser(u *models.User) error

	CreateAuditLog(entry *models.AuditLog) error
}
