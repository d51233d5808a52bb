package services

import (
	"time"

	"kassa/internal/models"
	"kassa/internal/pagination"
	"kassa/internal/store"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
// Categories are never hard-deleted; deactivation is the only retirement.
type CategoryServicer interface {
	CreateCategory(userID, name string) (*models.Category, error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	GetUserCategories(userID string) ([]models.Category, error)
	UpdateCategory(userID, categoryID string, name *string, isActive *bool) (*models.Category, error)
	// ListOptions returns category names ordered for a select control:
	// the current selection first, then the first-created anchor, then the
	// rest alphabetically. Inactive categories are offered only when they
	// are the current selection.
	ListOptions(userID, selected string) ([]string, error)
}

// PaymentUpdate holds the optional fields of a payment edit. Nil means
// leave unchanged. Amount is the user-facing major-unit string.
type PaymentUpdate struct {
	Name       *string
	Amount     *string
	CategoryID *string
	Date       *time.Time
	Quantity   *int
	Grams      *int
}

// PaymentServicer defines the contract for payment-related business logic.
// Every mutation commits atomically with its balance check.
type PaymentServicer interface {
	CreatePayment(userID, name, amount, categoryID string, date time.Time, quantity, grams *int) (*models.Payment, error)
	GetPaymentByID(userID, paymentID string) (*models.Payment, error)
	ListPayments(userID string, window store.Window, page pagination.PageRequest) (*pagination.PageResponse[models.Payment], error)
	UpdatePayment(userID, paymentID string, update PaymentUpdate) (*models.Payment, error)
	DeletePayment(userID, paymentID string) error
}

// IncomeUpdate holds the optional fields of an income edit.
type IncomeUpdate struct {
	Name   *string
	Amount *string
	Date   *time.Time
}

// IncomeServicer defines the contract for income-related business logic.
// Income only raises the balance, so there is no spending guard here.
type IncomeServicer interface {
	CreateIncome(userID, name, amount string, date time.Time) (*models.Income, error)
	GetIncomeByID(userID, incomeID string) (*models.Income, error)
	ListIncomes(userID string, window store.Window, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	UpdateIncome(userID, incomeID string, update IncomeUpdate) (*models.Income, error)
	DeleteIncome(userID, incomeID string) error
}

// DashboardView is the read-only summary a dashboard request renders.
// Raw values are kopecks; the Display fields carry the formatted strings.
type DashboardView struct {
	TotalIncome          int64           `json:"total_income"`
	TotalSpending        int64           `json:"total_spending"`
	Balance              int64           `json:"balance"`
	BalanceDisplay       string          `json:"balance_display"`
	TotalSpendingDisplay string          `json:"total_spending_display"`
	ElapsedDays          int64           `json:"elapsed_days"`
	RatePerDay           int64           `json:"rate_per_day"`
	DaysLeft             int64           `json:"days_left"`
	MonthlyTotals        []MonthTotal    `json:"monthly_totals"`
	CategoryShares       []CategoryShare `json:"category_shares"`
	Years                []int           `json:"years,omitempty"`
}

// DashboardServicer defines the contract for building dashboards.
type DashboardServicer interface {
	BuildDashboard(userID string, window store.Window) (*DashboardView, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
