package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"kassa/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithUsername(t, db, username)
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates an active category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, userID, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates an active category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:   userID,
		Name:     name,
		IsActive: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestIncome creates an income dated now with the given amount (in kopecks).
func CreateTestIncome(t *testing.T, db *gorm.DB, userID string, amount int64) *models.Income {
	t.Helper()
	return CreateTestIncomeAt(t, db, userID, amount, time.Now())
}

// CreateTestIncomeAt creates an income with the given amount (in kopecks) and date.
func CreateTestIncomeAt(t *testing.T, db *gorm.DB, userID string, amount int64, date time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID: userID,
		Name:   fmt.Sprintf("Test Income %d", nextID()),
		Amount: amount,
		Date:   date,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestPayment creates a payment dated now with the given amount (in kopecks).
func CreateTestPayment(t *testing.T, db *gorm.DB, userID, categoryID string, amount int64) *models.Payment {
	t.Helper()
	return CreateTestPaymentAt(t, db, userID, categoryID, amount, time.Now())
}

// CreateTestPaymentAt creates a payment with the given amount (in kopecks) and date.
func CreateTestPaymentAt(t *testing.T, db *gorm.DB, userID, categoryID string, amount int64, date time.Time) *models.Payment {
	t.Helper()

	payment := &models.Payment{
		UserID:     userID,
		CategoryID: categoryID,
		Name:       fmt.Sprintf("Test Payment %d", nextID()),
		Amount:     amount,
		Date:       date,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}
