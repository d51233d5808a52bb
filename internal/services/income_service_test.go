package services

import (
	"testing"
	"time"

	"kassa/internal/pagination"
	"kassa/internal/store"
	"kassa/internal/testutil"
)

func TestCreateIncome(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(store.New(db), newTestFormatter())
		user := testutil.CreateTestUser(t, db)

		income, err := svc.CreateIncome(user.ID, "Salary", "1000", time.Time{})
		testutil.AssertNoError(t, err)
		if income.ID == "" {
			t.Fatal("expected non-empty income ID")
		}
		if income.Amount != 100000 {
			t.Errorf("expected amount 100000 kopecks, got %d", income.Amount)
		}
		if income.Date.IsZero() {
			t.Error("zero date should default to now")
		}
	})

	t.Run("explicit_date_kept", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(store.New(db), newTestFormatter())
		user := testutil.CreateTestUser(t, db)

		date := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)
		income, err := svc.CreateIncome(user.ID, "Salary", "1000", date)
		testutil.AssertNoError(t, err)
		if !income.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, income.Date)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(store.New(db), newTestFormatter())
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateIncome(user.ID, "", "1000", time.Time{})
		testutil.AssertAppError(t, err, "EMPTY_STRING")
	})

	t.Run("invalid_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(store.New(db), newTestFormatter())
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateIncome(user.ID, "Salary", "-5", time.Time{})
		testutil.AssertAppError(t, err, "NOT_POSITIVE_VALUE")
	})
}

func TestGetIncomeByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(store.New(db), newTestFormatter())
		user := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, user.ID, 100000)

		got, err := svc.GetIncomeByID(user.ID, income.ID)
		testutil.AssertNoError(t, err)
		if got.ID != income.ID {
			t.Errorf("expected income %s, got %s", income.ID, got.ID)
		}
	})

	t.Run("foreign_income_reported_as_missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(store.New(db), newTestFormatter())
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, other.ID, 100000)

		_, err := svc.GetIncomeByID(user.ID, income.ID)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})
}

func TestListIncomes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewIncomeService(store.New(db), newTestFormatter())
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestIncomeAt(t, db, user.ID, 100000,
		time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC))
	testutil.CreateTestIncomeAt(t, db, user.ID, 50000,
		time.Date(2024, time.December, 31, 12, 0, 0, 0, time.UTC))

	page, err := svc.ListIncomes(user.ID, store.Window{Year: 2025}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 1 {
		t.Errorf("expected 1 income in 2025, got %d", page.TotalItems)
	}

	page, err = svc.ListIncomes(user.ID, store.Window{}, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 2 {
		t.Errorf("expected 2 incomes all-time, got %d", page.TotalItems)
	}
}

func TestUpdateIncome(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(store.New(db), newTestFormatter())
		user := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, user.ID, 100000)

		name := "Bonus"
		amount := "2000"
		updated, err := svc.UpdateIncome(user.ID, income.ID, IncomeUpdate{Name: &name, Amount: &amount})
		testutil.AssertNoError(t, err)
		if updated.Name != "Bonus" {
			t.Errorf("expected name Bonus, got %s", updated.Name)
		}
		if updated.Amount != 200000 {
			t.Errorf("expected amount 200000, got %d", updated.Amount)
		}
	})

	t.Run("foreign_income_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(store.New(db), newTestFormatter())
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, other.ID, 100000)

		name := "Hijacked"
		_, err := svc.UpdateIncome(user.ID, income.ID, IncomeUpdate{Name: &name})
		testutil.AssertAppError(t, err, "NOT_OWNER")
	})
}

func TestDeleteIncome(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(store.New(db), newTestFormatter())
		user := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, user.ID, 100000)

		err := svc.DeleteIncome(user.ID, income.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetIncomeByID(user.ID, income.ID)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})

	t.Run("foreign_income_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(store.New(db), newTestFormatter())
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, other.ID, 100000)

		err := svc.DeleteIncome(user.ID, income.ID)
		testutil.AssertAppError(t, err, "NOT_OWNER")
	})
}
