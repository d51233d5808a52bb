package store_test

import (
	"testing"
	"time"

	"kassa/internal/models"
	"kassa/internal/store"
	"kassa/internal/testutil"
)

func TestListRecords(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	st := store.New(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategoryWithName(t, db, user.ID, "food")

	testutil.CreateTestIncomeAt(t, db, user.ID, 100000,
		time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))
	testutil.CreateTestPaymentAt(t, db, user.ID, category.ID, 30000,
		time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC))
	testutil.CreateTestIncomeAt(t, db, user.ID, 50000,
		time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC))

	t.Run("merged_newest_first", func(t *testing.T) {
		records, err := st.ListRecords(user.ID, store.Window{})
		testutil.AssertNoError(t, err)
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if records[0].Kind != store.RecordKindPayment {
			t.Errorf("expected newest record to be the payment, got %s", records[0].Kind)
		}
		if records[0].CategoryName != "food" {
			t.Errorf("payment record should carry its category name, got %q", records[0].CategoryName)
		}
		if records[2].Date.Year() != 2024 {
			t.Errorf("expected oldest record last, got %v", records[2].Date)
		}
	})

	t.Run("windowed", func(t *testing.T) {
		records, err := st.ListRecords(user.ID, store.Window{Year: 2025})
		testutil.AssertNoError(t, err)
		if len(records) != 2 {
			t.Errorf("expected 2 records in 2025, got %d", len(records))
		}
	})

	t.Run("income_has_no_category", func(t *testing.T) {
		records, err := st.ListRecords(user.ID, store.Window{Year: 2024})
		testutil.AssertNoError(t, err)
		if len(records) != 1 || records[0].Kind != store.RecordKindIncome {
			t.Fatalf("expected one income record, got %v", records)
		}
		if records[0].CategoryName != "" {
			t.Errorf("income records carry no category, got %q", records[0].CategoryName)
		}
	})
}

func TestMinMaxDates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	st := store.New(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategoryWithName(t, db, user.ID, "food")

	t.Run("empty_ledger", func(t *testing.T) {
		_, _, ok, err := st.MinMaxDates(user.ID, store.Window{})
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("empty ledger should report no bounds")
		}
	})

	oldest := time.Date(2025, time.January, 2, 12, 0, 0, 0, time.UTC)
	newest := time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)
	testutil.CreateTestIncomeAt(t, db, user.ID, 100000, oldest)
	testutil.CreateTestPaymentAt(t, db, user.ID, category.ID, 30000, newest)
	testutil.CreateTestPaymentAt(t, db, user.ID, category.ID, 20000,
		time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC))

	t.Run("spans_both_tables", func(t *testing.T) {
		min, max, ok, err := st.MinMaxDates(user.ID, store.Window{})
		testutil.AssertNoError(t, err)
		if !ok {
			t.Fatal("expected bounds")
		}
		if !min.Equal(oldest) {
			t.Errorf("expected min %v, got %v", oldest, min)
		}
		if !max.Equal(newest) {
			t.Errorf("expected max %v, got %v", newest, max)
		}
	})

	t.Run("windowed", func(t *testing.T) {
		min, max, ok, err := st.MinMaxDates(user.ID, store.Window{Year: 2025, Month: time.March})
		testutil.AssertNoError(t, err)
		if !ok {
			t.Fatal("expected bounds in March")
		}
		if min.Month() != time.March || max.Month() != time.March {
			t.Errorf("expected March bounds, got %v .. %v", min, max)
		}
	})
}

func TestListYears(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	st := store.New(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategoryWithName(t, db, user.ID, "food")

	testutil.CreateTestIncomeAt(t, db, user.ID, 100000,
		time.Date(2023, time.May, 1, 12, 0, 0, 0, time.UTC))
	testutil.CreateTestPaymentAt(t, db, user.ID, category.ID, 30000,
		time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC))
	testutil.CreateTestPaymentAt(t, db, user.ID, category.ID, 30000,
		time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))

	years, err := st.ListYears(user.ID)
	testutil.AssertNoError(t, err)
	if len(years) != 2 || years[0] != 2023 || years[1] != 2025 {
		t.Errorf("expected [2023 2025], got %v", years)
	}
}

func TestTransactRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	st := store.New(db)
	user := testutil.CreateTestUser(t, db)

	sentinel := &rollbackErr{}
	err := st.Transact(func(tx store.Store) error {
		if err := tx.CreateIncome(testIncome(user.ID)); err != nil {
			t.Fatalf("create inside transaction failed: %v", err)
		}
		return sentinel
	})
	if err != sentinel {
		t.Fatalf("expected the callback error back, got %v", err)
	}

	total, err := st.SumIncome(user.ID, time.Now().Add(time.Hour))
	testutil.AssertNoError(t, err)
	if total != 0 {
		t.Errorf("rolled back income should not count, got %d", total)
	}
}

type rollbackErr struct{}

func (*rollbackErr) Error() string { return "rollback" }

func testIncome(userID string) *models.Income {
	return &models.Income{
		UserID: userID,
		Name:   "rolled back",
		Amount: 100,
		Date:   time.Now(),
	}
}
