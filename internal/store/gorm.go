package store

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"kassa/internal/models"
)

// gormStore implements Store on top of a *gorm.DB handle. The same type
// serves both the root connection and transaction-bound handles, so a
// Transact callback sees the identical API.
type gormStore struct {
	db *gorm.DB
}

// New creates a Store backed by the given GORM database.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Transact(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) SumIncome(userID string, maxDate time.Time) (int64, error) {
	var total int64
	err := s.db.Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND date <= ?", userID, maxDate).
		Scan(&total).Error
	return total, err
}

func (s *gormStore) SumPayments(userID string, maxDate time.Time) (int64, error) {
	var total int64
	err := s.db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND date <= ?", userID, maxDate).
		Scan(&total).Error
	return total, err
}

// windowed applies the window bounds to a query over a table with a date column.
func windowed(q *gorm.DB, window Window) *gorm.DB {
	if from, to, ok := window.Bounds(time.Local); ok {
		q = q.Where("date BETWEEN ? AND ?", from, to)
	}
	return q
}

func (s *gormStore) MinMaxDates(userID string, window Window) (time.Time, time.Time, bool, error) {
	type bounds struct {
		Min *time.Time
		Max *time.Time
	}

	var incomeBounds, paymentBounds bounds
	err := windowed(s.db.Model(&models.Income{}).Where("user_id = ?", userID), window).
		Select("MIN(date) AS min, MAX(date) AS max").
		Scan(&incomeBounds).Error
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	err = windowed(s.db.Model(&models.Payment{}).Where("user_id = ?", userID), window).
		Select("MIN(date) AS min, MAX(date) AS max").
		Scan(&paymentBounds).Error
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}

	var min, max time.Time
	ok := false
	for _, b := range []bounds{incomeBounds, paymentBounds} {
		if b.Min == nil || b.Max == nil {
			continue
		}
		if !ok {
			min, max = *b.Min, *b.Max
			ok = true
			continue
		}
		if b.Min.Before(min) {
			min = *b.Min
		}
		if b.Max.After(max) {
			max = *b.Max
		}
	}
	return min, max, ok, nil
}

func (s *gormStore) ListRecords(userID string, window Window) ([]Record, error) {
	var incomes []models.Income
	if err := windowed(s.db.Where("user_id = ?", userID), window).
		Find(&incomes).Error; err != nil {
		return nil, err
	}

	var payments []models.Payment
	if err := windowed(s.db.Where("user_id = ?", userID), window).
		Preload("Category").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(incomes)+len(payments))
	for _, in := range incomes {
		records = append(records, Record{
			Kind:   RecordKindIncome,
			ID:     in.ID,
			Name:   in.Name,
			Amount: in.Amount,
			Date:   in.Date,
		})
	}
	for _, p := range payments {
		records = append(records, Record{
			Kind:         RecordKindPayment,
			ID:           p.ID,
			Name:         p.Name,
			Amount:       p.Amount,
			CategoryName: p.Category.Name,
			Date:         p.Date,
		})
	}

	// Newest first, the order the record list is shown in.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}

func (s *gormStore) ListYears(userID string) ([]int, error) {
	dates := make([]time.Time, 0)

	var incomeDates []time.Time
	if err := s.db.Model(&models.Income{}).
		Where("user_id = ?", userID).
		Pluck("date", &incomeDates).Error; err != nil {
		return nil, err
	}
	dates = append(dates, incomeDates...)

	var paymentDates []time.Time
	if err := s.db.Model(&models.Payment{}).
		Where("user_id = ?", userID).
		Pluck("date", &paymentDates).Error; err != nil {
		return nil, err
	}
	dates = append(dates, paymentDates...)

	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, d := range dates {
		if !seen[d.Year()] {
			seen[d.Year()] = true
			years = append(years, d.Year())
		}
	}
	sort.Ints(years)
	return years, nil
}
