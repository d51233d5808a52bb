package store

import (
	"errors"

	"gorm.io/gorm"

	"kassa/internal/models"
	"kassa/internal/pagination"
)

// lookup wraps a First query into the (found, err) shape the Store
// contract promises: a missing row is an expected outcome, not an error.
func lookup(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (s *gormStore) GetPayment(id string) (*models.Payment, bool, error) {
	var p models.Payment
	found, err := lookup(s.db.Preload("Category").Where("id = ?", id).First(&p).Error)
	if !found || err != nil {
		return nil, found, err
	}
	return &p, true, nil
}

func (s *gormStore) ListPayments(userID string, window Window, page pagination.PageRequest) ([]models.Payment, int64, error) {
	page.Defaults()

	base := windowed(s.db.Model(&models.Payment{}).Where("user_id = ?", userID), window)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	var payments []models.Payment
	if err := base.Preload("Category").
		Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, totalItems, nil
}

func (s *gormStore) CreatePayment(p *models.Payment) error {
	return s.db.Create(p).Error
}

func (s *gormStore) UpdatePayment(id string, fields map[string]any) error {
	return s.db.Model(&models.Payment{}).Where("id = ?", id).Updates(fields).Error
}

func (s *gormStore) DeletePayment(p *models.Payment) error {
	return s.db.Delete(p).Error
}

func (s *gormStore) GetIncome(id string) (*models.Income, bool, error) {
	var in models.Income
	found, err := lookup(s.db.Where("id = ?", id).First(&in).Error)
	if !found || err != nil {
		return nil, found, err
	}
	return &in, true, nil
}

func (s *gormStore) ListIncomes(userID string, window Window, page pagination.PageRequest) ([]models.Income, int64, error) {
	page.Defaults()

	base := windowed(s.db.Model(&models.Income{}).Where("user_id = ?", userID), window)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	var incomes []models.Income
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		return nil, 0, err
	}
	return incomes, totalItems, nil
}

func (s *gormStore) CreateIncome(i *models.Income) error {
	return s.db.Create(i).Error
}

func (s *gormStore) UpdateIncome(id string, fields map[string]any) error {
	return s.db.Model(&models.Income{}).Where("id = ?", id).Updates(fields).Error
}

func (s *gormStore) DeleteIncome(i *models.Income) error {
	return s.db.Delete(i).Error
}

func (s *gormStore) GetCategory(userID, id string) (*models.Category, bool, error) {
	var c models.Category
	found, err := lookup(s.db.Where("id = ? AND user_id = ?", id, userID).First(&c).Error)
	if !found || err != nil {
		return nil, found, err
	}
	return &c, true, nil
}

func (s *gormStore) ListCategories(userID string) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&categories).Error
	return categories, err
}

func (s *gormStore) CountCategoriesByName(userID, name string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	return count, err
}

func (s *gormStore) CreateCategory(c *models.Category) error {
	return s.db.Create(c).Error
}

func (s *gormStore) UpdateCategory(id string, fields map[string]any) error {
	return s.db.Model(&models.Category{}).Where("id = ?", id).Updates(fields).Error
}

func (s *gormStore) GetUserByUsername(username string) (*models.User, bool, error) {
	var u models.User
	found, err := lookup(s.db.Where("username = ?", username).First(&u).Error)
	if !found || err != nil {
		return nil, found, err
	}
	return &u, true, nil
}

func (s *gormStore) GetUserByID(id string) (*models.User, bool, error) {
	var u models.User
	found, err := lookup(s.db.Where("id = ?", id).First(&u).Error)
	if !found || err != nil {
		return nil, found, err
	}
	return &u, true, nil
}

func (s *gormStore) CountUsersByUsername(username string) (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count, err
}

func (s *gormStore) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *gormStore) CreateAuditLog(entry *models.AuditLog) error {
	return s.db.Create(entry).Error
}
