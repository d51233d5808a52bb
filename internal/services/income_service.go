package services

import (
	"strings"
	"time"

	apperrors "kassa/internal/errors"
	"kassa/internal/models"
	"kassa/internal/money"
	"kassa/internal/pagination"
	"kassa/internal/store"
)

// incomeService handles income-related business logic.
type incomeService struct {
	store     store.Store
	formatter *money.Formatter
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(st store.Store, formatter *money.Formatter) IncomeServicer {
	return &incomeService{store: st, formatter: formatter}
}

// CreateIncome records a new credit event. Amounts are validated before
// any store access; income needs no balance guard since it only raises
// the balance.
func (s *incomeService) CreateIncome(userID, name, amount string, date time.Time) (*models.Income, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrEmptyString
	}

	kopecks, err := s.formatter.ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	income := &models.Income{
		UserID: userID,
		Name:   name,
		Amount: kopecks,
		Date:   date,
	}

	err = s.store.Transact(func(tx store.Store) error {
		if txErr := tx.CreateIncome(income); txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return income, nil
}

// GetIncomeByID retrieves an income for a specific user. An income owned
// by someone else is reported as not found, never as forbidden.
func (s *incomeService) GetIncomeByID(userID, incomeID string) (*models.Income, error) {
	income, found, err := s.store.GetIncome(incomeID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found || income.UserID != userID {
		return nil, apperrors.ErrIncomeNotFound
	}
	return income, nil
}

// ListIncomes returns a paginated list of the user's incomes within the window.
func (s *incomeService) ListIncomes(userID string, window store.Window, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()
	incomes, totalItems, err := s.store.ListIncomes(userID, window, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateIncome edits an existing income after verifying ownership.
func (s *incomeService) UpdateIncome(userID, incomeID string, update IncomeUpdate) (*models.Income, error) {
	var updated *models.Income
	err := s.store.Transact(func(tx store.Store) error {
		income, found, txErr := tx.GetIncome(incomeID)
		if txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if !found {
			return apperrors.ErrIncomeNotFound
		}
		if income.UserID != userID {
			return apperrors.NewNotOwner(income.Name)
		}

		fields := make(map[string]any)

		if update.Name != nil {
			if strings.TrimSpace(*update.Name) == "" {
				return apperrors.ErrEmptyString
			}
			fields["name"] = *update.Name
		}
		if update.Amount != nil {
			kopecks, parseErr := s.formatter.ParseAmount(*update.Amount)
			if parseErr != nil {
				return parseErr
			}
			fields["amount"] = kopecks
		}
		if update.Date != nil && !update.Date.IsZero() {
			fields["date"] = *update.Date
		}

		if len(fields) > 0 {
			if txErr := tx.UpdateIncome(incomeID, fields); txErr != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
			}
		}

		reloaded, _, txErr := tx.GetIncome(incomeID)
		if txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		updated = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteIncome removes an income after verifying ownership.
func (s *incomeService) DeleteIncome(userID, incomeID string) error {
	return s.store.Transact(func(tx store.Store) error {
		income, found, err := tx.GetIncome(incomeID)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !found {
			return apperrors.ErrIncomeNotFound
		}
		if income.UserID != userID {
			return apperrors.NewNotOwner(income.Name)
		}

		if err := tx.DeleteIncome(income); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
