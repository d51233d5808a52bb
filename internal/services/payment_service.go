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

// paymentService handles payment-related business logic.
type paymentService struct {
	store     store.Store
	formatter *money.Formatter
}

// NewPaymentService creates a new PaymentServicer.
func NewPaymentService(st store.Store, formatter *money.Formatter) PaymentServicer {
	return &paymentService{store: st, formatter: formatter}
}

// CreatePayment records a new spending event. The amount arrives as the
// user-facing major-unit string and is validated before any store access.
// The balance check and the insert run in one store transaction.
func (s *paymentService) CreatePayment(userID, name, amount, categoryID string, date time.Time, quantity, grams *int) (*models.Payment, error) {
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

	payment := &models.Payment{
		UserID:     userID,
		CategoryID: categoryID,
		Name:       name,
		Amount:     kopecks,
		Date:       date,
		Quantity:   quantity,
		Grams:      grams,
	}

	err = s.store.Transact(func(tx store.Store) error {
		category, found, txErr := tx.GetCategory(userID, categoryID)
		if txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if !found {
			return apperrors.ErrCategoryNotFound
		}

		if txErr := checkBalance(tx, userID, kopecks, date, 0); txErr != nil {
			return txErr
		}

		if txErr := tx.CreatePayment(payment); txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		payment.Category = *category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// GetPaymentByID retrieves a payment for a specific user. A payment owned
// by someone else is reported as not found, never as forbidden.
func (s *paymentService) GetPaymentByID(userID, paymentID string) (*models.Payment, error) {
	payment, found, err := s.store.GetPayment(paymentID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found || payment.UserID != userID {
		return nil, apperrors.ErrPaymentNotFound
	}
	return payment, nil
}

// ListPayments returns a paginated list of the user's payments within the window.
func (s *paymentService) ListPayments(userID string, window store.Window, page pagination.PageRequest) (*pagination.PageResponse[models.Payment], error) {
	page.Defaults()
	payments, totalItems, err := s.store.ListPayments(userID, window, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	result := pagination.NewPageResponse(payments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdatePayment edits an existing payment. The spending guard judges the
// new amount against the balance with the payment's old amount excluded:
// the old amount is added back only when the old date falls inside the new
// cutoff, since a record outside it never contributed to that balance.
func (s *paymentService) UpdatePayment(userID, paymentID string, update PaymentUpdate) (*models.Payment, error) {
	var updated *models.Payment
	err := s.store.Transact(func(tx store.Store) error {
		payment, found, txErr := tx.GetPayment(paymentID)
		if txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if !found {
			return apperrors.ErrPaymentNotFound
		}
		if payment.UserID != userID {
			return apperrors.NewNotOwner(payment.Name)
		}

		fields := make(map[string]any)

		if update.Name != nil {
			if strings.TrimSpace(*update.Name) == "" {
				return apperrors.ErrEmptyString
			}
			fields["name"] = *update.Name
		}

		newAmount := payment.Amount
		if update.Amount != nil {
			kopecks, parseErr := s.formatter.ParseAmount(*update.Amount)
			if parseErr != nil {
				return parseErr
			}
			newAmount = kopecks
			fields["amount"] = kopecks
		}

		newDate := payment.Date
		if update.Date != nil && !update.Date.IsZero() {
			newDate = *update.Date
			fields["date"] = newDate
		}

		if update.CategoryID != nil {
			_, catFound, catErr := tx.GetCategory(userID, *update.CategoryID)
			if catErr != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, catErr)
			}
			if !catFound {
				return apperrors.ErrCategoryNotFound
			}
			fields["category_id"] = *update.CategoryID
		}

		if update.Quantity != nil {
			fields["quantity"] = *update.Quantity
		}
		if update.Grams != nil {
			fields["grams"] = *update.Grams
		}

		previous := int64(0)
		if !payment.Date.After(newDate) {
			previous = payment.Amount
		}
		if txErr := checkBalance(tx, userID, newAmount, newDate, previous); txErr != nil {
			return txErr
		}

		if len(fields) > 0 {
			if txErr := tx.UpdatePayment(paymentID, fields); txErr != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
			}
		}

		reloaded, _, txErr := tx.GetPayment(paymentID)
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

// DeletePayment removes a payment after verifying ownership.
func (s *paymentService) DeletePayment(userID, paymentID string) error {
	return s.store.Transact(func(tx store.Store) error {
		payment, found, err := tx.GetPayment(paymentID)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !found {
			return apperrors.ErrPaymentNotFound
		}
		if payment.UserID != userID {
			return apperrors.NewNotOwner(payment.Name)
		}

		if err := tx.DeletePayment(payment); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
