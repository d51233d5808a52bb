package services

import (
	"strings"

	apperrors "kassa/internal/errors"
	"kassa/internal/models"
	"kassa/internal/options"
	"kassa/internal/store"
)

// categoryService handles category-related business logic.
type categoryService struct {
	store store.Store
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(st store.Store) CategoryServicer {
	return &categoryService{store: st}
}

// CreateCategory creates a new spending category. Names are unique within
// the owner's scope only.
func (s *categoryService) CreateCategory(userID, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrEmptyString
	}

	count, err := s.store.CountCategoriesByName(userID, name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		UserID:   userID,
		Name:     name,
		IsActive: true,
	}
	if err := s.store.CreateCategory(category); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// GetCategoryByID retrieves a category by ID for a specific user.
func (s *categoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	category, found, err := s.store.GetCategory(userID, categoryID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}

// GetUserCategories returns the user's categories in creation order.
func (s *categoryService) GetUserCategories(userID string) ([]models.Category, error) {
	categories, err := s.store.ListCategories(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// UpdateCategory renames, activates, or deactivates a category. A rename
// to a name already taken by a different category of the same owner is
// rejected; renaming a category to its own name is a no-op, not a
// conflict. Categories cannot be deleted, so historical payments always
// keep a resolvable label.
func (s *categoryService) UpdateCategory(userID, categoryID string, name *string, isActive *bool) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)

	if name != nil && *name != category.Name {
		if strings.TrimSpace(*name) == "" {
			return nil, apperrors.ErrEmptyString
		}
		count, countErr := s.store.CountCategoriesByName(userID, *name)
		if countErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, countErr)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateCategory
		}
		fields["name"] = *name
	}
	if isActive != nil {
		fields["is_active"] = *isActive
	}

	if len(fields) > 0 {
		if err := s.store.UpdateCategory(categoryID, fields); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetCategoryByID(userID, categoryID)
}

// ListOptions returns the user's category names ordered for a select
// control. Inactive categories are offered only when one of them is the
// current selection, so an edit form for an old payment still shows its
// label without resurrecting retired categories elsewhere.
func (s *categoryService) ListOptions(userID, selected string) ([]string, error) {
	categories, err := s.store.ListCategories(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if c.IsActive || c.Name == selected {
			names = append(names, c.Name)
		}
	}
	return options.Sort(names, selected)
}
