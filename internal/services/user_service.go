package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "kassa/internal/errors"
	"kassa/internal/models"
	"kassa/internal/store"
)

// userService handles user-related business logic.
type userService struct {
	store store.Store
}

// NewUserService creates a new UserServicer.
func NewUserService(st store.Store) UserServicer {
	return &userService{store: st}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *userService) Register(username, password string) (*models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username and password are required")
	}

	count, err := s.store.CountUsersByUsername(username)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUsername
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashed),
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the user. Unknown
// username and wrong password produce the same error so the response
// never reveals which half was wrong.
func (s *userService) Authenticate(username, password string) (*models.User, error) {
	user, found, err := s.store.GetUserByUsername(strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		return nil, apperrors.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(id string) (*models.User, error) {
	user, found, err := s.store.GetUserByID(id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
