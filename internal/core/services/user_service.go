package services

import (
	"context"
	"errors"
	"log"

	"gomarket/internal/adapters/persistence/models"
	"gomarket/internal/adapters/persistence/repositories"
	"gomarket/internal/pkg/pagination"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCannotDeleteAdmin = errors.New("admin users cannot be deleted")
)

// UserService handles user administration business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers lists one page of users
func (s *UserService) ListUsers(ctx context.Context, params pagination.Params) (*pagination.Page[*models.UserResponse], error) {
	params = params.Normalize()

	users, total, err := s.userRepo.List(ctx, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}

	return pagination.NewPage(responses, params, total), nil
}

// ToggleSupplier flips a user's supplier flag and sets the customer flag to
// its inverse. Applying it twice restores the original state.
func (s *UserService) ToggleSupplier(ctx context.Context, userID uint) (*models.UserResponse, string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	var message string
	if user.IsSupplier {
		user.IsSupplier = false
		user.IsCustomer = true
		message = "User is no longer supplier"
	} else {
		user.IsSupplier = true
		user.IsCustomer = false
		message = "User is now supplier"
	}

	if err := s.userRepo.UpdateRoles(ctx, user.ID, user.IsSupplier, user.IsCustomer); err != nil {
		return nil, "", err
	}

	log.Printf("✅ Supplier status changed: %s (supplier=%t)", user.Username, user.IsSupplier)

	return user.ToResponse(), message, nil
}

// ToggleActive deactivates an active user or reactivates a deactivated one.
// Admin accounts are never deactivated; users are never hard-deleted.
func (s *UserService) ToggleActive(ctx context.Context, userID uint) (*models.UserResponse, string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if user.IsAdmin {
		return nil, "", ErrCannotDeleteAdmin
	}

	var message string
	if user.IsActive {
		user.IsActive = false
		message = "User is deleted"
	} else {
		user.IsActive = true
		message = "User is activated"
	}

	if err := s.userRepo.UpdateActive(ctx, user.ID, user.IsActive); err != nil {
		return nil, "", err
	}

	log.Printf("✅ Active status changed: %s (active=%t)", user.Username, user.IsActive)

	return user.ToResponse(), message, nil
}
