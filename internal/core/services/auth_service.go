package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gomarket/internal/adapters/persistence/models"
	"gomarket/internal/adapters/persistence/repositories"
	"gomarket/internal/config"
	"gomarket/internal/pkg/jwt"
	"gomarket/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	// ErrInvalidCredentials covers unknown username, wrong password, and
	// deactivated accounts alike, so a caller cannot probe which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrWeakPassword       = errors.New("password does not meet requirements")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *models.UserResponse `json:"user"`
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
}

// Register registers a new user. New accounts start as plain customers; the
// supplier and admin flags are granted later through the permission endpoints.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.UserResponse, error) {
	if !password.ValidatePassword(input.Password) {
		return nil, ErrWeakPassword
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Username:   input.Username,
		Email:      input.Email,
		Password:   hashedPassword,
		IsAdmin:    false,
		IsSupplier: false,
		IsCustomer: true,
		IsActive:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Concurrent registration of the same username or email loses the
		// race at the unique constraint.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	log.Printf("✅ User registered: %s (ID: %d)", user.Username, user.ID)

	return user.ToResponse(), nil
}

// Login authenticates a user and issues an access token carrying the user's
// role flags as of this moment. The claims are frozen at issuance: role
// changes do not reach already-issued tokens until they expire.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(
		user.ID,
		user.Username,
		user.IsAdmin,
		user.IsSupplier,
		user.IsCustomer,
		s.cfg.JWT.Secret,
		time.Duration(s.cfg.JWT.AccessTokenMins)*time.Minute,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Username)

	return &AuthResponse{
		User:        user.ToResponse(),
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
