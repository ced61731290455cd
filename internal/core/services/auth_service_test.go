package services

import (
	"context"
	"testing"

	"gomarket/internal/adapters/persistence/repositories"
	"gomarket/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, repositories.UserRepository) {
	t.Helper()
	userRepo := repositories.NewUserRepository(setupTestDB(t))
	return NewAuthService(userRepo, testConfig()), userRepo
}

func registerAlice(t *testing.T, svc *AuthService) {
	t.Helper()
	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "pw123456",
	})
	require.NoError(t, err)
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	registerAlice(t, svc)

	result, err := svc.Login(context.Background(), &LoginInput{
		Username: "alice",
		Password: "pw123456",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "bearer", result.TokenType)

	claims, err := jwt.DecodeAccessToken(result.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.False(t, claims.IsAdmin)
	assert.False(t, claims.IsSupplier)
	assert.True(t, claims.IsCustomer)
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "pw123456",
	})
	require.NoError(t, err)

	assert.False(t, user.IsAdmin)
	assert.False(t, user.IsSupplier)
	assert.True(t, user.IsCustomer)
	assert.True(t, user.IsActive)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, userRepo := newAuthService(t)
	registerAlice(t, svc)

	stored, err := userRepo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Another",
		LastName:  "Alice",
		Username:  "alice",
		Email:     "other@example.com",
		Password:  "pw123456",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Bob",
		LastName:  "Jones",
		Username:  "bob",
		Email:     "alice@example.com",
		Password:  "pw123456",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "short",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, userRepo := newAuthService(t)
	registerAlice(t, svc)

	// Deactivated account for the third case
	stored, err := userRepo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		prepare  func(t *testing.T)
	}{
		{"wrong password", "alice", "wrong-password", nil},
		{"unknown username", "nobody", "pw123456", nil},
		{
			"inactive user", "alice", "pw123456",
			func(t *testing.T) {
				require.NoError(t, userRepo.UpdateActive(context.Background(), stored.ID, false))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepare != nil {
				tt.prepare(t)
			}
			_, err := svc.Login(context.Background(), &LoginInput{
				Username: tt.username,
				Password: tt.password,
			})
			// One undifferentiated error for every failure mode
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLoginTokenFreezesRoleFlags(t *testing.T) {
	svc, userRepo := newAuthService(t)
	registerAlice(t, svc)

	result, err := svc.Login(context.Background(), &LoginInput{
		Username: "alice",
		Password: "pw123456",
	})
	require.NoError(t, err)

	// Role change after issuance must not reach the already-issued token
	require.NoError(t, userRepo.UpdateRoles(context.Background(), result.User.ID, true, false))

	claims, err := jwt.DecodeAccessToken(result.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.False(t, claims.IsSupplier)
	assert.True(t, claims.IsCustomer)
}
