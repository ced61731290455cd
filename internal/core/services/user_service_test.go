package services

import (
	"context"
	"testing"

	"gomarket/internal/adapters/persistence/models"
	"gomarket/internal/adapters/persistence/repositories"
	"gomarket/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()
	user.Password = "irrelevant-hash"
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestToggleSupplierDoubleToggleRestoresState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	user := seedUser(t, db, &models.User{
		Username:   "carol",
		Email:      "carol@example.com",
		IsCustomer: true,
		IsActive:   true,
	})

	// First toggle: customer -> supplier
	updated, message, err := svc.ToggleSupplier(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "User is now supplier", message)
	assert.True(t, updated.IsSupplier)
	assert.False(t, updated.IsCustomer)

	// Second toggle: back to the original state
	updated, message, err = svc.ToggleSupplier(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "User is no longer supplier", message)
	assert.False(t, updated.IsSupplier)
	assert.True(t, updated.IsCustomer)
}

func TestToggleSupplierUnknownUser(t *testing.T) {
	svc := NewUserService(repositories.NewUserRepository(setupTestDB(t)))

	_, _, err := svc.ToggleSupplier(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleActiveDeactivatesAndReactivates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	user := seedUser(t, db, &models.User{
		Username:   "dave",
		Email:      "dave@example.com",
		IsCustomer: true,
		IsActive:   true,
	})

	updated, message, err := svc.ToggleActive(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "User is deleted", message)
	assert.False(t, updated.IsActive)

	updated, message, err = svc.ToggleActive(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "User is activated", message)
	assert.True(t, updated.IsActive)
}

func TestToggleActiveRejectsAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	admin := seedUser(t, db, &models.User{
		Username: "root",
		Email:    "root@example.com",
		IsAdmin:  true,
		IsActive: true,
	})

	_, _, err := svc.ToggleActive(context.Background(), admin.ID)
	assert.ErrorIs(t, err, ErrCannotDeleteAdmin)

	// Store state unchanged
	var stored models.User
	require.NoError(t, db.First(&stored, admin.ID).Error)
	assert.True(t, stored.IsActive)
	assert.True(t, stored.IsAdmin)
}

func TestListUsersPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	for _, name := range []string{"u1", "u2", "u3"} {
		seedUser(t, db, &models.User{
			Username:   name,
			Email:      name + "@example.com",
			IsCustomer: true,
			IsActive:   true,
		})
	}

	page, err := svc.ListUsers(context.Background(), pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 2)

	page, err = svc.ListUsers(context.Background(), pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestListUsersClampsBadParams(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	seedUser(t, db, &models.User{
		Username:   "eve",
		Email:      "eve@example.com",
		IsCustomer: true,
		IsActive:   true,
	})

	page, err := svc.ListUsers(context.Background(), pagination.Params{Page: 0, Limit: -5})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, pagination.DefaultLimit, page.Limit)
	assert.Len(t, page.Items, 1)
}
