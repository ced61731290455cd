package repositories

import (
	"context"

	"gomarket/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateRoles(ctx context.Context, id uint, isSupplier, isCustomer bool) error
	UpdateActive(ctx context.Context, id uint, isActive bool) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CategoryRepository defines category repository interface
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	ListActive(ctx context.Context) ([]*models.Category, error)
	ListChildren(ctx context.Context, parentID uint) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Deactivate(ctx context.Context, id uint) error
}

// ProductRepository defines product repository interface
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListAvailable(ctx context.Context) ([]*models.Product, error)
	ListByCategoryIDs(ctx context.Context, categoryIDs []uint) ([]*models.Product, error)
	ListActiveIDs(ctx context.Context) ([]uint, error)
	Update(ctx context.Context, product *models.Product) error
	UpdateRating(ctx context.Context, id uint, rating float64) error
	Deactivate(ctx context.Context, slug string) error
}

// ReviewRepository defines review and rating data access
type ReviewRepository interface {
	CreateWithRating(ctx context.Context, review *models.Review, rating *models.Rating) (float64, error)
	ListActive(ctx context.Context) ([]*models.Review, error)
	ListByProductID(ctx context.Context, productID uint) ([]*models.Review, error)
	ListRatingsByProductID(ctx context.Context, productID uint) ([]*models.Rating, error)
	AverageGrade(ctx context.Context, productID uint) (float64, error)
	DeactivateByProductID(ctx context.Context, productID uint) error
}
