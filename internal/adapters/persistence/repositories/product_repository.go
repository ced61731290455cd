package repositories

import (
	"context"

	"gomarket/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// productRepository implements ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create creates a new product
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// GetBySlug gets a product by slug
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListAvailable lists active products with stock on hand
func (r *productRepository) ListAvailable(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND stock > ?", true, 0).
		Find(&products).Error
	return products, err
}

// ListByCategoryIDs lists in-stock products belonging to any of the categories
func (r *productRepository) ListByCategoryIDs(ctx context.Context, categoryIDs []uint) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Where("category_id IN ? AND stock > ?", categoryIDs, 0).
		Find(&products).Error
	return products, err
}

// ListActiveIDs lists the IDs of all active products
func (r *productRepository) ListActiveIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = ?", true).
		Pluck("id", &ids).Error
	return ids, err
}

// Update updates a product
func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// UpdateRating updates the stored average rating of a product
func (r *productRepository) UpdateRating(ctx context.Context, id uint, rating float64) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).
		Update("rating", rating).Error
}

// Deactivate soft deletes a product by clearing its active flag
func (r *productRepository) Deactivate(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug).
		Update("is_active", false).Error
}
