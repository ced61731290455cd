package repositories

import (
	"context"

	"gomarket/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// reviewRepository implements ReviewRepository interface
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateWithRating inserts a rating and its review in one transaction,
// recomputes the product's average grade, and stores it on the product.
// Returns the new average.
func (r *reviewRepository) CreateWithRating(ctx context.Context, review *models.Review, rating *models.Rating) (float64, error) {
	var average float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			return err
		}

		review.RatingID = rating.ID
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		if err := averageGrade(tx, rating.ProductID, &average); err != nil {
			return err
		}

		return tx.Model(&models.Product{}).Where("id = ?", rating.ProductID).
			Update("rating", average).Error
	})
	if err != nil {
		return 0, err
	}

	return average, nil
}

// ListActive lists all active reviews
func (r *reviewRepository) ListActive(ctx context.Context) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&reviews).Error
	return reviews, err
}

// ListByProductID lists the active reviews of a product
func (r *reviewRepository) ListByProductID(ctx context.Context, productID uint) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_active = ?", productID, true).
		Find(&reviews).Error
	return reviews, err
}

// ListRatingsByProductID lists the active ratings of a product
func (r *reviewRepository) ListRatingsByProductID(ctx context.Context, productID uint) ([]*models.Rating, error) {
	var ratings []*models.Rating
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_active = ?", productID, true).
		Find(&ratings).Error
	return ratings, err
}

// AverageGrade computes the average grade over a product's active ratings
func (r *reviewRepository) AverageGrade(ctx context.Context, productID uint) (float64, error) {
	var average float64
	err := averageGrade(r.db.WithContext(ctx), productID, &average)
	return average, err
}

// DeactivateByProductID soft deletes all ratings and reviews of a product
func (r *reviewRepository) DeactivateByProductID(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Rating{}).Where("product_id = ?", productID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Review{}).Where("product_id = ?", productID).
			Update("is_active", false).Error
	})
}

// averageGrade averages the active ratings of a product; 0 when none exist
func averageGrade(tx *gorm.DB, productID uint, out *float64) error {
	return tx.Model(&models.Rating{}).
		Where("product_id = ? AND is_active = ?", productID, true).
		Select("COALESCE(AVG(grade), 0)").
		Scan(out).Error
}
