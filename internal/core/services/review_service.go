package services

import (
	"context"
	"errors"
	"log"

	"gomarket/internal/adapters/persistence/models"
	"gomarket/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// ReviewService handles review and rating business logic
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new review service
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	productRepo repositories.ProductRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// CreateReviewInput represents create review input
type CreateReviewInput struct {
	ProductSlug string `json:"product_slug" validate:"required"`
	Grade       int    `json:"grade" validate:"required,gte=1,lte=5"`
	Comment     string `json:"comment" validate:"required"`
}

// ProductReviews bundles the reviews and ratings of a product
type ProductReviews struct {
	Reviews []*models.Review `json:"reviews"`
	Ratings []*models.Rating `json:"ratings"`
}

// ListReviews lists all active reviews
func (s *ReviewService) ListReviews(ctx context.Context) ([]*models.Review, error) {
	return s.reviewRepo.ListActive(ctx)
}

// CreateReview records a customer's rating and review for a product and
// recomputes the product's stored average grade, all in one transaction.
func (s *ReviewService) CreateReview(ctx context.Context, userID uint, input *CreateReviewInput) (*models.Review, error) {
	product, err := s.productRepo.GetBySlug(ctx, input.ProductSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	rating := &models.Rating{
		Grade:     input.Grade,
		UserID:    userID,
		ProductID: product.ID,
		IsActive:  true,
	}

	review := &models.Review{
		UserID:    userID,
		ProductID: product.ID,
		Comment:   input.Comment,
		IsActive:  true,
	}

	average, err := s.reviewRepo.CreateWithRating(ctx, review, rating)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Review created: product=%s grade=%d avg=%.2f", product.Slug, rating.Grade, average)

	return review, nil
}

// GetProductReviews returns the active reviews and ratings of a product
func (s *ReviewService) GetProductReviews(ctx context.Context, productSlug string) (*ProductReviews, error) {
	product, err := s.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.reviewRepo.ListRatingsByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	return &ProductReviews{
		Reviews: reviews,
		Ratings: ratings,
	}, nil
}

// DeleteProductReviews soft deletes all reviews and ratings of a product
// and refreshes the product's stored average.
func (s *ReviewService) DeleteProductReviews(ctx context.Context, productSlug string) error {
	product, err := s.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.reviewRepo.DeactivateByProductID(ctx, product.ID); err != nil {
		return err
	}

	average, err := s.reviewRepo.AverageGrade(ctx, product.ID)
	if err != nil {
		return err
	}

	return s.productRepo.UpdateRating(ctx, product.ID, average)
}
