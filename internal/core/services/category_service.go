package services

import (
	"context"
	"errors"
	"log"

	"gomarket/internal/adapters/persistence/models"
	"gomarket/internal/adapters/persistence/repositories"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Category service errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryInput represents create/update category input
type CategoryInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	ParentID *uint  `json:"parent_id"`
}

// ListCategories lists all active categories
func (s *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.ListActive(ctx)
}

// CreateCategory creates a new category with a slug derived from its name
func (s *CategoryService) CreateCategory(ctx context.Context, input *CategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:     input.Name,
		Slug:     slug.Make(input.Name),
		ParentID: input.ParentID,
		IsActive: true,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	log.Printf("✅ Category created: %s (%s)", category.Name, category.Slug)

	return category, nil
}

// UpdateCategory updates a category's name, slug, and parent
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, input *CategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	category.Name = input.Name
	category.Slug = slug.Make(input.Name)
	category.ParentID = input.ParentID

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	return category, nil
}

// DeleteCategory soft deletes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	return s.categoryRepo.Deactivate(ctx, id)
}
