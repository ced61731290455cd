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

// Product service errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
)

// ProductService handles product business logic
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput represents create/update product input
type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url" validate:"max=255"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  uint    `json:"category_id" validate:"required"`
}

// ListProducts lists active products with stock on hand
func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.ListAvailable(ctx)
}

// GetProduct gets a product by slug
func (s *ProductService) GetProduct(ctx context.Context, productSlug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// ListByCategory lists in-stock products of a category and its direct
// child categories.
func (s *ProductService) ListByCategory(ctx context.Context, categorySlug string) ([]*models.Product, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	children, err := s.categoryRepo.ListChildren(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(children)+1)
	ids = append(ids, category.ID)
	for _, child := range children {
		ids = append(ids, child.ID)
	}

	return s.productRepo.ListByCategoryIDs(ctx, ids)
}

// CreateProduct creates a new product with a slug derived from its name.
// New products start with a zero rating.
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		Rating:      0,
		CategoryID:  input.CategoryID,
		IsActive:    true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProductExists
		}
		return nil, err
	}

	log.Printf("✅ Product created: %s (%s)", product.Name, product.Slug)

	return product, nil
}

// UpdateProduct updates a product found by slug. The slug itself is kept
// stable so existing links keep working.
func (s *ProductService) UpdateProduct(ctx context.Context, productSlug string, input *ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct soft deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, productSlug string) error {
	if _, err := s.productRepo.GetBySlug(ctx, productSlug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	return s.productRepo.Deactivate(ctx, productSlug)
}
