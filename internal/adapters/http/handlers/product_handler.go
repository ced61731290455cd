package handlers

import (
	"errors"

	"gomarket/internal/core/services"
	"gomarket/internal/pkg/response"
	"gomarket/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts handles listing available products
// @Summary List products
// @Description Get all active products with stock on hand
// @Tags Products
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.productService.ListProducts(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list products")
	}

	return response.Success(c, "Products retrieved successfully", response.ProductsPayload{Products: products})
}

// GetProduct handles getting a product by slug
// @Summary Product detail
// @Description Get a product by slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /products/{slug} [get]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.productService.GetProduct(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return response.NotFound(c, "There is no product")
		}
		return response.InternalServerError(c, "Failed to get product")
	}

	return response.Success(c, "Product retrieved successfully", response.ProductPayload{Product: product})
}

// ListByCategory handles listing products of a category and its children
// @Summary Products by category
// @Description Get in-stock products of a category and its direct child categories
// @Tags Products
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /products/category/{slug} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	products, err := h.productService.ListByCategory(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return response.NotFound(c, "Category not found")
		}
		return response.InternalServerError(c, "Failed to list products")
	}

	return response.Success(c, "Products retrieved successfully", response.ProductsPayload{Products: products})
}

// CreateProduct handles creating a product (Admin or Supplier)
// @Summary Create product
// @Description Create a new product (Admin or Supplier)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ProductInput true "Product data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req services.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	product, err := h.productService.CreateProduct(c.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrProductExists) {
			return response.Conflict(c, "Product already exists")
		}
		return response.InternalServerError(c, "Failed to create product")
	}

	return response.Created(c, "Product created successfully", response.ProductPayload{Product: product})
}

// UpdateProduct handles updating a product (Admin or Supplier)
// @Summary Update product
// @Description Update a product found by slug (Admin or Supplier)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Param body body services.ProductInput true "Product data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /products/{slug} [put]
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var req services.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	product, err := h.productService.UpdateProduct(c.Context(), c.Params("slug"), &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return response.NotFound(c, "There is no product")
		}
		return response.InternalServerError(c, "Failed to update product")
	}

	return response.Success(c, "Product update is successful", response.ProductPayload{Product: product})
}

// DeleteProduct handles soft deleting a product (Admin or Supplier)
// @Summary Delete product
// @Description Soft delete a product found by slug (Admin or Supplier)
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Product slug"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /products/{slug} [delete]
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(c.Context(), c.Params("slug")); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return response.NotFound(c, "There is no product")
		}
		return response.InternalServerError(c, "Failed to delete product")
	}

	return response.Success(c, "Product delete is successful", nil)
}
