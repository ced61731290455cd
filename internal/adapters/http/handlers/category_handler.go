package handlers

import (
	"errors"
	"strconv"

	"gomarket/internal/core/services"
	"gomarket/internal/pkg/response"
	"gomarket/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories handles listing all active categories
// @Summary List categories
// @Description Get all active categories
// @Tags Categories
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.ListCategories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list categories")
	}

	return response.Success(c, "Categories retrieved successfully", response.CategoriesPayload{Categories: categories})
}

// CreateCategory handles creating a category (Admin only)
// @Summary Create category
// @Description Create a new category (Admin only)
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CategoryInput true "Category data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req services.CategoryInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	category, err := h.categoryService.CreateCategory(c.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			return response.Conflict(c, "Category already exists")
		}
		return response.InternalServerError(c, "Failed to create category")
	}

	return response.Created(c, "Category created successfully", response.CategoryPayload{Category: category})
}

// UpdateCategory handles updating a category (Admin only)
// @Summary Update category
// @Description Update a category's name and parent (Admin only)
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param body body services.CategoryInput true "Category data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid category ID")
	}

	var req services.CategoryInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	category, err := h.categoryService.UpdateCategory(c.Context(), uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			return response.NotFound(c, "There is no category found")
		case errors.Is(err, services.ErrCategoryExists):
			return response.Conflict(c, "Category already exists")
		default:
			return response.InternalServerError(c, "Failed to update category")
		}
	}

	return response.Success(c, "Category update is successful", response.CategoryPayload{Category: category})
}

// DeleteCategory handles soft deleting a category (Admin only)
// @Summary Delete category
// @Description Soft delete a category (Admin only)
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid category ID")
	}

	if err := h.categoryService.DeleteCategory(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return response.NotFound(c, "There is no category found")
		}
		return response.InternalServerError(c, "Failed to delete category")
	}

	return response.Success(c, "Category delete is successful", nil)
}
