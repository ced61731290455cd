package handlers

import (
	"errors"

	"gomarket/internal/adapters/http/middleware"
	"gomarket/internal/core/services"
	"gomarket/internal/pkg/response"
	"gomarket/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListReviews handles listing all active reviews
// @Summary List reviews
// @Description Get all active reviews
// @Tags Reviews
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.ListReviews(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list reviews")
	}

	return response.Success(c, "Reviews retrieved successfully", response.ReviewsPayload{Reviews: reviews})
}

// CreateReview handles posting a review (Customer only)
// @Summary Create review
// @Description Post a rating and review for a product; the product's average rating is recomputed (Customer only)
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateReviewInput true "Review data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.CreateReviewInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	review, err := h.reviewService.CreateReview(c.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return response.NotFound(c, "There is no product")
		}
		return response.InternalServerError(c, "Failed to create review")
	}

	return response.Created(c, "Review created successfully", response.ReviewPayload{Review: review})
}

// GetProductReviews handles listing the reviews and ratings of a product
// @Summary Product reviews
// @Description Get all reviews and ratings of a product
// @Tags Reviews
// @Produce json
// @Param product_slug path string true "Product slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /reviews/{product_slug} [get]
func (h *ReviewHandler) GetProductReviews(c *fiber.Ctx) error {
	result, err := h.reviewService.GetProductReviews(c.Context(), c.Params("product_slug"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return response.NotFound(c, "There is no product")
		}
		return response.InternalServerError(c, "Failed to get reviews")
	}

	return response.Success(c, "Reviews retrieved successfully", result)
}

// DeleteProductReviews handles soft deleting a product's reviews (Admin only)
// @Summary Delete product reviews
// @Description Soft delete all reviews and ratings of a product (Admin only)
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param product_slug path string true "Product slug"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /reviews/{product_slug} [delete]
func (h *ReviewHandler) DeleteProductReviews(c *fiber.Ctx) error {
	if err := h.reviewService.DeleteProductReviews(c.Context(), c.Params("product_slug")); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return response.NotFound(c, "There is no product")
		}
		return response.InternalServerError(c, "Failed to delete reviews")
	}

	return response.Success(c, "Review delete is successful", nil)
}
