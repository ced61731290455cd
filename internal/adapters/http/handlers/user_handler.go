package handlers

import (
	"errors"
	"strconv"

	"gomarket/internal/core/services"
	"gomarket/internal/pkg/pagination"
	"gomarket/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles listing all users (Admin only)
// @Summary List all users
// @Description Get a paginated list of all users (Admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page, err := h.userService.ListUsers(c.Context(), pagination.FromQuery(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully", page)
}

// ToggleSupplier handles granting or revoking supplier status (Admin only)
// @Summary Toggle supplier status
// @Description Flip a user's supplier flag; the customer flag is set to its inverse
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id}/supplier [patch]
func (h *UserHandler) ToggleSupplier(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, message, err := h.userService.ToggleSupplier(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update supplier status")
	}

	return response.Success(c, message, response.UserPayload{User: user})
}

// DeleteUser handles deactivating or reactivating a user (Admin only)
// @Summary Delete (deactivate) user
// @Description Deactivate an active user or reactivate a deactivated one. Admin accounts cannot be deleted.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, message, err := h.userService.ToggleActive(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrCannotDeleteAdmin):
			return response.Unauthorized(c, "You can't delete admin user")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, message, response.UserPayload{User: user})
}
