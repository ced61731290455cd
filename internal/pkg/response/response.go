package response

import "github.com/gofiber/fiber/v2"

// Envelope is the body of every JSON response the API emits. Data is set on
// success, Error on failure, never both.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail pairs a machine-readable kind with the human message, so
// clients can switch on the kind without parsing message text.
type ErrorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// errorKinds maps HTTP status codes to the kind strings clients see.
var errorKinds = map[int]string{
	fiber.StatusBadRequest:          "bad_request",
	fiber.StatusUnauthorized:        "unauthorized",
	fiber.StatusForbidden:           "forbidden",
	fiber.StatusNotFound:            "not_found",
	fiber.StatusConflict:            "conflict",
	fiber.StatusTooManyRequests:     "rate_limited",
	fiber.StatusInternalServerError: "internal",
}

// Payload shapes placed under "data". Every endpoint wraps its resource in a
// named field rather than returning it bare.

// UserPayload wraps a single user
type UserPayload struct {
	User interface{} `json:"user"`
}

// AuthPayload is the login response body
type AuthPayload struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        interface{} `json:"user"`
}

// TokenClaimsPayload echoes the identity encoded in a presented access token
type TokenClaimsPayload struct {
	Username   string `json:"username"`
	ID         uint   `json:"id"`
	IsAdmin    bool   `json:"is_admin"`
	IsSupplier bool   `json:"is_supplier"`
	IsCustomer bool   `json:"is_customer"`
}

// CategoryPayload wraps a single category
type CategoryPayload struct {
	Category interface{} `json:"category"`
}

// CategoriesPayload wraps a category listing
type CategoriesPayload struct {
	Categories interface{} `json:"categories"`
}

// ProductPayload wraps a single product
type ProductPayload struct {
	Product interface{} `json:"product"`
}

// ProductsPayload wraps a product listing
type ProductsPayload struct {
	Products interface{} `json:"products"`
}

// ReviewPayload wraps a single review
type ReviewPayload struct {
	Review interface{} `json:"review"`
}

// ReviewsPayload wraps a review listing
type ReviewsPayload struct {
	Reviews interface{} `json:"reviews"`
}

// Success sends a 200 response with the given payload
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 response with the given payload
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail sends an error response with the kind registered for the status
func Fail(c *fiber.Ctx, statusCode int, message string) error {
	kind, ok := errorKinds[statusCode]
	if !ok {
		kind = "error"
	}

	return c.Status(statusCode).JSON(Envelope{
		Success: false,
		Error: &ErrorDetail{
			Kind:    kind,
			Message: message,
		},
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusInternalServerError, message)
}
