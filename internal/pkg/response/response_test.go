package response

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, handler fiber.Handler) (int, Envelope) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp.StatusCode, envelope
}

func TestSuccessEnvelope(t *testing.T) {
	status, envelope := serve(t, func(c *fiber.Ctx) error {
		return Success(c, "done", UserPayload{User: "alice"})
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, envelope.Success)
	assert.Equal(t, "done", envelope.Message)
	assert.Nil(t, envelope.Error)
	assert.Equal(t, map[string]interface{}{"user": "alice"}, envelope.Data)
}

func TestCreatedEnvelope(t *testing.T) {
	status, envelope := serve(t, func(c *fiber.Ctx) error {
		return Created(c, "made", nil)
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, envelope.Success)
}

func TestFailCarriesErrorKind(t *testing.T) {
	tests := []struct {
		name     string
		handler  fiber.Handler
		status   int
		kind     string
		message  string
	}{
		{"bad request", func(c *fiber.Ctx) error { return BadRequest(c, "bad body") },
			fiber.StatusBadRequest, "bad_request", "bad body"},
		{"unauthorized", func(c *fiber.Ctx) error { return Unauthorized(c, "no token") },
			fiber.StatusUnauthorized, "unauthorized", "no token"},
		{"forbidden", func(c *fiber.Ctx) error { return Forbidden(c, "expired") },
			fiber.StatusForbidden, "forbidden", "expired"},
		{"not found", func(c *fiber.Ctx) error { return NotFound(c, "missing") },
			fiber.StatusNotFound, "not_found", "missing"},
		{"conflict", func(c *fiber.Ctx) error { return Conflict(c, "taken") },
			fiber.StatusConflict, "conflict", "taken"},
		{"internal", func(c *fiber.Ctx) error { return InternalServerError(c, "boom") },
			fiber.StatusInternalServerError, "internal", "boom"},
		{"rate limited", func(c *fiber.Ctx) error { return Fail(c, fiber.StatusTooManyRequests, "slow down") },
			fiber.StatusTooManyRequests, "rate_limited", "slow down"},
		{"unmapped status", func(c *fiber.Ctx) error { return Fail(c, fiber.StatusTeapot, "odd") },
			fiber.StatusTeapot, "error", "odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := serve(t, tt.handler)
			assert.Equal(t, tt.status, status)
			assert.False(t, envelope.Success)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.kind, envelope.Error.Kind)
			assert.Equal(t, tt.message, envelope.Error.Message)
			assert.Nil(t, envelope.Data)
		})
	}
}
