package middleware

import (
	"strings"
	"time"

	"gomarket/internal/config"
	"gomarket/internal/pkg/jwt"
	"gomarket/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware
const (
	LocalsClaims = "claims"
)

// AuthMiddleware decodes and validates the bearer token and stores the claim
// set in the request context. The claims are used exactly as encoded at
// issuance; role flags are never re-read from the store during a request.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.DecodeAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			// Bad signature and missing identity claims are deliberately
			// indistinguishable to the caller.
			return response.Unauthorized(c, "Could not validate user")
		}

		// A token without an expiry claim is structurally incomplete rather
		// than merely invalid.
		if claims.ExpiresAt == nil {
			return response.BadRequest(c, "No access token supplied")
		}

		if !time.Now().Before(claims.ExpiresAt.Time) {
			return response.Forbidden(c, "Token expired")
		}

		c.Locals(LocalsClaims, claims)

		return c.Next()
	}
}

// Predicate evaluates the role flags of a claim set
type Predicate func(claims *jwt.Claims) bool

// Named role predicates
var (
	AdminOnly       = func(claims *jwt.Claims) bool { return claims.IsAdmin }
	AdminOrSupplier = func(claims *jwt.Claims) bool { return claims.IsAdmin || claims.IsSupplier }
	CustomerOnly    = func(claims *jwt.Claims) bool { return claims.IsCustomer }
)

// routePredicates maps each guarded operation to the role predicate it
// requires. There is no role hierarchy; every operation names its own boolean
// combination of the three flags.
var routePredicates = map[string]Predicate{
	"category:create": AdminOnly,
	"category:update": AdminOnly,
	"category:delete": AdminOnly,
	"product:create":  AdminOrSupplier,
	"product:update":  AdminOrSupplier,
	"product:delete":  AdminOrSupplier,
	"review:create":   CustomerOnly,
	"review:delete":   AdminOnly,
	"user:list":       AdminOnly,
	"user:supplier":   AdminOnly,
	"user:delete":     AdminOnly,
}

// Require returns a middleware enforcing the predicate registered for the
// operation. Must run after AuthMiddleware.
func Require(operation string) fiber.Handler {
	predicate, ok := routePredicates[operation]
	if !ok {
		panic("middleware: no role predicate registered for operation " + operation)
	}

	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(LocalsClaims).(*jwt.Claims)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if !predicate(claims) {
			return response.Unauthorized(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// ClaimsFromContext returns the claim set stored by AuthMiddleware
func ClaimsFromContext(c *fiber.Ctx) (*jwt.Claims, bool) {
	claims, ok := c.Locals(LocalsClaims).(*jwt.Claims)
	return claims, ok
}
