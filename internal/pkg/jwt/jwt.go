package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is missing required claims")
)

// Claims represents the access token claim set. Role flags are copied from
// the user record at issuance and are not re-read on later requests: a role
// change takes effect only after the outstanding token expires (window <= TTL).
type Claims struct {
	UserID     uint `json:"user_id"`
	IsAdmin    bool `json:"is_admin"`
	IsSupplier bool `json:"is_supplier"`
	IsCustomer bool `json:"is_customer"`
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a signed HS256 access token for the user.
// Expiry is issued-at + ttl.
func GenerateAccessToken(userID uint, username string, isAdmin, isSupplier, isCustomer bool, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     userID,
		IsAdmin:    isAdmin,
		IsSupplier: isSupplier,
		IsCustomer: isCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Issuer:    "gomarket",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// DecodeAccessToken verifies the token signature and parses the claim set.
// It rejects a bad MAC or a wrong signing method with ErrTokenInvalid and a
// claim set without subject or user id with ErrTokenMalformed. It does NOT
// reject expired tokens: expiry enforcement is the caller's responsibility,
// keeping the codec a pure format layer.
func DecodeAccessToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	}, jwt.WithoutClaimsValidation())

	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
