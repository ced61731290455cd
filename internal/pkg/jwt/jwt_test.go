package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42, "alice", false, true, false, testSecret, 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := DecodeAccessToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, uint(42), claims.UserID)
	assert.False(t, claims.IsAdmin)
	assert.True(t, claims.IsSupplier)
	assert.False(t, claims.IsCustomer)
	assert.NotEmpty(t, claims.ID)

	// expiry == issued-at + ttl
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, claims.IssuedAt.Add(30*time.Minute), claims.ExpiresAt.Time)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "alice", true, false, false, "secret-one", 30*time.Minute)
	require.NoError(t, err)

	_, err = DecodeAccessToken(token, "secret-two")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsWrongSigningMethod(t *testing.T) {
	// "none" algorithm must never be accepted
	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{
		UserID: 1,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject: "alice",
		},
	})
	signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = DecodeAccessToken(signed, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsMissingIdentityClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
	}{
		{
			"no subject",
			Claims{UserID: 7},
		},
		{
			"no user id",
			Claims{RegisteredClaims: gojwt.RegisteredClaims{Subject: "alice"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, tt.claims)
			signed, err := token.SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = DecodeAccessToken(signed, testSecret)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

func TestDecodeDoesNotEnforceExpiry(t *testing.T) {
	// Expiry enforcement belongs to the authorization guard; the codec must
	// still decode an expired token.
	token, err := GenerateAccessToken(1, "alice", false, false, true, testSecret, -1*time.Minute)
	require.NoError(t, err)

	claims, err := DecodeAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))
}

func TestDecodeTokenWithoutExpiry(t *testing.T) {
	// A token missing the exp claim decodes fine; the caller decides what a
	// structurally incomplete token means.
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{
		UserID: 3,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject: "bob",
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := DecodeAccessToken(signed, testSecret)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}
