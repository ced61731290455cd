package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "pw123456", hash)
	assert.True(t, Verify("pw123456", hash))
	assert.False(t, Verify("wrong-password", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("pw123456")
	require.NoError(t, err)
	second, err := Hash("pw123456")
	require.NoError(t, err)

	// Same plaintext, different salt, different hash
	assert.NotEqual(t, first, second)
	assert.True(t, Verify("pw123456", first))
	assert.True(t, Verify("pw123456", second))
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	_, err := Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestHashRejectsOversizedPassword(t *testing.T) {
	long := make([]byte, MaxLength+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := Hash(string(long))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestVerifyMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"garbage", "not-a-bcrypt-hash"},
		{"truncated", "$2a$12$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Verify("pw123456", tt.hash))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.False(t, ValidatePassword("short"))
	assert.True(t, ValidatePassword("longenough"))
}
