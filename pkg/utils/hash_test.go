package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
	assert.False(t, CheckPasswordHash("secret123", "not-a-hash"))
}

func TestGenerateVerificationToken(t *testing.T) {
	token, tokenHash, err := GenerateVerificationToken()
	require.NoError(t, err)

	assert.Len(t, token, 64)
	assert.Len(t, tokenHash, 64)
	assert.NotEqual(t, token, tokenHash)
	assert.Equal(t, tokenHash, HashToken(token))

	other, _, err := GenerateVerificationToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
