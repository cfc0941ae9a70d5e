package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureToken(t *testing.T) {
	t.Parallel()

	first, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// base64url without padding: 32 bytes encode to 43 characters.
	assert.Len(t, first, 43)
	assert.NotContains(t, first, "+")
	assert.NotContains(t, first, "/")
	assert.NotContains(t, first, "=")
}

func TestGenerateSecureTokenDefaultsLength(t *testing.T) {
	t.Parallel()

	token, err := GenerateSecureToken(0)
	require.NoError(t, err)
	assert.Len(t, token, 43)
}
