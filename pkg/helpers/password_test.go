package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CompareHashAndPassword(hash, "secret1"))
	assert.False(t, CompareHashAndPassword(hash, "wrong"))
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, err := HashPassword("secret1")
	require.NoError(t, err)
	b, err := HashPassword("secret1")
	require.NoError(t, err)
	// Fresh random salt per call: identical plaintexts hash differently.
	assert.NotEqual(t, a, b)
	assert.True(t, CompareHashAndPassword(a, "secret1"))
	assert.True(t, CompareHashAndPassword(b, "secret1"))
}

func TestCompareHashAndPassword_MalformedHashFailsClosed(t *testing.T) {
	for _, corrupted := range []string{"", "plaintext", "$2a$corrupted", "0123456789"} {
		assert.False(t, CompareHashAndPassword(corrupted, "secret1"), "hash %q", corrupted)
	}
}
