package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUploadToken(t *testing.T) {
	token, err := GenerateUploadToken()
	require.NoError(t, err)
	assert.Len(t, token, UploadTokenLength)
}

func TestGenerateUploadTokenUnique(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for range 10000 {
		token, err := GenerateUploadToken()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "duplicate token generated: %s", token)
		seen[token] = struct{}{}
	}
}

func TestGenerateNChar(t *testing.T) {
	for _, n := range []int{1, 8, 43, 64} {
		id, err := GenerateNChar(n)
		require.NoError(t, err)
		assert.Len(t, id, n)
	}
}
