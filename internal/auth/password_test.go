package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("dummy")
	require.NoError(t, err)
	require.NotEqual(t, "dummy", hash)

	require.NoError(t, VerifyPassword("dummy", hash))
	require.Error(t, VerifyPassword("wrong", hash))
}
