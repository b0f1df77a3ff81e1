package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	tok, err := tm.Issue("testuser", "68b1c2d3e4f5a6b7c8d9e0f1")
	require.NoError(t, err)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "testuser", claims.Username)
	require.Equal(t, "68b1c2d3e4f5a6b7c8d9e0f1", claims.UserID)
}

func TestParseExpired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", -time.Second)

	tok, err := tm.Issue("testuser", "u1")
	require.NoError(t, err)

	_, err = tm.Parse(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", time.Hour).Issue("testuser", "u1")
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", time.Hour).Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("secret", time.Hour).Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
