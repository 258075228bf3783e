package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
}

func TestCompareHashAndPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	require.True(t, CompareHashAndPassword(hash, "pw123"))
	require.False(t, CompareHashAndPassword(hash, "pw124"))
	require.False(t, CompareHashAndPassword("not-a-hash", "pw123"))
}
