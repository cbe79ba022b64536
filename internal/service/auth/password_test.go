package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.NoError(t, hasher.Compare(hash, "password123"))
	assert.ErrorIs(t, hasher.Compare(hash, "password124"), ErrPasswordMismatch)
	assert.Error(t, hasher.Compare("not-a-hash", "password123"))
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func TestBcryptHasher_LongPasswords(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	long := strings.Repeat("p", 128)

	hash, err := hasher.Hash(long)
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, long))

	// Differs only after byte 72, which plain bcrypt would ignore.
	assert.ErrorIs(t, hasher.Compare(hash, strings.Repeat("p", 127)+"q"), ErrPasswordMismatch)
}
