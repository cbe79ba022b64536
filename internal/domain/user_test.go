package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser(Registration{
		Name:     "  Ada Lovelace ",
		Email:    "  Ada@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "secret123", user.Password)
	assert.Empty(t, user.HashedPassword)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestNewUser_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reg     Registration
		wantErr error
	}{
		{"empty name", Registration{Name: "  ", Email: "a@b.com", Password: "secret123"}, ErrEmptyUserName},
		{"empty email", Registration{Name: "Ada", Email: "", Password: "secret123"}, ErrEmptyEmail},
		{"missing at", Registration{Name: "Ada", Email: "invalidemail", Password: "secret123"}, ErrInvalidEmail},
		{"trailing at", Registration{Name: "Ada", Email: "ada@", Password: "secret123"}, ErrInvalidEmail},
		{"empty password", Registration{Name: "Ada", Email: "a@b.com"}, ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.reg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	valid := User{
		ID:             uuid.New(),
		Name:           "Ada",
		Email:          "ada@example.com",
		HashedPassword: "$2a$10$hash",
	}
	require.NoError(t, valid.Validate())

	noID := valid
	noID.ID = uuid.Nil
	assert.ErrorIs(t, noID.Validate(), ErrEmptyUserID)

	noSecret := valid
	noSecret.HashedPassword = ""
	assert.ErrorIs(t, noSecret.Validate(), ErrEmptyPassword)
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user@example.com", NormalizeEmail(" User@Example.com\t"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "is required", nil)
	assert.Equal(t, "title is required", err.Error())
	assert.ErrorIs(t, err, ErrValidation)

	bare := NewValidationError("", "Invalid task ID format", ErrInvalidID)
	assert.Equal(t, "Invalid task ID format", bare.Error())
	assert.ErrorIs(t, bare, ErrInvalidID)
}
