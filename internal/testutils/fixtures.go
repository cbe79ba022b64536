package testutils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext password used by user fixtures.
const TestPassword = "secret123"

// MustNewUser builds a valid user with a unique email and a placeholder hash.
func MustNewUser(t *testing.T) *domain.User {
	t.Helper()

	user, err := domain.NewUser(domain.Registration{
		Name:     "Test User",
		Email:    "user-" + uuid.NewString() + "@example.com",
		Password: TestPassword,
	})
	require.NoError(t, err)
	user.HashedPassword = "$2a$04$placeholderhashplaceholderhashplaceholderha"
	user.Password = ""
	return user
}

// MustNewTask builds a valid task for owner created at the given time.
func MustNewTask(t *testing.T, owner uuid.UUID, draft domain.TaskDraft, created time.Time) *domain.Task {
	t.Helper()

	if draft.Title == "" {
		draft.Title = "Test task"
	}
	task, err := domain.NewTask(owner, draft, created)
	require.NoError(t, err)
	return task
}
