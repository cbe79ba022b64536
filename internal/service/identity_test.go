package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/mocks"
	"github.com/phrazzld/tasks-api/internal/platform/memstore"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/phrazzld/tasks-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func TestIdentityResolver_Resolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := memstore.NewUserStore(nil)
	user := testutils.MustNewUser(t)
	require.NoError(t, users.Create(ctx, user))

	now := time.Now()
	tokens := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })
	resolver := service.NewIdentityResolver(tokens, users, nil)

	validToken, err := tokens.GenerateToken(ctx, user.ID)
	require.NoError(t, err)
	unknownToken, err := tokens.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)
	expired, err := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time {
		return now.Add(-2 * time.Hour)
	}).GenerateToken(ctx, user.ID)
	require.NoError(t, err)
	foreign, err := auth.NewTestJWTService("another-secret-that-is-long-enough-too", time.Hour, nil).
		GenerateToken(ctx, user.ID)
	require.NoError(t, err)

	t.Run("valid token resolves to account", func(t *testing.T) {
		got, err := resolver.Resolve(ctx, "Bearer "+validToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got)
	})

	rejected := map[string]string{
		"missing header":   "",
		"wrong scheme":     "Basic " + validToken,
		"no token":         "Bearer   ",
		"garbage token":    "Bearer not-a-token",
		"expired token":    "Bearer " + expired,
		"foreign secret":   "Bearer " + foreign,
		"deleted account":  "Bearer " + unknownToken,
		"token only":       validToken,
		"duplicate scheme": "Bearer Bearer " + validToken,
	}
	for name, header := range rejected {
		t.Run(name, func(t *testing.T) {
			got, err := resolver.Resolve(ctx, header)
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}

func TestIdentityResolver_MalformedSubject(t *testing.T) {
	t.Parallel()

	tokens := &mocks.StaticJWTService{Claims: &auth.Claims{Subject: "not-a-uuid"}}
	users := new(mocks.UserStore)
	resolver := service.NewIdentityResolver(tokens, users, nil)

	_, err := resolver.Resolve(context.Background(), "Bearer abc")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestIdentityResolver_StoreFailure(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tokens := &mocks.StaticJWTService{Claims: &auth.Claims{Subject: userID.String()}}
	users := new(mocks.UserStore)
	dbErr := errors.New("connection refused")
	users.On("GetByID", mock.Anything, userID).Return(nil, dbErr)

	resolver := service.NewIdentityResolver(tokens, users, nil)
	_, err := resolver.Resolve(context.Background(), "Bearer abc")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrUnauthenticated)
	users.AssertExpectations(t)
}
