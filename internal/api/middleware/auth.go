package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/metrics"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

// IdentityResolver turns an Authorization header into the caller's account ID.
type IdentityResolver interface {
	Resolve(ctx context.Context, header string) (uuid.UUID, error)
}

// AuthMiddleware provides bearer authentication for routes.
type AuthMiddleware struct {
	resolver IdentityResolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(resolver IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate resolves the caller from the Authorization header and adds the
// account ID to the request context. Every credential failure gets the same
// 401 response.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.resolver.Resolve(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				metrics.IncrementAuthFailure("token")
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, shared.MsgUnauthenticated, err)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MsgInternal, err)
			return
		}

		ctx := shared.WithUserID(r.Context(), userID)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With("user_id", userID.String()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated account ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	return shared.UserIDFromContext(r.Context())
}
