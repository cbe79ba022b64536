package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/phrazzld/tasks-api/internal/store"
)

// IdentityResolver turns an Authorization header into the ID of a live account.
type IdentityResolver struct {
	tokens auth.JWTService
	users  store.UserStore
	logger *slog.Logger
}

// NewIdentityResolver creates a resolver. It panics if a dependency is nil.
func NewIdentityResolver(tokens auth.JWTService, users store.UserStore, logger *slog.Logger) *IdentityResolver {
	if tokens == nil {
		panic("tokens cannot be nil")
	}
	if users == nil {
		panic("users cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityResolver{
		tokens: tokens,
		users:  users,
		logger: logger.With(slog.String("component", "identity_resolver")),
	}
}

// Resolve verifies the bearer credential in header and confirms the account
// it names still exists.
//
// Every client-side failure (missing header, wrong scheme, bad signature,
// expired token, malformed or unknown subject) wraps domain.ErrUnauthenticated.
// Only store failures other than not-found are returned unwrapped.
func (r *IdentityResolver) Resolve(ctx context.Context, header string) (uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	token, err := auth.ExtractBearerToken(header)
	if err != nil {
		log.Debug("rejecting request credential", slog.String("reason", err.Error()))
		return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	claims, err := r.tokens.ValidateToken(ctx, token)
	if err != nil {
		log.Debug("rejecting request credential", slog.String("reason", err.Error()))
		return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		log.Debug("rejecting request credential", slog.String("reason", "malformed subject"))
		return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, domain.ErrInvalidID)
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("rejecting request credential",
				slog.String("reason", "account not found"),
				slog.String("user_id", userID.String()))
			return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
		}
		log.Error("failed to resolve account",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return uuid.Nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	return user.ID, nil
}
