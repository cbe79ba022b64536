package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/service/auth"
)

// StaticJWTService is an auth.JWTService that issues and accepts fixed values.
// The zero value issues "token-<user id>" and rejects every token.
type StaticJWTService struct {
	// Token, when set, is issued to every user.
	Token string
	// Claims is returned for any non-empty token; nil rejects all tokens.
	Claims *auth.Claims
	// Err fails both operations.
	Err error

	mu     sync.Mutex
	issued []uuid.UUID
}

var _ auth.JWTService = (*StaticJWTService)(nil)

// GenerateToken implements auth.JWTService.
func (s *StaticJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.mu.Lock()
	s.issued = append(s.issued, userID)
	s.mu.Unlock()

	if s.Token != "" {
		return s.Token, nil
	}
	return "token-" + userID.String(), nil
}

// ValidateToken implements auth.JWTService.
func (s *StaticJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if tokenString == "" || s.Claims == nil {
		return nil, auth.ErrInvalidToken
	}
	claims := *s.Claims
	return &claims, nil
}

// Issued returns the user IDs tokens were generated for, in order.
func (s *StaticJWTService) Issued() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.issued...)
}
