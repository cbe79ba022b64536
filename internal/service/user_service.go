package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/phrazzld/tasks-api/internal/store"
)

// AuthResult is returned by a successful registration or login.
type AuthResult struct {
	User  *domain.User
	Token string
}

// UserService provides account registration and login.
type UserService interface {
	// Register creates an account and issues a token for it.
	// Returns store.ErrEmailExists if the email is already registered.
	Register(ctx context.Context, reg domain.Registration) (*AuthResult, error)

	// Login checks credentials and issues a token.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password.
	Login(ctx context.Context, creds domain.Credentials) (*AuthResult, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.JWTService
	logger *slog.Logger

	// dummyHash is compared against when the email is unknown so that both
	// login failures cost one hash comparison.
	dummyHash string
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	logger *slog.Logger,
) (UserService, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if tokens == nil {
		return nil, domain.NewValidationError("tokens", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	dummyHash, err := hasher.Hash("login-timing-equalizer")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hasher: %w", err)
	}

	return &userServiceImpl{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger.With(slog.String("component", "user_service")),
		dummyHash: dummyHash,
	}, nil
}

// Register implements UserService.Register
func (s *userServiceImpl) Register(ctx context.Context, reg domain.Registration) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(reg)
	if err != nil {
		return nil, domain.NewValidationError("", err.Error(), err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	// Uniqueness is enforced by the store, not by a lookup here.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration rejected: email already registered")
		} else {
			log.Error("failed to save user", slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue token for new user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return &AuthResult{User: user, Token: token}, nil
}

// Login implements UserService.Login
func (s *userServiceImpl) Login(ctx context.Context, creds domain.Credentials) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(creds.Email))
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to look up user for login", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to log in: %w", err)
		}
		_ = s.hasher.Compare(s.dummyHash, creds.Password)
		log.Debug("login rejected: unknown email")
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.HashedPassword, creds.Password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			log.Error("failed to compare password hash",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
		}
		log.Debug("login rejected: wrong password", slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue token",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return &AuthResult{User: user, Token: token}, nil
}
