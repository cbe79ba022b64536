package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/metrics"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/validation"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	users  service.UserService
	errors ErrorHandler
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users service.UserService, errs ErrorHandler) *AuthHandler {
	return &AuthHandler{users: users, errors: errs}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	reg, err := validation.DecodeRegistration(r.Body)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	result, err := h.users.Register(r.Context(), reg)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   result.Token,
		User:    userToResponse(result.User),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := validation.DecodeCredentials(r.Body)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	result, err := h.users.Login(r.Context(), creds)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.IncrementAuthFailure("login")
		}
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    userToResponse(result.User),
	})
}
