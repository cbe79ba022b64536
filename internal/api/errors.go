package api

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Unknown errors are server errors.
//
// Unauthenticated is checked before validation and not-found: the identity resolver wraps store
// not-found and malformed-ID causes inside it, and those must stay 401.
func MapErrorToStatusCode(err error) int {
	var maxBytes *http.MaxBytesError
	var validation *domain.ValidationError

	switch {
	case err == nil:
		return http.StatusInternalServerError

	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.As(err, &validation),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Duplicates are a client input problem, not a conflict.
	case store.IsDuplicateError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message a client may see for err.
// Validation errors carry their own client-safe text; everything else maps
// to a fixed string so internal details never leak.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return shared.MsgInternal
	}

	var maxBytes *http.MaxBytesError
	var validation *domain.ValidationError

	switch {
	case errors.As(err, &maxBytes):
		return shared.MsgTooLarge

	case errors.Is(err, domain.ErrUnauthenticated):
		return shared.MsgUnauthenticated
	case errors.Is(err, service.ErrInvalidCredentials):
		return shared.MsgInvalidCredentials

	case errors.As(err, &validation):
		return validation.Error()
	case errors.Is(err, domain.ErrInvalidID):
		return shared.MsgInvalidTaskID
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return shared.MsgInvalidInput

	case errors.Is(err, service.ErrNotOwned):
		return shared.MsgForbidden

	case errors.Is(err, store.ErrTaskNotFound):
		return shared.MsgTaskNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return shared.MsgUserNotFound
	case store.IsNotFoundError(err):
		return shared.MsgNotFound

	case errors.Is(err, store.ErrEmailExists):
		return shared.MsgEmailExists
	case store.IsDuplicateError(err):
		return shared.MsgDuplicate

	default:
		return shared.MsgInternal
	}
}

// ErrorHandler writes normalized error responses.
type ErrorHandler struct {
	exposeStack bool
}

// NewErrorHandler returns an ErrorHandler. With exposeStack set, responses
// carry the raw error chain and goroutine stack; use only in development.
func NewErrorHandler(exposeStack bool) ErrorHandler {
	return ErrorHandler{exposeStack: exposeStack}
}

// Handle maps err to a status and safe message, logs the redacted cause and
// writes the response.
func (h ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	var opts []shared.ResponseOption
	if status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	if h.exposeStack && err != nil {
		opts = append(opts, shared.WithStack(err.Error()+"\n"+string(debug.Stack())))
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}

// HandleAPIError writes a normalized error response without diagnostics.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	ErrorHandler{}.Handle(w, r, err)
}
