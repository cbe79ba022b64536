package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/validation"
)

// getUserIDFromContext returns the identity the auth middleware resolved.
// It is false when the handler is mounted outside the authenticated group.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	return shared.UserIDFromContext(r.Context())
}

// handleUserIDAndTaskID extracts the caller and the {id} path parameter,
// writing the error response itself when either is unusable.
func (h *TaskHandler) handleUserIDAndTaskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		h.errors.Handle(w, r, domain.ErrUnauthenticated)
		return uuid.Nil, uuid.Nil, false
	}

	taskID, err := validation.ParseTaskID(chi.URLParam(r, "id"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, taskID, true
}
