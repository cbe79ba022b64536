package api

import (
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/metrics"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/validation"
)

// TaskHandler serves the /api/tasks endpoints. Every route expects the auth
// middleware to have resolved the caller.
type TaskHandler struct {
	tasks  service.TaskService
	errors ErrorHandler
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(tasks service.TaskService, errs ErrorHandler) *TaskHandler {
	return &TaskHandler{tasks: tasks, errors: errs}
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		h.errors.Handle(w, r, domain.ErrUnauthenticated)
		return
	}

	query, err := validation.ParseTaskQuery(r.URL.Query())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	page, err := h.tasks.List(r.Context(), userID, query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(page))
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := h.handleUserIDAndTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.Get(r.Context(), userID, taskID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		h.errors.Handle(w, r, domain.ErrUnauthenticated)
		return
	}

	draft, err := validation.DecodeTaskCreate(r.Body)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	task, err := h.tasks.Create(r.Context(), userID, draft)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	metrics.IncrementTaskMutation("create")
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := h.handleUserIDAndTaskID(w, r)
	if !ok {
		return
	}

	patch, err := validation.DecodeTaskUpdate(r.Body)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	task, err := h.tasks.Update(r.Context(), userID, taskID, patch)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if !patch.IsEmpty() {
		metrics.IncrementTaskMutation("update")
	}
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := h.handleUserIDAndTaskID(w, r)
	if !ok {
		return
	}

	if err := h.tasks.Delete(r.Context(), userID, taskID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	metrics.IncrementTaskMutation("delete")
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Message: "Task deleted successfully",
		ID:      taskID,
	})
}

// Stats handles GET /api/tasks/stats/summary.
func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		h.errors.Handle(w, r, domain.ErrUnauthenticated)
		return
	}

	stats, err := h.tasks.Stats(r.Context(), userID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, statsToResponse(stats))
}
