package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// UserResponse is the public view of an account. It never carries credentials.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// TaskResponse is the JSON shape of a task. LegacyID mirrors ID for clients
// written against document-store style identifiers.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	LegacyID    uuid.UUID  `json:"_id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskListResponse is one page of tasks plus pagination metadata.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Pages int            `json:"pages"`
}

// TaskStatsResponse summarizes a user's tasks.
type TaskStatsResponse struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
	Overdue    int            `json:"overdue"`
}

// DeleteTaskResponse confirms a deletion.
type DeleteTaskResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		LegacyID:    t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func pageToResponse(p *domain.TaskPage) TaskListResponse {
	tasks := make([]TaskResponse, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, taskToResponse(t))
	}
	return TaskListResponse{
		Tasks: tasks,
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: p.Pages,
	}
}

func statsToResponse(s *domain.TaskStats) TaskStatsResponse {
	resp := TaskStatsResponse{
		Total:      s.Total,
		ByStatus:   make(map[string]int, len(s.ByStatus)),
		ByPriority: make(map[string]int, len(s.ByPriority)),
		Overdue:    s.Overdue,
	}
	for k, v := range s.ByStatus {
		resp.ByStatus[string(k)] = v
	}
	for k, v := range s.ByPriority {
		resp.ByPriority[string(k)] = v
	}
	return resp
}
