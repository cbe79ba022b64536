package domain

import (
	"math"

	"github.com/google/uuid"
)

// Pagination defaults for task listings.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SortField is a key tasks can be ordered by.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByDueDate   SortField = "dueDate"
	SortByPriority  SortField = "priority"
)

// IsValid reports whether f is one of the allowed sort keys.
func (f SortField) IsValid() bool {
	switch f {
	case SortByCreatedAt, SortByUpdatedAt, SortByDueDate, SortByPriority:
		return true
	}
	return false
}

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid reports whether o is asc or desc.
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// TaskQuery describes one list operation: filters, ordering and the page window.
//
// The owner scope is unexported and can only be attached with ScopedTo, so a
// query built from client input never carries an owner of its own.
type TaskQuery struct {
	ownerID uuid.UUID

	Status    *TaskStatus
	Priority  *TaskPriority
	Search    string
	SortBy    SortField
	SortOrder SortOrder
	Page      int
	Limit     int
}

// NewTaskQuery returns an unscoped query with default ordering and paging.
func NewTaskQuery() TaskQuery {
	return TaskQuery{
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
		Page:      DefaultPage,
		Limit:     DefaultPageSize,
	}
}

// ScopedTo returns a copy of q restricted to tasks owned by owner.
func (q TaskQuery) ScopedTo(owner uuid.UUID) TaskQuery {
	q.ownerID = owner
	return q
}

// Owner returns the mandatory owner scope; uuid.Nil means the query is unscoped.
func (q TaskQuery) Owner() uuid.UUID {
	return q.ownerID
}

// Offset is the number of matching tasks skipped before the current page.
// It saturates at math.MaxInt instead of overflowing for very large pages.
func (q TaskQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// Validate checks that the query can be executed safely.
func (q TaskQuery) Validate() error {
	switch {
	case q.ownerID == uuid.Nil:
		return ErrTaskOwnerEmpty
	case q.Status != nil && !q.Status.IsValid():
		return ErrInvalidTaskStatus
	case q.Priority != nil && !q.Priority.IsValid():
		return ErrInvalidTaskPriority
	case !q.SortBy.IsValid():
		return NewValidationError("sortBy", "must be one of [createdAt, updatedAt, dueDate, priority]", nil)
	case !q.SortOrder.IsValid():
		return NewValidationError("sortOrder", "must be one of [asc, desc]", nil)
	case q.Page < 1:
		return NewValidationError("page", "must be greater than or equal to 1", nil)
	case q.Limit < 1 || q.Limit > MaxPageSize:
		return NewValidationError("limit", "must be between 1 and 100", nil)
	}
	return nil
}

// TaskPage is one page of a task listing with its pagination metadata.
type TaskPage struct {
	Tasks []*Task
	Total int
	Page  int
	Limit int
	Pages int
}

// NewTaskPage builds page metadata; Pages is ceil(total/limit).
func NewTaskPage(tasks []*Task, total, page, limit int) *TaskPage {
	if tasks == nil {
		tasks = []*Task{}
	}
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &TaskPage{
		Tasks: tasks,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

// TaskStats aggregates a user's tasks.
type TaskStats struct {
	Total      int
	ByStatus   map[TaskStatus]int
	ByPriority map[TaskPriority]int
	Overdue    int
}

// NewTaskStats returns stats with every status and priority present at zero.
func NewTaskStats() *TaskStats {
	stats := &TaskStats{
		ByStatus:   make(map[TaskStatus]int, len(TaskStatuses)),
		ByPriority: make(map[TaskPriority]int, len(TaskPriorities)),
	}
	for _, s := range TaskStatuses {
		stats.ByStatus[s] = 0
	}
	for _, p := range TaskPriorities {
		stats.ByPriority[p] = 0
	}
	return stats
}
