package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field limits shared by the validator and the entity invariants.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// Task-specific validation errors
var (
	ErrTaskIDEmpty          = errors.New("task ID cannot be empty")
	ErrTaskOwnerEmpty       = errors.New("task owner cannot be empty")
	ErrTaskTitleEmpty       = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong     = errors.New("task title is too long")
	ErrTaskDescriptionLong  = errors.New("task description is too long")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrInvalidTaskPriority  = errors.New("invalid task priority")
	ErrTaskTimestampsAbsent = errors.New("task timestamps must be set")
)

// TaskStatus is the closed set of task states. No transition rules apply.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every valid status in display order.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// IsValid reports whether s is a member of the enumeration.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority is the closed set of task priorities.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// TaskPriorities lists every valid priority from lowest to highest.
var TaskPriorities = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

// IsValid reports whether p is a member of the enumeration.
func (p TaskPriority) IsValid() bool {
	return p.Rank() > 0
}

// Rank orders priorities semantically: low=1, medium=2, high=3. Unknown values rank 0.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityLow:
		return 1
	case TaskPriorityMedium:
		return 2
	case TaskPriorityHigh:
		return 3
	}
	return 0
}

// Task is a unit of work owned by exactly one user for its entire lifetime.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskDraft is the validated payload for creating a task. Status and Priority
// are empty when the client did not supply them.
type TaskDraft struct {
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
}

// TaskPatch is the validated payload for a partial update. Nil fields are left unchanged.
// It has no owner field: ownership can never be reassigned.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	DueDate     *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.DueDate == nil
}

// NewTask creates a task for owner from a validated draft, applying the default
// status (pending) and priority (medium).
func NewTask(owner uuid.UUID, draft TaskDraft, now time.Time) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		UserID:      owner,
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Status:      draft.Status,
		Priority:    draft.Priority,
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Status == "" {
		task.Status = TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = TaskPriorityMedium
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}

// Apply copies the fields present in p onto the task and re-stamps UpdatedAt.
// An empty patch leaves the task untouched and returns false.
func (t *Task) Apply(p TaskPatch, now time.Time) (bool, error) {
	if p.IsEmpty() {
		return false, nil
	}

	updated := *t
	if p.Title != nil {
		updated.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		updated.Description = strings.TrimSpace(*p.Description)
	}
	if p.Status != nil {
		updated.Status = *p.Status
	}
	if p.Priority != nil {
		updated.Priority = *p.Priority
	}
	if p.DueDate != nil {
		due := *p.DueDate
		updated.DueDate = &due
	}
	updated.UpdatedAt = now

	if err := updated.Validate(); err != nil {
		return false, err
	}
	*t = updated
	return true, nil
}

// IsOverdue reports whether the task is past due and not completed at now.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskStatusCompleted
}

// Validate checks the invariants every stored task must hold.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}
	if t.UserID == uuid.Nil {
		return ErrTaskOwnerEmpty
	}
	if t.Title == "" {
		return ErrTaskTitleEmpty
	}
	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return ErrTaskTitleTooLong
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLength {
		return ErrTaskDescriptionLong
	}
	if !t.Status.IsValid() {
		return ErrInvalidTaskStatus
	}
	if !t.Priority.IsValid() {
		return ErrInvalidTaskPriority
	}
	if t.CreatedAt.IsZero() || t.UpdatedAt.IsZero() {
		return ErrTaskTimestampsAbsent
	}
	return nil
}
