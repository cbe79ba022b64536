package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Every read that returns more than one task takes a domain.TaskQuery and
// must apply its owner scope as a mandatory predicate. Single-task lookups
// are unscoped; callers run the ownership check on the result.
type TaskStore interface {
	// Create saves a new, validated task.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID regardless of owner.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update persists every mutable field of task. The owner column is part
	// of the match, so a task can never be moved between users.
	// Returns ErrTaskNotFound if no row matches.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with id owned by owner.
	// Returns ErrTaskNotFound if no row matches.
	Delete(ctx context.Context, id, owner uuid.UUID) error

	// List returns one page of the owner's tasks matching q, together with
	// the total number of matches across all pages.
	// Returns ErrMissingScope if q carries no owner.
	List(ctx context.Context, q domain.TaskQuery) ([]*domain.Task, int, error)

	// Stats aggregates the owner's tasks; overdue is evaluated against now.
	Stats(ctx context.Context, owner uuid.UUID, now time.Time) (*domain.TaskStats, error)

	// RunInTx executes fn against a store bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx TaskStore) error) error
}
