package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskService provides the owner-scoped task operations.
//
// Every method takes the resolved owner explicitly. Single-task operations
// go through the ownership guard; a task owned by someone else yields
// store.ErrTaskNotFound when foreign tasks are hidden, ErrNotOwned otherwise.
type TaskService interface {
	// Create stores a new task for owner, defaulting status and priority.
	Create(ctx context.Context, owner uuid.UUID, draft domain.TaskDraft) (*domain.Task, error)

	// Get returns one of owner's tasks.
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Task, error)

	// List returns one page of owner's tasks. Zero Page and Limit take the
	// configured defaults; Limit is capped at the configured maximum.
	List(ctx context.Context, owner uuid.UUID, q domain.TaskQuery) (*domain.TaskPage, error)

	// Update applies the fields present in patch. An empty patch returns the
	// task unchanged without writing.
	Update(ctx context.Context, owner, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes one of owner's tasks. Deleting twice yields store.ErrTaskNotFound.
	Delete(ctx context.Context, owner, id uuid.UUID) error

	// Stats aggregates owner's tasks by status and priority and counts overdue ones.
	Stats(ctx context.Context, owner uuid.UUID) (*domain.TaskStats, error)
}

// TaskServiceOption configures a task service.
type TaskServiceOption func(*taskServiceImpl)

// WithClock replaces time.Now as the source of creation, update and overdue times.
func WithClock(now func() time.Time) TaskServiceOption {
	return func(s *taskServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks  store.TaskStore
	cfg    config.TasksConfig
	now    func() time.Time
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the store is nil or the paging settings are inconsistent.
func NewTaskService(
	tasks store.TaskStore,
	cfg config.TasksConfig,
	logger *slog.Logger,
	opts ...TaskServiceOption,
) (TaskService, error) {
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if cfg.MaxPageSize < 1 || cfg.MaxPageSize > domain.MaxPageSize {
		return nil, domain.NewValidationError("max_page_size", "must be between 1 and 100", domain.ErrValidation)
	}
	if cfg.DefaultPageSize < 1 || cfg.DefaultPageSize > cfg.MaxPageSize {
		return nil, domain.NewValidationError("default_page_size", "must be between 1 and max_page_size", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		tasks:  tasks,
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger.With(slog.String("component", "task_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// guard loads id through tasks and checks it belongs to owner.
func (s *taskServiceImpl) guard(
	ctx context.Context,
	tasks store.TaskStore,
	op string,
	owner, id uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := tasks.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewTaskServiceError(op, "task not found", store.ErrTaskNotFound)
		}
		log.Error("failed to load task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError(op, "failed to load task", err)
	}

	if task.UserID != owner {
		log.Warn("task accessed by non-owner",
			slog.String("operation", op),
			slog.String("task_id", id.String()),
			slog.String("owner_id", task.UserID.String()),
			slog.String("user_id", owner.String()))
		if s.cfg.HideForeignTasks {
			return nil, NewTaskServiceError(op, "task not found", store.ErrTaskNotFound)
		}
		return nil, NewTaskServiceError(op, "task belongs to another user", ErrNotOwned)
	}

	return task, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(ctx context.Context, owner uuid.UUID, draft domain.TaskDraft) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(owner, draft, s.now())
	if err != nil {
		return nil, domain.NewValidationError("", err.Error(), err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		log.Error("failed to save task",
			slog.String("error", err.Error()),
			slog.String("user_id", owner.String()))
		return nil, NewTaskServiceError("create", "failed to save task", err)
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", owner.String()))
	return task, nil
}

// Get implements TaskService.Get
func (s *taskServiceImpl) Get(ctx context.Context, owner, id uuid.UUID) (*domain.Task, error) {
	return s.guard(ctx, s.tasks, "get", owner, id)
}

// List implements TaskService.List
func (s *taskServiceImpl) List(ctx context.Context, owner uuid.UUID, q domain.TaskQuery) (*domain.TaskPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if q.Page == 0 {
		q.Page = domain.DefaultPage
	}
	if q.Limit == 0 {
		q.Limit = s.cfg.DefaultPageSize
	}
	if q.Limit > s.cfg.MaxPageSize {
		q.Limit = s.cfg.MaxPageSize
	}
	if q.SortBy == "" {
		q.SortBy = domain.SortByCreatedAt
	}
	if q.SortOrder == "" {
		q.SortOrder = domain.SortDesc
	}

	q = q.ScopedTo(owner)
	if err := q.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return nil, ve
		}
		return nil, domain.NewValidationError("", err.Error(), err)
	}

	tasks, total, err := s.tasks.List(ctx, q)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", owner.String()))
		return nil, NewTaskServiceError("list", "failed to list tasks", err)
	}

	return domain.NewTaskPage(tasks, total, q.Page, q.Limit), nil
}

// Update implements TaskService.Update
func (s *taskServiceImpl) Update(
	ctx context.Context,
	owner, id uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var result *domain.Task
	err := s.tasks.RunInTx(ctx, func(ctx context.Context, tx store.TaskStore) error {
		task, err := s.guard(ctx, tx, "update", owner, id)
		if err != nil {
			return err
		}

		changed, err := task.Apply(patch, s.now())
		if err != nil {
			return domain.NewValidationError("", err.Error(), err)
		}
		if !changed {
			result = task
			return nil
		}

		// The store matches on owner as well as id, so ownership is
		// re-checked at write time.
		if err := tx.Update(ctx, task); err != nil {
			if store.IsNotFoundError(err) {
				return NewTaskServiceError("update", "task not found", store.ErrTaskNotFound)
			}
			log.Error("failed to save task",
				slog.String("error", err.Error()),
				slog.String("task_id", id.String()))
			return NewTaskServiceError("update", "failed to save task", err)
		}

		result = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("task updated", slog.String("task_id", id.String()))
	return result, nil
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, owner, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.tasks.RunInTx(ctx, func(ctx context.Context, tx store.TaskStore) error {
		if _, err := s.guard(ctx, tx, "delete", owner, id); err != nil {
			return err
		}

		if err := tx.Delete(ctx, id, owner); err != nil {
			if store.IsNotFoundError(err) {
				return NewTaskServiceError("delete", "task not found", store.ErrTaskNotFound)
			}
			log.Error("failed to delete task",
				slog.String("error", err.Error()),
				slog.String("task_id", id.String()))
			return NewTaskServiceError("delete", "failed to delete task", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Debug("task deleted", slog.String("task_id", id.String()))
	return nil
}

// Stats implements TaskService.Stats
func (s *taskServiceImpl) Stats(ctx context.Context, owner uuid.UUID) (*domain.TaskStats, error) {
	stats, err := s.tasks.Stats(ctx, owner, s.now())
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to aggregate tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", owner.String()))
		return nil, fmt.Errorf("failed to aggregate tasks: %w", err)
	}
	return stats, nil
}
