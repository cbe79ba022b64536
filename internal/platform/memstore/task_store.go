package memstore

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskStore implements store.TaskStore in memory.
//
// RunInTx serializes callers but has no rollback: writes made by fn before
// it fails are kept.
type TaskStore struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	tasks  map[uuid.UUID]*domain.Task
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		tasks:  make(map[uuid.UUID]*domain.Task),
		logger: logger.With(slog.String("component", "memory_task_store")),
	}
}

func cloneTask(t *domain.Task) *domain.Task {
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; exists {
		return fmt.Errorf("%w: task id", store.ErrDuplicate)
	}
	s.tasks[task.ID] = cloneTask(task)

	logger.FromContextOrDefault(ctx, s.logger).Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

// Update implements store.TaskStore.Update.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}

	updated := cloneTask(task)
	updated.CreatedAt = existing.CreatedAt
	s.tasks[task.ID] = updated
	return nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, id, owner uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[id]
	if !ok || existing.UserID != owner {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// List implements store.TaskStore.List.
func (s *TaskStore) List(ctx context.Context, q domain.TaskQuery) ([]*domain.Task, int, error) {
	if q.Owner() == uuid.Nil {
		return nil, 0, store.ErrMissingScope
	}

	s.mu.RLock()
	matched := make([]*domain.Task, 0)
	for _, t := range s.tasks {
		if matches(q, t) {
			matched = append(matched, cloneTask(t))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *domain.Task) int {
		return compareTasks(a, b, q.SortBy, q.SortOrder)
	})

	total := len(matched)
	start := min(q.Offset(), total)
	end := min(start+q.Limit, total)

	return matched[start:end], total, nil
}

// Stats implements store.TaskStore.Stats.
func (s *TaskStore) Stats(ctx context.Context, owner uuid.UUID, now time.Time) (*domain.TaskStats, error) {
	if owner == uuid.Nil {
		return nil, store.ErrMissingScope
	}

	stats := domain.NewTaskStats()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.UserID != owner {
			continue
		}
		stats.Total++
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats, nil
}

// RunInTx implements store.TaskStore.RunInTx.
func (s *TaskStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx store.TaskStore) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(ctx, s)
}

func matches(q domain.TaskQuery, t *domain.Task) bool {
	if t.UserID != q.Owner() {
		return false
	}
	if q.Status != nil && t.Status != *q.Status {
		return false
	}
	if q.Priority != nil && t.Priority != *q.Priority {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	return true
}

// compareTasks orders by the requested key and direction. Tasks without a due
// date sort after dated ones in both directions. Ties fall back to creation
// time ascending, then ID, so pages never overlap.
func compareTasks(a, b *domain.Task, by domain.SortField, order domain.SortOrder) int {
	var c int
	switch by {
	case domain.SortByUpdatedAt:
		c = a.UpdatedAt.Compare(b.UpdatedAt)
	case domain.SortByPriority:
		c = a.Priority.Rank() - b.Priority.Rank()
	case domain.SortByDueDate:
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			c = 0
		case a.DueDate == nil:
			return 1
		case b.DueDate == nil:
			return -1
		default:
			c = a.DueDate.Compare(*b.DueDate)
		}
	default:
		c = a.CreatedAt.Compare(b.CreatedAt)
	}

	if order == domain.SortDesc {
		c = -c
	}
	if c != 0 {
		return c
	}

	if c = a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}
