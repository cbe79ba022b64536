package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TaskStore is a testify mock of store.TaskStore. RunInTx invokes fn with the
// mock itself unless an explicit return is registered with an error.
type TaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*TaskStore)(nil)

// Create is a mock implementation of store.TaskStore.Create
func (m *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// GetByID is a mock implementation of store.TaskStore.GetByID
func (m *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.TaskStore.Update
func (m *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// Delete is a mock implementation of store.TaskStore.Delete
func (m *TaskStore) Delete(ctx context.Context, id, owner uuid.UUID) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

// List is a mock implementation of store.TaskStore.List
func (m *TaskStore) List(ctx context.Context, q domain.TaskQuery) ([]*domain.Task, int, error) {
	args := m.Called(ctx, q)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Int(1), args.Error(2)
}

// Stats is a mock implementation of store.TaskStore.Stats
func (m *TaskStore) Stats(ctx context.Context, owner uuid.UUID, now time.Time) (*domain.TaskStats, error) {
	args := m.Called(ctx, owner, now)
	if stats, ok := args.Get(0).(*domain.TaskStats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

// RunInTx is a mock implementation of store.TaskStore.RunInTx. A registered
// non-nil error is returned without running fn.
func (m *TaskStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx store.TaskStore) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}
