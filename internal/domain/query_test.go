package domain

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTaskQuery_Scope(t *testing.T) {
	t.Parallel()

	q := NewTaskQuery()
	assert.Equal(t, uuid.Nil, q.Owner())
	assert.ErrorIs(t, q.Validate(), ErrTaskOwnerEmpty)

	owner := uuid.New()
	scoped := q.ScopedTo(owner)
	assert.Equal(t, owner, scoped.Owner())
	assert.Equal(t, uuid.Nil, q.Owner(), "ScopedTo must not mutate the receiver")
	assert.NoError(t, scoped.Validate())
}

func TestTaskQuery_Validate(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	bad := TaskStatus("archived")

	tests := []struct {
		name   string
		mutate func(q *TaskQuery)
		field  string
	}{
		{"page zero", func(q *TaskQuery) { q.Page = 0 }, "page"},
		{"limit zero", func(q *TaskQuery) { q.Limit = 0 }, "limit"},
		{"limit too high", func(q *TaskQuery) { q.Limit = MaxPageSize + 1 }, "limit"},
		{"sort field", func(q *TaskQuery) { q.SortBy = "title" }, "sortBy"},
		{"sort order", func(q *TaskQuery) { q.SortOrder = "up" }, "sortOrder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewTaskQuery().ScopedTo(owner)
			tt.mutate(&q)
			err := q.Validate()
			var vErr *ValidationError
			if assert.ErrorAs(t, err, &vErr) {
				assert.Equal(t, tt.field, vErr.Field)
			}
		})
	}

	q := NewTaskQuery().ScopedTo(owner)
	q.Status = &bad
	assert.ErrorIs(t, q.Validate(), ErrInvalidTaskStatus)
}

func TestNewTaskPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 5, 5},
	}
	for _, tt := range tests {
		page := NewTaskPage(nil, tt.total, 1, tt.limit)
		assert.Equal(t, tt.want, page.Pages, "total=%d limit=%d", tt.total, tt.limit)
		assert.NotNil(t, page.Tasks)
	}
}

func TestNewTaskStats_ZeroFilled(t *testing.T) {
	t.Parallel()

	stats := NewTaskStats()
	assert.Len(t, stats.ByStatus, 3)
	assert.Len(t, stats.ByPriority, 3)
	for _, s := range TaskStatuses {
		assert.Equal(t, 0, stats.ByStatus[s])
	}
}

func TestTaskQuery_Offset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, limit, want int
	}{
		{1, 20, 0},
		{3, 20, 40},
		{0, 20, 0},
		{2, 0, 0},
		{math.MaxInt / 10, 20, math.MaxInt},
		{500000000000000000, 20, math.MaxInt},
	}
	for _, tc := range tests {
		q := TaskQuery{Page: tc.page, Limit: tc.limit}
		assert.Equal(t, tc.want, q.Offset(), "page=%d limit=%d", tc.page, tc.limit)
	}
}
