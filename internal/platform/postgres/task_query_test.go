package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildTaskFilter(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	t.Run("owner only", func(t *testing.T) {
		where, args := buildTaskFilter(domain.NewTaskQuery().ScopedTo(owner))
		assert.Equal(t, "WHERE user_id = $1", where)
		assert.Equal(t, []any{owner}, args)
	})

	t.Run("all filters", func(t *testing.T) {
		status := domain.TaskStatusCompleted
		priority := domain.TaskPriorityHigh
		q := domain.NewTaskQuery().ScopedTo(owner)
		q.Status = &status
		q.Priority = &priority
		q.Search = "50%_off\\"

		where, args := buildTaskFilter(q)
		assert.Equal(t,
			"WHERE user_id = $1 AND status = $2 AND priority = $3 AND (title ILIKE $4 OR description ILIKE $4)",
			where)
		assert.Equal(t, []any{owner, "completed", "high", `%50\%\_off\\%`}, args)
	})
}

func TestBuildTaskOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		by    domain.SortField
		order domain.SortOrder
		want  string
	}{
		{domain.SortByCreatedAt, domain.SortDesc, "ORDER BY created_at DESC, created_at ASC, id ASC"},
		{domain.SortByUpdatedAt, domain.SortAsc, "ORDER BY updated_at ASC, created_at ASC, id ASC"},
		{domain.SortByDueDate, domain.SortDesc, "ORDER BY due_date DESC NULLS LAST, created_at ASC, id ASC"},
		{domain.SortByDueDate, domain.SortAsc, "ORDER BY due_date ASC NULLS LAST, created_at ASC, id ASC"},
		{domain.SortByPriority, domain.SortAsc, "ORDER BY " + priorityRank + " ASC, created_at ASC, id ASC"},
	}

	for _, tt := range tests {
		t.Run(string(tt.by)+"_"+string(tt.order), func(t *testing.T) {
			assert.Equal(t, tt.want, buildTaskOrder(tt.by, tt.order))
		})
	}
}

func TestBuildListQueries(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	q := domain.NewTaskQuery().ScopedTo(owner)
	q.Page, q.Limit = 3, 10
	q.Search = "report"

	listSQL, countSQL, listArgs, countArgs := buildListQueries(q)

	assert.Equal(t, "SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND (title ILIKE $2 OR description ILIKE $2)", countSQL)
	assert.Equal(t, []any{owner, "%report%"}, countArgs)
	assert.Contains(t, listSQL, "LIMIT $3 OFFSET $4")
	assert.Contains(t, listSQL, "ORDER BY created_at DESC")
	assert.Equal(t, []any{owner, "%report%", 10, 20}, listArgs)
}
