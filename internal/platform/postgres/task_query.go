package postgres

import (
	"fmt"
	"strings"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// priorityRank orders priorities semantically rather than alphabetically.
const priorityRank = `CASE priority WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 END`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildTaskFilter renders the WHERE clause for q. The owner predicate is
// always the first condition and cannot be omitted.
func buildTaskFilter(q domain.TaskQuery) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{q.Owner()}

	if q.Status != nil {
		args = append(args, string(*q.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if q.Priority != nil {
		args = append(args, string(*q.Priority))
		conds = append(conds, fmt.Sprintf("priority = $%d", len(args)))
	}
	if q.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(q.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// buildTaskOrder renders the ORDER BY clause. Dates without a value sort
// last in both directions, and ties break on created_at then id so that
// consecutive pages never overlap.
func buildTaskOrder(by domain.SortField, order domain.SortOrder) string {
	dir := "DESC"
	if order == domain.SortAsc {
		dir = "ASC"
	}

	var primary string
	switch by {
	case domain.SortByUpdatedAt:
		primary = "updated_at " + dir
	case domain.SortByDueDate:
		primary = "due_date " + dir + " NULLS LAST"
	case domain.SortByPriority:
		primary = priorityRank + " " + dir
	default:
		primary = "created_at " + dir
	}

	return "ORDER BY " + primary + ", created_at ASC, id ASC"
}

// buildListQueries returns the page query and the matching count query.
func buildListQueries(q domain.TaskQuery) (listSQL string, countSQL string, listArgs []any, countArgs []any) {
	where, args := buildTaskFilter(q)

	countSQL = "SELECT COUNT(*) FROM tasks " + where
	countArgs = args

	listArgs = append(append([]any{}, args...), q.Limit, q.Offset())
	listSQL = fmt.Sprintf("SELECT %s FROM tasks %s %s LIMIT $%d OFFSET $%d",
		taskColumns, where, buildTaskOrder(q.SortBy, q.SortOrder), len(listArgs)-1, len(listArgs))

	return listSQL, countSQL, listArgs, countArgs
}
