package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// MaxSearchLength bounds the free-text search parameter.
const MaxSearchLength = 200

var (
	sortByTag    = oneOfTag([]domain.SortField{domain.SortByCreatedAt, domain.SortByUpdatedAt, domain.SortByDueDate, domain.SortByPriority})
	sortOrderTag = oneOfTag([]domain.SortOrder{domain.SortAsc, domain.SortDesc})
	limitTag     = "min=1,max=" + strconv.Itoa(domain.MaxPageSize)
	searchTag    = "max=" + strconv.Itoa(MaxSearchLength)
)

// ParseTaskQuery builds an unscoped query from list parameters. Empty or
// absent parameters keep their defaults; Page and Limit stay zero when absent
// so the service can apply its configured defaults. Unknown parameters are
// ignored.
func ParseTaskQuery(values url.Values) (domain.TaskQuery, error) {
	q := domain.TaskQuery{
		SortBy:    domain.SortByCreatedAt,
		SortOrder: domain.SortDesc,
	}

	if v := values.Get("status"); v != "" {
		if err := check("status", v, statusTag); err != nil {
			return domain.TaskQuery{}, err
		}
		status := domain.TaskStatus(v)
		q.Status = &status
	}
	if v := values.Get("priority"); v != "" {
		if err := check("priority", v, priorityTag); err != nil {
			return domain.TaskQuery{}, err
		}
		priority := domain.TaskPriority(v)
		q.Priority = &priority
	}
	if v := values.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return domain.TaskQuery{}, domain.NewValidationError("page", "must be a positive integer", nil)
		}
		q.Page = page
	}
	if v := values.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return domain.TaskQuery{}, domain.NewValidationError("limit", "must be an integer", nil)
		}
		if err := check("limit", limit, limitTag); err != nil {
			return domain.TaskQuery{}, err
		}
		q.Limit = limit
	}
	if v := values.Get("sortBy"); v != "" {
		if err := check("sortBy", v, sortByTag); err != nil {
			return domain.TaskQuery{}, err
		}
		q.SortBy = domain.SortField(v)
	}
	if v := values.Get("sortOrder"); v != "" {
		if err := check("sortOrder", v, sortOrderTag); err != nil {
			return domain.TaskQuery{}, err
		}
		q.SortOrder = domain.SortOrder(v)
	}
	if v := strings.TrimSpace(values.Get("search")); v != "" {
		if err := check("search", v, searchTag); err != nil {
			return domain.TaskQuery{}, err
		}
		q.Search = v
	}

	return q, nil
}

var errInvalidTaskID = domain.NewValidationError("", "Invalid task ID format", domain.ErrInvalidID)

// canonicalUUIDLength is the length of the dashed 8-4-4-4-12 form.
const canonicalUUIDLength = 36

// ParseTaskID parses a task reference from a URL path segment. Only the
// canonical dashed form is accepted; undashed, braced and urn:uuid: forms
// are rejected.
func ParseTaskID(raw string) (uuid.UUID, error) {
	if len(raw) != canonicalUUIDLength {
		return uuid.Nil, errInvalidTaskID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errInvalidTaskID
	}
	return id, nil
}
