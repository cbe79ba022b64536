package validation

import (
	"io"
	"strconv"
	"strings"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/sanitize"
)

// taskBody is the allow-list of task members a client may send.
type taskBody struct {
	Title       Field[string] `json:"title"`
	Description Field[string] `json:"description"`
	Status      Field[string] `json:"status"`
	Priority    Field[string] `json:"priority"`
	DueDate     Field[string] `json:"dueDate"`
}

var (
	titleTag       = "required,max=" + strconv.Itoa(domain.MaxTitleLength)
	descriptionTag = "max=" + strconv.Itoa(domain.MaxDescriptionLength)
	statusTag      = oneOfTag(domain.TaskStatuses)
	priorityTag    = oneOfTag(domain.TaskPriorities)
)

// DecodeTaskCreate reads a task creation payload. Title is required; free
// text is stripped of markup and trimmed before length rules apply, so a
// title made only of markup or whitespace is rejected as missing.
func DecodeTaskCreate(r io.Reader) (domain.TaskDraft, error) {
	var body taskBody
	if err := decodeJSON(r, &body); err != nil {
		return domain.TaskDraft{}, err
	}

	var draft domain.TaskDraft

	title, err := freeText("title", body.Title, true, titleTag)
	if err != nil {
		return domain.TaskDraft{}, err
	}
	draft.Title = title

	if body.Description.Set {
		if draft.Description, err = freeText("description", body.Description, false, descriptionTag); err != nil {
			return domain.TaskDraft{}, err
		}
	}
	if body.Status.Set {
		status, err := enum("status", body.Status, statusTag)
		if err != nil {
			return domain.TaskDraft{}, err
		}
		draft.Status = domain.TaskStatus(status)
	}
	if body.Priority.Set {
		priority, err := enum("priority", body.Priority, priorityTag)
		if err != nil {
			return domain.TaskDraft{}, err
		}
		draft.Priority = domain.TaskPriority(priority)
	}
	if body.DueDate.Set {
		if draft.DueDate, err = parseDate("dueDate", body.DueDate); err != nil {
			return domain.TaskDraft{}, err
		}
	}

	return draft, nil
}

// DecodeTaskUpdate reads a partial update. Every member is optional; an
// object with no known members decodes to an empty patch.
func DecodeTaskUpdate(r io.Reader) (domain.TaskPatch, error) {
	var body taskBody
	if err := decodeJSON(r, &body); err != nil {
		return domain.TaskPatch{}, err
	}

	var patch domain.TaskPatch

	if body.Title.Set {
		title, err := freeText("title", body.Title, true, titleTag)
		if err != nil {
			return domain.TaskPatch{}, err
		}
		patch.Title = &title
	}
	if body.Description.Set {
		description, err := freeText("description", body.Description, false, descriptionTag)
		if err != nil {
			return domain.TaskPatch{}, err
		}
		patch.Description = &description
	}
	if body.Status.Set {
		status, err := enum("status", body.Status, statusTag)
		if err != nil {
			return domain.TaskPatch{}, err
		}
		s := domain.TaskStatus(status)
		patch.Status = &s
	}
	if body.Priority.Set {
		priority, err := enum("priority", body.Priority, priorityTag)
		if err != nil {
			return domain.TaskPatch{}, err
		}
		p := domain.TaskPriority(priority)
		patch.Priority = &p
	}
	if body.DueDate.Set {
		due, err := parseDate("dueDate", body.DueDate)
		if err != nil {
			return domain.TaskPatch{}, err
		}
		patch.DueDate = due
	}

	return patch, nil
}

func freeText(field string, f Field[string], required bool, tag string) (string, error) {
	value, err := text(field, f, required)
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(sanitize.Text(value))
	if err := check(field, value, tag); err != nil {
		return "", err
	}
	return value, nil
}

func enum(field string, f Field[string], tag string) (string, error) {
	value, err := text(field, f, true)
	if err != nil {
		return "", err
	}
	if err := check(field, value, tag); err != nil {
		return "", err
	}
	return value, nil
}
