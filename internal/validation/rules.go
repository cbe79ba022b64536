package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// validate is safe for concurrent use and caches rule parsing.
var validate = validator.New(validator.WithRequiredStructEnabled())

// check runs a validator tag against a single value and converts the first
// failure into a client-facing message for field.
func check(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domain.NewValidationError(field, message(fieldErrs[0]), nil)
	}
	return domain.NewValidationError(field, "is invalid", nil)
}

// message renders a validator failure without the field name.
func message(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		if isText {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return "is invalid"
	}
}

// text extracts a string member. Missing members yield "" unless required;
// null and non-string members are always rejected.
func text(field string, f Field[string], required bool) (string, error) {
	switch {
	case !f.Set && required:
		return "", domain.NewValidationError(field, "is required", nil)
	case !f.Set:
		return "", nil
	case f.Null, f.Invalid:
		return "", domain.NewValidationError(field, "must be a string", nil)
	}
	return f.Value, nil
}

// dateLayouts lists accepted dueDate formats, tried in order.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02"}

// parseDate accepts a calendar date or an RFC 3339 timestamp and returns it in UTC.
func parseDate(field string, f Field[string]) (*time.Time, error) {
	invalid := domain.NewValidationError(field, "must be a valid date", nil)
	if !f.Usable() {
		return nil, invalid
	}

	value := strings.TrimSpace(f.Value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, invalid
}

// oneOfTag builds an oneof rule from an enumeration.
func oneOfTag[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "oneof=" + strings.Join(parts, " ")
}
