package validation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/domain"
)

var (
	errInvalidJSON = domain.NewValidationError("", "Invalid JSON payload", nil)
	errEmptyBody   = domain.NewValidationError("", "Request body is required", nil)
)

// decodeJSON decodes exactly one JSON object from r into v. A body that
// exceeded http.MaxBytesReader's limit is returned as the original
// *http.MaxBytesError so the caller can answer 413 instead of 400.
func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}

	// Anything after the first value makes the payload ambiguous.
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return decodeError(err)
		}
		return errInvalidJSON
	}
	return nil
}

func decodeError(err error) error {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return err
	case errors.Is(err, io.EOF):
		return errEmptyBody
	default:
		return errInvalidJSON
	}
}
