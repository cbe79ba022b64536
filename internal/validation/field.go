package validation

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON object member that remembers whether it was present,
// explicitly null, or of the wrong JSON type. Decoding never fails on a
// Field, which lets the caller report type errors in field order.
type Field[T any] struct {
	Value   T
	Set     bool
	Null    bool
	Invalid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		f.Invalid = true
	}
	return nil
}

// Usable reports whether the member was present with a value of type T.
func (f Field[T]) Usable() bool {
	return f.Set && !f.Null && !f.Invalid
}
