package dto

import (
	"bytes"
	"encoding/json"
)

type fieldState uint8

const (
	fieldUnset fieldState = iota
	fieldNull
	fieldSet
)

// Field is a tri-state JSON value: the key was absent (Unset), the key was
// present with null (Null), or the key carried a value (Set). A pointer cannot
// tell the first two apart, which is why partial updates use Field instead.
//
// Tag struct fields with `json:",omitzero"` so an Unset field is also left out
// when encoding.
type Field[T any] struct {
	state fieldState
	value T
}

// Set returns a Field holding v.
func Set[T any](v T) Field[T] { return Field[T]{state: fieldSet, value: v} }

// Null returns a Field explicitly cleared.
func Null[T any]() Field[T] { return Field[T]{state: fieldNull} }

// Present reports whether the field was supplied at all, null included.
func (f Field[T]) Present() bool { return f.state != fieldUnset }

// IsNull reports whether the field was supplied as an explicit null.
func (f Field[T]) IsNull() bool { return f.state == fieldNull }

// Get returns the value and true only when the field carries a value.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == fieldSet
}

// Ptr collapses Null and Set into a nullable pointer. Only meaningful once
// Present has been checked.
func (f Field[T]) Ptr() *T {
	if f.state != fieldSet {
		return nil
	}
	v := f.value
	return &v
}

// IsZero lets encoding/json's omitzero drop unset fields.
func (f Field[T]) IsZero() bool { return f.state == fieldUnset }

// UnmarshalJSON is only invoked when the key exists in the payload.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.state, f.value = fieldNull, zero
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.state, f.value = fieldSet, v
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != fieldSet {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
