// Package patch provides a three-state JSON field used by partial update
// requests: a field can be absent, explicitly null, or carry a value.
// Plain pointers cannot distinguish the first two cases.
package patch

import "encoding/json"

// Field tracks JSON key presence in addition to nullability. The zero value
// means the key was absent; encoding/json only invokes UnmarshalJSON for keys
// that appear in the document, which is what makes presence detection work.
type Field[T any] struct {
	set   bool
	null  bool
	value T
}

// Set returns a Field carrying the given value.
func Set[T any](v T) Field[T] {
	return Field[T]{set: true, value: v}
}

// Null returns a Field representing an explicit JSON null.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the key was present in the document at all.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the key was present with an explicit null.
func (f Field[T]) IsNull() bool {
	return f.set && f.null
}

// Value returns the decoded value. ok is false when the field was absent
// or null.
func (f Field[T]) Value() (T, bool) {
	if !f.set || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Ptr returns the value as a pointer, nil when absent or null. Convenient
// for applying the field to a nullable destination.
func (f Field[T]) Ptr() *T {
	if !f.set || f.null {
		return nil
	}
	v := f.value
	return &v
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if string(data) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
