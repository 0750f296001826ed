// Package optional provides a tri-state JSON field type for partial
// updates, distinguishing "field not sent" from "field sent as null"
// from "field sent with a value".
package optional

import (
	"bytes"
	"encoding/json"
)

// Value is a tri-state JSON field. A zero Value means the field was
// absent from the document.
type Value[T any] struct {
	Set   bool // field appeared in the JSON document
	Valid bool // field carried a non-null value
	V     T
}

// Of returns a Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, Valid: true, V: v}
}

// Null returns a Value that was explicitly set to null.
func Null[T any]() Value[T] {
	return Value[T]{Set: true}
}

// FromPtr reconstructs a Value from a presence flag and a pointer:
// (false, _) is absent, (true, nil) is null, (true, p) holds *p.
func FromPtr[T any](set bool, p *T) Value[T] {
	if !set {
		return Value[T]{}
	}
	if p == nil {
		return Null[T]()
	}
	return Of(*p)
}

// Get returns the value and whether a non-null value is present.
func (o Value[T]) Get() (T, bool) {
	return o.V, o.Valid
}

// Ptr returns a pointer to a copy of the value, or nil if the field
// was absent or null.
func (o Value[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.V
	return &v
}

// UnmarshalJSON is only invoked when the field is present, so Set is
// always true here; absence is the zero Value.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		var zero T
		o.V = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.V); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON encodes the value, or null when no value is present.
// Absence cannot be represented by encoding/json for struct fields.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.V)
}
