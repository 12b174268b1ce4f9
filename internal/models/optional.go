package models

import "encoding/json"

// Optional is one field of a partial update. Set reports whether the field
// was present in the input at all; a present field with a nil Value is an
// explicit null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a present field holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present field holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsNull reports whether the field was sent as null.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// IsZero lets `omitzero` drop fields that were never set.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
