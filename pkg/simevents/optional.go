package simevents

import "encoding/json"

// Optional is a field the payload may omit. Absence is distinct from the zero
// value: an absent TotalDamage means no damage was recorded, not zero damage.
type Optional[T any] struct {
	value T
	set   bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None is the absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// Present exposes the value untyped. Used when flattening events for export.
func (o Optional[T]) Present() (any, bool) {
	if !o.set {
		return nil, false
	}
	return o.value, true
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
