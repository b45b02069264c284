package simevents

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents/enums"
)

// Largest magnitude a float64 holds without losing integer precision.
const maxExactFloat = 1 << 53

// Payload is a read-only view of one event value: string keys mapping to strings,
// numbers, booleans, nested objects or sequences. Numbers may be json.Number
// (preferred, exact), float64 or any Go integer type. Decoders never write to it,
// so several of them can read the same payload independently.
type Payload map[string]any

// AsPayload accepts the tree shapes a wire parser produces. A nil value is an
// empty payload.
func AsPayload(raw any) (Payload, bool) {
	switch p := raw.(type) {
	case nil:
		return Payload{}, true
	case Payload:
		return p, true
	case map[string]any:
		return Payload(p), true
	}
	return nil, false
}

// Lookup treats explicit nulls as absent.
func (p Payload) Lookup(key string) (any, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// reader pulls typed fields out of a payload and keeps the first failure, so a
// decoder reads every field and checks Err once at the end.
type reader struct {
	p   Payload
	err error
}

func newReader(p Payload) *reader {
	return &reader{p: p}
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) Err() error {
	return r.err
}

func required[T any](r *reader, key, want string, conv func(any) (T, bool)) (T, bool) {
	var zero T

	v, ok := r.p.Lookup(key)
	if !ok {
		r.fail(missingField(key, ""))
		return zero, false
	}

	t, ok := conv(v)
	if !ok {
		r.fail(typeMismatch(key, want, v))
		return zero, false
	}

	return t, true
}

// optional never fails the reader; a value of the wrong type is dropped.
func optional[T any](r *reader, key string, conv func(any) (T, bool)) Optional[T] {
	v, ok := r.p.Lookup(key)
	if !ok {
		return None[T]()
	}

	t, ok := conv(v)
	if !ok {
		return None[T]()
	}

	return Some(t)
}

func (r *reader) str(key string) string {
	s, _ := required(r, key, "string", asString)
	return s
}

func (r *reader) optStr(key string) Optional[string] {
	return optional(r, key, asString)
}

func (r *reader) boolean(key string) bool {
	b, _ := required(r, key, "boolean", asBool)
	return b
}

func (r *reader) optBool(key string) Optional[bool] {
	return optional(r, key, asBool)
}

func (r *reader) integer(key string) int64 {
	i, _ := required(r, key, "integer", asInt64)
	return i
}

func (r *reader) optInt(key string) Optional[int64] {
	return optional(r, key, asInt64)
}

func (r *reader) id(key string) uint64 {
	u, _ := required(r, key, "unsigned integer", asUint64)
	return u
}

func (r *reader) optID(key string) Optional[uint64] {
	return optional(r, key, asUint64)
}

func (r *reader) number(key string) float64 {
	f, _ := required(r, key, "number", asFloat64)
	return f
}

func (r *reader) optNumber(key string) Optional[float64] {
	return optional(r, key, asFloat64)
}

func (r *reader) vector(key string) Vector3 {
	v, _ := required(r, key, "vector", asVector)
	return v
}

func (r *reader) optVector(key string) Optional[Vector3] {
	return optional(r, key, asVector)
}

func (r *reader) strs(key string) []string {
	return list(r, key, asString)
}

func (r *reader) ids(key string) []uint64 {
	return list(r, key, asUint64)
}

// object reads a required nested object.
func (r *reader) object(key string) (Payload, bool) {
	return required(r, key, "object", asObject)
}

func requiredEnum[E enums.Code](r *reader, key string) E {
	code, ok := required(r, key, "integer code", asInt)
	e := E(code)
	if ok && !enums.Known(e) {
		r.fail(missingField(key, fmt.Sprintf("unknown %s code %d", e.Domain(), code)))
	}
	return e
}

// optionalEnum keeps unknown codes; callers see Known() == false.
func optionalEnum[E enums.Code](r *reader, key string) Optional[E] {
	code := optional(r, key, asInt)
	c, ok := code.Get()
	if !ok {
		return None[E]()
	}
	return Some(E(c))
}

// list returns nil when the key is missing or any element has the wrong type.
func list[T any](r *reader, key string, conv func(any) (T, bool)) []T {
	v, ok := r.p.Lookup(key)
	if !ok {
		return nil
	}

	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		t, ok := conv(item)
		if !ok {
			return nil
		}
		out = append(out, t)
	}

	return out
}

// objectList decodes a sequence of nested shapes, all or nothing.
func objectList[T any](r *reader, key string, decode func(Payload) (T, error)) []T {
	return list(r, key, func(v any) (T, bool) {
		var zero T

		p, ok := asObject(v)
		if !ok {
			return zero, false
		}

		t, err := decode(p)
		if err != nil {
			return zero, false
		}

		return t, true
	})
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asObject(v any) (Payload, bool) {
	switch o := v.(type) {
	case Payload:
		return o, true
	case map[string]any:
		return Payload(o), true
	}
	return nil, false
}

func isExactInteger(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f) && math.Abs(f) <= maxExactFloat
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil || !isExactInteger(f) {
			return 0, false
		}
		return int64(f), true
	case float64:
		if !isExactInteger(n) {
			return 0, false
		}
		return int64(n), true
	case float32:
		return asInt64(float64(n))
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return asInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	i, ok := asInt64(v)
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int(i), true
}

// asUint64 only accepts values that are exact: raw number text, Go integers, or
// floats small enough to hold the integer without rounding.
func asUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case json.Number:
		u, err := strconv.ParseUint(string(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return u, true
	case uint64:
		return n, true
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case float64, float32, int, int8, int16, int32, int64:
		i, ok := asInt64(n)
		if !ok || i < 0 {
			return 0, false
		}
		return uint64(i), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}

	i, ok := asInt64(v)
	if !ok {
		return 0, false
	}
	return float64(i), true
}

func asVector(v any) (Vector3, bool) {
	switch t := v.(type) {
	case []any:
		if len(t) != 3 {
			return Vector3{}, false
		}

		var xyz [3]float64
		for i := 0; i < 3; i += 1 {
			f, ok := asFloat64(t[i])
			if !ok {
				return Vector3{}, false
			}
			xyz[i] = f
		}

		return Vector3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, true
	}

	p, ok := asObject(v)
	if !ok {
		return Vector3{}, false
	}

	var xyz [3]float64
	for i, axis := range [3][2]string{{"X", "x"}, {"Y", "y"}, {"Z", "z"}} {
		raw, ok := p.Lookup(axis[0])
		if !ok {
			raw, ok = p.Lookup(axis[1])
		}
		if !ok {
			return Vector3{}, false
		}

		f, ok := asFloat64(raw)
		if !ok {
			return Vector3{}, false
		}
		xyz[i] = f
	}

	return Vector3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, true
}
