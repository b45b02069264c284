package simevents

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsPayload(t *testing.T) {
	p, ok := AsPayload(nil)
	require.True(t, ok)
	assert.Empty(t, p)

	p, ok = AsPayload(map[string]any{"a": "b"})
	require.True(t, ok)
	assert.Equal(t, "b", p["a"])

	_, ok = AsPayload([]any{1, 2})
	assert.False(t, ok)

	_, ok = AsPayload("text")
	assert.False(t, ok)
}

func TestLookupTreatsNullAsAbsent(t *testing.T) {
	p := Payload{"a": nil, "b": false}

	_, ok := p.Lookup("a")
	assert.False(t, ok)

	v, ok := p.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, false, v)
}

func TestAsUint64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want uint64
		ok   bool
	}{
		{"max from number text", json.Number("18446744073709551615"), math.MaxUint64, true},
		{"overflow", json.Number("18446744073709551616"), 0, false},
		{"negative text", json.Number("-1"), 0, false},
		{"fraction text", json.Number("1.5"), 0, false},
		{"go uint64", uint64(math.MaxUint64), math.MaxUint64, true},
		{"go int", 7, 7, true},
		{"negative int", -7, 0, false},
		{"exact float", float64(1 << 40), 1 << 40, true},
		{"lossy float", float64(1 << 60), 0, false},
		{"fractional float", 2.5, 0, false},
		{"string", "12", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := asUint64(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsInt64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"number text", json.Number("-42"), -42, true},
		{"exponent text", json.Number("1e3"), 1000, true},
		{"fraction text", json.Number("0.5"), 0, false},
		{"float", 3.0, 3, true},
		{"fractional float", 3.25, 0, false},
		{"int32", int32(-5), -5, true},
		{"huge uint64", uint64(math.MaxUint64), 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := asInt64(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsVector(t *testing.T) {
	want := Vector3{X: 1.5, Y: -2, Z: 3}

	v, ok := asVector([]any{json.Number("1.5"), -2, 3.0})
	require.True(t, ok)
	assert.Equal(t, want, v)

	v, ok = asVector(map[string]any{"X": 1.5, "Y": -2.0, "Z": 3})
	require.True(t, ok)
	assert.Equal(t, want, v)

	v, ok = asVector(map[string]any{"x": 1.5, "y": -2.0, "z": 3})
	require.True(t, ok)
	assert.Equal(t, want, v)

	_, ok = asVector([]any{1, 2})
	assert.False(t, ok)

	_, ok = asVector(map[string]any{"X": 1, "Y": 2})
	assert.False(t, ok)

	_, ok = asVector([]any{1, "2", 3})
	assert.False(t, ok)
}

func TestReaderKeepsFirstFailure(t *testing.T) {
	r := newReader(Payload{"b": 1})

	_ = r.str("a")
	_ = r.str("b")

	de, ok := AsDecodeError(r.Err())
	require.True(t, ok)
	assert.Equal(t, "a", de.Field)
	assert.ErrorIs(t, r.Err(), ErrMissingField)
}

func TestReaderOptionalMismatchIsAbsent(t *testing.T) {
	r := newReader(Payload{"flag": "yes", "count": "many"})

	assert.False(t, r.optBool("flag").IsSet())
	assert.False(t, r.optInt("count").IsSet())
	assert.NoError(t, r.Err())
}

func TestReaderRequiredMismatch(t *testing.T) {
	r := newReader(Payload{"name": 12})

	_ = r.str("name")

	assert.ErrorIs(t, r.Err(), ErrTypeMismatch)
	de, _ := AsDecodeError(r.Err())
	assert.Equal(t, "name", de.Field)
	assert.Contains(t, de.Detail, "want string")
}

func TestListIsAllOrNothing(t *testing.T) {
	r := newReader(Payload{
		"good":  []any{"a", "b"},
		"bad":   []any{"a", 2},
		"empty": []any{},
		"not":   "a",
	})

	assert.Equal(t, []string{"a", "b"}, r.strs("good"))
	assert.Nil(t, r.strs("bad"))
	assert.Nil(t, r.strs("missing"))
	assert.Nil(t, r.strs("not"))
	assert.NotNil(t, r.strs("empty"))
	assert.Empty(t, r.strs("empty"))
	assert.NoError(t, r.Err())
}

func TestIdsRoundTripExactly(t *testing.T) {
	r := newReader(Payload{
		"ids": []any{json.Number("18446744073709551615"), json.Number("1")},
	})

	assert.Equal(t, []uint64{math.MaxUint64, 1}, r.ids("ids"))
}
