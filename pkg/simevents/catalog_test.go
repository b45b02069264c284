package simevents

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A valid value for every required key in the catalog.
var samples = map[string]any{
	"RoomId":               json.Number("12"),
	"HeroPosition":         []any{json.Number("1.5"), json.Number("2"), json.Number("-3")},
	"ActorName":            "Bob",
	"RepositoryId":         "R1",
	"ActorType":            json.Number("1"),
	"ItemRepositoryId":     "I1",
	"ItemInstanceId":       json.Number("18446744073709551615"),
	"InstanceId":           json.Number("42"),
	"ActorId":              json.Number("9007199254740993"),
	"KillType":             json.Number("6"),
	"KillContext":          json.Number("4"),
	"KillClass":            "unarmed",
	"Witness":              "W1",
	"DeadBodyRepositoryId": "R2",
	"event":                json.Number("2"),
	"IsTrespassing":        true,
	"ContractId":           "C1",
	"Id":                   "O1",
	"ChallengeId":          "CH1",
	"Event":                "opened",
	"PreviousAmbient":      json.Number("1"),
	"CurrentAmbient":       json.Number("2"),
	"DeadBody": map[string]any{
		"ActorName":    "Alice",
		"RepositoryId": "R3",
		"ActorType":    json.Number("0"),
	},
	"Contract_Name_metricvalue": "The Showstopper",
}

// Wire keys whose Go field is named differently.
var renamed = map[string]string{
	"event":                     "Event",
	"Contract_Name_metricvalue": "ContractName",
}

func minimalPayload(t *testing.T, info VariantInfo) Payload {
	t.Helper()

	p := Payload{}
	for _, k := range info.Required {
		v, ok := samples[k]
		require.True(t, ok, "no sample for required key %q", k)
		p[k] = v
	}
	return p
}

func without(p Payload, key string) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		if k != key {
			out[k] = v
		}
	}
	return out
}

// findKey searches a decoded JSON tree breadth first.
func findKey(tree any, key string) (any, bool) {
	queue := []any{tree}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		obj, ok := node.(map[string]any)
		if !ok {
			continue
		}

		if v, ok := obj[key]; ok {
			return v, true
		}

		for _, child := range obj {
			queue = append(queue, child)
		}
	}

	return nil, false
}

func toTree(t *testing.T, v Value) any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var tree any
	require.NoError(t, dec.Decode(&tree))
	return tree
}

func TestCatalogMinimalPayloadsDecode(t *testing.T) {
	d := NewDispatcher()

	for _, info := range Variants() {
		info := info
		t.Run(info.EventName, func(t *testing.T) {
			if info.Marker {
				ev, err := d.Dispatch(info.EventName, 1, nil)
				require.NoError(t, err)
				assert.True(t, ev.IsMarker())
				return
			}

			ev, err := d.Dispatch(info.EventName, 1, minimalPayload(t, info))
			require.NoError(t, err)
			require.NotNil(t, ev.Value)
			assert.Equal(t, info.Variant, ev.Value.VariantName())
			assert.Equal(t, info.EventName, ev.Name)

			tree := toTree(t, ev.Value)
			for _, k := range info.Required {
				want := samples[k]
				if _, nestedObj := want.(map[string]any); nestedObj {
					continue
				}

				field := k
				if r, ok := renamed[k]; ok {
					field = r
				}

				got, ok := findKey(tree, field)
				require.True(t, ok, "field %q not in decoded value", field)

				if k == "HeroPosition" {
					want = map[string]any{
						"X": json.Number("1.5"),
						"Y": json.Number("2"),
						"Z": json.Number("-3"),
					}
				}
				assert.Equal(t, want, got, "field %q", field)
			}
		})
	}
}

func TestCatalogEachRequiredKeyIsRequired(t *testing.T) {
	d := NewDispatcher()

	for _, info := range Variants() {
		if info.Marker {
			continue
		}

		info := info
		t.Run(info.EventName, func(t *testing.T) {
			full := minimalPayload(t, info)

			for _, k := range info.Required {
				_, err := d.Dispatch(info.EventName, 1, without(full, k))
				require.Error(t, err, "removing %q", k)

				de, ok := AsDecodeError(err)
				require.True(t, ok)
				assert.Equal(t, k, de.Field)
				assert.Equal(t, info.EventName, de.EventName)
				assert.ErrorIs(t, err, ErrMissingField)
			}
		})
	}
}

func TestCatalogVariantNamesAreAliases(t *testing.T) {
	d := NewDispatcher()

	for _, info := range Variants() {
		if info.Marker {
			continue
		}

		ev, err := d.Dispatch(info.Variant, 0, minimalPayload(t, info))
		require.NoError(t, err, info.Variant)
		assert.Equal(t, info.Variant, ev.Value.VariantName())
	}
}

func TestCatalogEmptyPayloadForOptionalOnlyVariants(t *testing.T) {
	d := NewDispatcher()

	for _, info := range Variants() {
		if info.Marker || len(info.Required) > 0 {
			continue
		}

		ev, err := d.Dispatch(info.EventName, 0, Payload{})
		require.NoError(t, err, info.EventName)
		assert.Equal(t, info.Variant, ev.Value.VariantName())
	}
}

func TestCatalogHasNoDuplicateVariants(t *testing.T) {
	seen := map[string]bool{}

	for _, info := range Variants() {
		if info.Marker {
			continue
		}
		assert.False(t, seen[info.Variant], "variant %s listed twice", info.Variant)
		seen[info.Variant] = true
	}

	assert.Len(t, seen, 48)
}
