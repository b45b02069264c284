package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, name string, payload map[string]any) simevents.Event {
	t.Helper()

	ev, err := simevents.Dispatch(name, 42.5, payload)
	require.NoError(t, err)
	return ev
}

func TestFlattenEmbeddedGroups(t *testing.T) {
	ev := decode(t, "Kill", map[string]any{
		"RepositoryId":       "R1",
		"ActorName":          "Bob",
		"ActorType":          1,
		"KillType":           9,
		"KillContext":        4,
		"KillClass":          "ballistic",
		"IsHeadshot":         true,
		"KillItemInstanceId": json.Number("18446744073709551615"),
		"DamageEvents":       []any{json.Number("1"), json.Number("2")},
		"History": []any{
			map[string]any{"InstanceId": json.Number("1"), "RepositoryId": "W"},
		},
		"TotalDamage": 0,
	})

	attrs := Flatten(ev.Value)

	assert.Equal(t, "Bob", attrs["ActorName"])
	assert.Equal(t, "Guard", attrs["ActorType"])
	assert.Equal(t, "Shot", attrs["KillType"])
	assert.Equal(t, "Murder", attrs["KillContext"])
	assert.Equal(t, true, attrs["IsHeadshot"])
	assert.Equal(t, "18446744073709551615", attrs["KillItemInstanceId"])
	assert.Equal(t, "1,2", attrs["DamageEvents"])
	assert.Equal(t, 1, attrs["History.count"])
	assert.Equal(t, 0.0, attrs["TotalDamage"])

	assert.NotContains(t, attrs, "Accident")
	assert.NotContains(t, attrs, "DeathType")
}

func TestFlattenComposite(t *testing.T) {
	ev := decode(t, "OnWeaponReload", map[string]any{
		"RoomId":           3,
		"HeroPosition":     []any{1.0, 2.0, 3.0},
		"ItemRepositoryId": "I1",
		"ItemInstanceId":   7,
		"WeaponType":       99,
	})

	attrs := Flatten(ev.Value)

	assert.Equal(t, int64(3), attrs["Location.RoomId"])
	assert.Equal(t, 2.0, attrs["Location.HeroPosition.Y"])
	assert.Equal(t, "I1", attrs["Item.ItemRepositoryId"])
	assert.Equal(t, "7", attrs["Item.ItemInstanceId"])
	assert.Equal(t, "Unknown(99)", attrs["Item.WeaponType"])
	assert.NotContains(t, attrs, "Item.RepoPerks")
}

func TestFlattenUnrecognized(t *testing.T) {
	ev := decode(t, "Brand_New", map[string]any{"b": "x", "a": json.Number("5")})

	attrs := Flatten(ev.Value)

	assert.Equal(t, "5", attrs["Raw.a"])
	assert.Equal(t, "x", attrs["Raw.b"])
}

func TestNewSimEvent(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	ev := NewSimEvent(decode(t, "IntroCutEnd", nil), now)

	assert.Equal(t, SimEventType, ev.Type)
	assert.Equal(t, int64(1700000000000), ev.Timestamp)
	assert.Equal(t, "IntroCutEnd", ev.Attributes["name"])
	assert.Equal(t, "Marker", ev.Attributes["variant"])
	assert.Equal(t, 42.5, ev.Attributes["simTimestamp"])
	assert.NotEmpty(t, ev.Attributes["eventId"])

	other := NewSimEvent(decode(t, "IntroCutEnd", nil), now)
	assert.NotEqual(t, ev.Attributes["eventId"], other.Attributes["eventId"])
}

func TestMakeNumeric(t *testing.T) {
	i := MakeNumeric(3)
	assert.True(t, i.IsInt())
	assert.Equal(t, int64(3), i.Value())

	f := MakeNumeric(2.5)
	assert.True(t, f.IsFloat())
	assert.Equal(t, int64(2), f.Int())

	assert.Panics(t, func() { MakeNumeric("x") })
}
