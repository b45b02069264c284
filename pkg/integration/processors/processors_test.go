package processors

import (
	"testing"

	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(events []simevents.Event) []string {
	out := []string{}
	for _, ev := range events {
		out = append(out, ev.Name)
	}
	return out
}

func batch() []simevents.Event {
	return []simevents.Event{
		{Name: "Trespassing", Timestamp: 3, Value: simevents.TrespassingEventValue{IsTrespassing: true}},
		{Name: "Mystery", Timestamp: 1, Value: simevents.UnrecognizedValue{Raw: map[string]any{}}},
		{Name: "IntroCutEnd", Timestamp: 2},
		{Name: "ExitGate", Timestamp: 1, Value: simevents.ExitGateEventValue{}},
	}
}

func TestDropUnrecognized(t *testing.T) {
	out, err := DropUnrecognized(batch())

	require.NoError(t, err)
	assert.Equal(t, []string{"Trespassing", "IntroCutEnd", "ExitGate"}, names(out))
}

func TestIncludeNames(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		want    []string
	}{
		{"event name", []string{"Trespassing"}, []string{"Trespassing"}},
		{"variant name", []string{"ExitGateEventValue"}, []string{"ExitGate"}},
		{"marker", []string{"IntroCutEnd", "Mystery"}, []string{"Mystery", "IntroCutEnd"}},
		{"none given", nil, []string{"Trespassing", "Mystery", "IntroCutEnd", "ExitGate"}},
		{"no match", []string{"Kill"}, []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := IncludeNames(test.include...)(batch())

			require.NoError(t, err)
			assert.Equal(t, test.want, names(out))
		})
	}
}

func TestSortByTimestamp_IsStable(t *testing.T) {
	out, err := SortByTimestamp(batch())

	require.NoError(t, err)
	assert.Equal(t, []string{"Mystery", "ExitGate", "IntroCutEnd", "Trespassing"}, names(out))
}
