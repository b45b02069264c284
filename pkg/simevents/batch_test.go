package simevents

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBatchKeepsInputOrder(t *testing.T) {
	d := NewDispatcher()

	var records []Record
	for i := 0; i < 200; i += 1 {
		switch i % 3 {
		case 0:
			records = append(records, Record{Name: "Pacify", Timestamp: float64(i), Value: pacifyPayload()})
		case 1:
			records = append(records, Record{Name: fmt.Sprintf("Custom%d", i), Timestamp: float64(i)})
		default:
			records = append(records, Record{Name: "Pacify", Timestamp: float64(i), Value: map[string]any{}})
		}
	}

	results := d.DecodeBatch(records, 8)
	require.Len(t, results, len(records))

	for i, res := range results {
		assert.Equal(t, i, res.Index)

		switch i % 3 {
		case 0:
			require.NoError(t, res.Err)
			assert.Equal(t, float64(i), res.Event.Timestamp)
			assert.IsType(t, PacifyEventValue{}, res.Event.Value)
		case 1:
			require.NoError(t, res.Err)
			assert.True(t, res.Event.IsUnrecognized())
			assert.Equal(t, fmt.Sprintf("Custom%d", i), res.Event.Name)
		default:
			assert.ErrorIs(t, res.Err, ErrMissingField)
		}
	}
}

func TestDecodeBatchDefaultWorkers(t *testing.T) {
	d := NewDispatcher()

	results := d.DecodeBatch([]Record{{Name: "IntroCutEnd"}, {Name: "Agility_Start"}}, 0)
	require.Len(t, results, 2)
	assert.Equal(t, "Agility_Start", results[1].Event.Name)

	assert.Empty(t, d.DecodeBatch(nil, -1))
}
