package decoders

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords_JsonLines(t *testing.T) {
	in := `{"Name":"ItemPickedUp","Timestamp":12.5,"Value":{"ItemInstanceId":18446744073709551615,"Tags":["a",1,true,null]}}
{"Name":"IntroCutEnd","Timestamp":13}
`

	records, errs := ReadRecords(strings.NewReader(in))

	assert.Empty(t, errs)
	require.Len(t, records, 2)

	assert.Equal(t, "ItemPickedUp", records[0].Name)
	assert.Equal(t, 12.5, records[0].Timestamp)

	value, ok := records[0].Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("18446744073709551615"), value["ItemInstanceId"])
	assert.Equal(t, []any{"a", json.Number("1"), true, nil}, value["Tags"])

	assert.Equal(t, "IntroCutEnd", records[1].Name)
	assert.Nil(t, records[1].Value)
}

func TestReadRecords_TopLevelArray(t *testing.T) {
	in := `[{"Name":"A","Timestamp":1},{"Name":"B","Timestamp":2}] {"Name":"C","Timestamp":3}`

	records, errs := ReadRecords(strings.NewReader(in))

	assert.Empty(t, errs)
	require.Len(t, records, 3)
	assert.Equal(t, "A", records[0].Name)
	assert.Equal(t, "B", records[1].Name)
	assert.Equal(t, "C", records[2].Name)
}

func TestReadRecords_SkipsMalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   string
	}{
		{"missing name", `{"Timestamp":1}`, "Name must be a string"},
		{"empty name", `{"Name":"","Timestamp":1}`, "Name must not be empty"},
		{"string timestamp", `{"Name":"A","Timestamp":"1"}`, "Timestamp must be a number"},
		{"not an object", `42`, "want object"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in := `{"Name":"First","Timestamp":0}` + "\n" + test.record + "\n" +
				`{"Name":"Last","Timestamp":2}`

			records, errs := ReadRecords(strings.NewReader(in))

			require.Len(t, errs, 1)
			assert.ErrorIs(t, errs[0], ErrMalformedRecord)
			assert.ErrorContains(t, errs[0], "malformed record 1")
			assert.ErrorContains(t, errs[0], test.want)

			require.Len(t, records, 2)
			assert.Equal(t, "First", records[0].Name)
			assert.Equal(t, "Last", records[1].Name)
		})
	}
}

func TestReadRecords_SyntaxErrorEndsStream(t *testing.T) {
	in := `{"Name":"A","Timestamp":1}` + "\n" + `{"Name":`

	records, errs := ReadRecords(strings.NewReader(in))

	require.Len(t, records, 1)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrMalformedRecord)
}

func TestRecordReader_EnvelopeValidation(t *testing.T) {
	reader, err := NewRecordReader(true)
	require.NoError(t, err)

	in := `{"Name":"A","Timestamp":1,"Value":{}}
{"Name":"","Timestamp":1}
{"Name":"B"}`

	records, errs := reader.Read(strings.NewReader(in))

	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0].Name)

	require.Len(t, errs, 2)
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrMalformedRecord)
		assert.ErrorContains(t, err, "invalid envelope")
	}
}

func TestReadRecords_Empty(t *testing.T) {
	records, errs := ReadRecords(strings.NewReader("  \n"))

	assert.Empty(t, records)
	assert.Empty(t, errs)
}
