// Package decoders turns raw telemetry streams into decoded simulation events
// for the integration pipelines.
package decoders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
	"github.com/valyala/fastjson"
	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformedRecord marks a record whose envelope could not be read. The
// remaining records of the stream are still returned.
var ErrMalformedRecord = errors.New("malformed record")

const envelopeSchema = `{
	"type": "object",
	"required": ["Name", "Timestamp"],
	"properties": {
		"Name": {"type": "string", "minLength": 1},
		"Timestamp": {"type": "number"}
	}
}`

// RecordReader reads {Name, Timestamp, Value} record objects from a stream of
// concatenated JSON values. A top-level array is read as a list of records.
type RecordReader struct {
	schema *gojsonschema.Schema
}

// NewRecordReader builds a reader. With validate set, every record envelope
// is checked against the envelope schema before it is read.
func NewRecordReader(validate bool) (*RecordReader, error) {
	r := &RecordReader{}

	if !validate {
		return r, nil
	}

	schema, err := gojsonschema.NewSchema(
		gojsonschema.NewStringLoader(envelopeSchema),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile envelope schema: %w", err)
	}

	r.schema = schema

	return r, nil
}

// ReadRecords reads records without envelope validation.
func ReadRecords(in io.Reader) ([]simevents.Record, []error) {
	return (&RecordReader{}).Read(in)
}

// Read returns the records in stream order along with one error per record it
// had to skip. A syntax error ends the stream; records read before it are kept.
func (r *RecordReader) Read(in io.Reader) ([]simevents.Record, []error) {
	b, err := io.ReadAll(in)
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read records: %w", err)}
	}

	records := []simevents.Record{}
	errs := []error{}
	index := 0

	add := func(v *fastjson.Value) {
		rec, err := r.record(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %d: %v", ErrMalformedRecord, index, err))
		} else {
			records = append(records, rec)
		}
		index += 1
	}

	var sc fastjson.Scanner
	sc.Init(string(b))

	for sc.Next() {
		v := sc.Value()

		if v.Type() != fastjson.TypeArray {
			add(v)
			continue
		}

		items, _ := v.Array()
		for _, item := range items {
			add(item)
		}
	}

	if err := sc.Error(); err != nil {
		errs = append(errs, fmt.Errorf("%w %d: %v", ErrMalformedRecord, index, err))
	}

	return records, errs
}

func (r *RecordReader) record(v *fastjson.Value) (simevents.Record, error) {
	if r.schema != nil {
		if err := r.validate(v); err != nil {
			return simevents.Record{}, err
		}
	}

	if v.Type() != fastjson.TypeObject {
		return simevents.Record{}, fmt.Errorf("want object, got %s", v.Type())
	}

	name := v.Get("Name")
	if name == nil || name.Type() != fastjson.TypeString {
		return simevents.Record{}, errors.New("Name must be a string")
	}

	nameBytes, _ := name.StringBytes()
	if len(nameBytes) == 0 {
		return simevents.Record{}, errors.New("Name must not be empty")
	}

	ts := v.Get("Timestamp")
	if ts == nil || ts.Type() != fastjson.TypeNumber {
		return simevents.Record{}, errors.New("Timestamp must be a number")
	}

	timestamp, err := ts.Float64()
	if err != nil {
		return simevents.Record{}, fmt.Errorf("Timestamp: %w", err)
	}

	var value any
	if raw := v.Get("Value"); raw != nil {
		value = toTree(raw)
	}

	return simevents.Record{
		Name:      string(nameBytes),
		Timestamp: timestamp,
		Value:     value,
	}, nil
}

func (r *RecordReader) validate(v *fastjson.Value) error {
	result, err := r.schema.Validate(gojsonschema.NewBytesLoader(v.MarshalTo(nil)))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	msgs := []string{}
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}

	return fmt.Errorf("invalid envelope: %s", strings.Join(msgs, "; "))
}

// toTree converts a parsed value into the plain tree a simevents.Payload reads.
// Numbers keep their source text as json.Number so ids survive unrounded.
func toTree(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		o, _ := v.Object()

		m := make(map[string]any, o.Len())
		o.Visit(func(key []byte, item *fastjson.Value) {
			m[string(key)] = toTree(item)
		})
		return m

	case fastjson.TypeArray:
		items, _ := v.Array()

		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, toTree(item))
		}
		return out

	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return string(b)

	case fastjson.TypeNumber:
		return json.Number(v.MarshalTo(nil))

	case fastjson.TypeTrue:
		return true

	case fastjson.TypeFalse:
		return false
	}

	return nil
}
