// Package simevents decodes loosely typed simulation telemetry records into a
// closed catalog of typed event values.
//
// A record is a name, a timestamp and an untyped payload. The Dispatcher picks
// the variant for the name and decodes the payload into it. Unknown names are
// expected across simulation versions and yield an UnrecognizedValue instead
// of an error. Data problems on known names surface as *DecodeError.
package simevents

// Event is one decoded record. Value is nil for marker events, which carry no
// payload.
type Event struct {
	Name      string
	Timestamp float64
	Value     Value
}

// Value is implemented only by the variants in this package.
type Value interface {
	VariantName() string
	simEventValue()
}

// UnrecognizedValue is the fallback for event names outside the catalog. Raw
// is the payload exactly as it was passed in.
type UnrecognizedValue struct {
	Raw any
}

func (UnrecognizedValue) VariantName() string { return "Unrecognized" }
func (UnrecognizedValue) simEventValue() {}

// IsUnrecognized reports whether e fell through to the fallback variant.
func (e Event) IsUnrecognized() bool {
	_, ok := e.Value.(UnrecognizedValue)
	return ok
}

// IsMarker reports whether e is a known event that carries no value.
func (e Event) IsMarker() bool {
	return e.Value == nil
}
