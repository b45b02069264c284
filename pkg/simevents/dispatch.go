package simevents

import (
	"fmt"
	"slices"
)

// Dispatcher maps event names to variant decoders. It holds no mutable state
// after construction and is safe for concurrent use.
type Dispatcher struct {
	byName map[string]*variant
	names  []string
}

// NewDispatcher builds a dispatcher over the full catalog. Every variant is
// reachable both by the name the simulation emits and by its variant name. A
// name claimed twice is a defect in the catalog and panics.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		byName: map[string]*variant{},
	}

	for _, v := range catalog() {
		d.register(v)
	}

	slices.Sort(d.names)

	return d
}

func (d *Dispatcher) register(v variant) {
	entry := &v

	d.add(v.info.EventName, entry)

	if v.info.Variant != "" && v.info.Variant != v.info.EventName {
		d.add(v.info.Variant, entry)
	}
}

func (d *Dispatcher) add(name string, v *variant) {
	if _, ok := d.byName[name]; ok {
		panic(fmt.Sprintf("simevents: event name %q registered twice", name))
	}

	d.byName[name] = v
	d.names = append(d.names, name)
}

// Dispatch decodes one record. Names outside the catalog are not an error:
// they yield an UnrecognizedValue holding the payload untouched. A failed
// decode returns a *DecodeError naming the event and the offending field.
func (d *Dispatcher) Dispatch(name string, timestamp float64, payload any) (Event, error) {
	ev := Event{Name: name, Timestamp: timestamp}

	v, ok := d.byName[name]
	if !ok {
		ev.Value = UnrecognizedValue{Raw: payload}
		return ev, nil
	}

	if v.info.Marker {
		return ev, nil
	}

	p, ok := AsPayload(payload)
	if !ok {
		return Event{}, &DecodeError{
			EventName: name,
			Reason:    ErrInvalidPayload,
			Detail:    fmt.Sprintf("got %T", payload),
		}
	}

	value, err := v.decode(p)
	if err != nil {
		return Event{}, withEventName(name, err)
	}

	ev.Value = value
	return ev, nil
}

// Names returns every accepted name, sorted.
func (d *Dispatcher) Names() []string {
	return slices.Clone(d.names)
}

// Lookup returns the catalog entry for an event or variant name.
func (d *Dispatcher) Lookup(name string) (VariantInfo, bool) {
	v, ok := d.byName[name]
	if !ok {
		return VariantInfo{}, false
	}

	info := v.info
	info.Required = slices.Clone(v.info.Required)
	return info, true
}

// Variants returns one entry per catalog variant, in catalog order.
func Variants() []VariantInfo {
	all := catalog()

	out := make([]VariantInfo, 0, len(all))
	for _, v := range all {
		out = append(out, v.info)
	}
	return out
}

func withEventName(name string, err error) error {
	de, ok := AsDecodeError(err)
	if !ok {
		return fmt.Errorf("decode %s: %w", name, err)
	}

	out := *de
	out.EventName = name
	return &out
}

var defaultDispatcher = NewDispatcher()

// Dispatch decodes one record with a dispatcher over the full catalog.
func Dispatch(name string, timestamp float64, payload any) (Event, error) {
	return defaultDispatcher.Dispatch(name, timestamp, payload)
}
