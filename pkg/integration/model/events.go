package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
)

const SimEventType = "SimEvent"

// Event model
type Event struct {
	Type       string
	Timestamp  int64
	Attributes map[string]any
}

// Make a event.
func NewEvent(eventType string, attributes map[string]any, timestamp time.Time) Event {
	attrs := attributes
	if attrs == nil {
		attrs = make(map[string]any)
	}

	return Event{
		Type:       eventType,
		Timestamp:  timestamp.UnixMilli(),
		Attributes: attrs,
	}
}

// NewSimEvent flattens a decoded event into export form. The simulation clock
// goes to simTimestamp; Timestamp is the wall clock at harvest.
func NewSimEvent(ev simevents.Event, harvestTime time.Time) Event {
	attrs := Flatten(ev.Value)

	attrs["eventId"] = uuid.NewString()
	attrs["name"] = ev.Name
	attrs["simTimestamp"] = ev.Timestamp

	variant := "Marker"
	if ev.Value != nil {
		variant = ev.Value.VariantName()
	}
	attrs["variant"] = variant

	return NewEvent(SimEventType, attrs, harvestTime)
}
