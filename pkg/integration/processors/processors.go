// Package processors holds the event processors the integration can chain
// into an events pipeline.
package processors

import (
	"cmp"
	"slices"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/pipeline"
	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
)

// DropUnrecognized removes events whose name the catalog does not know.
func DropUnrecognized(data []simevents.Event) ([]simevents.Event, error) {
	out := make([]simevents.Event, 0, len(data))

	for _, ev := range data {
		if ev.IsUnrecognized() {
			continue
		}
		out = append(out, ev)
	}

	if dropped := len(data) - len(out); dropped > 0 {
		log.Debugf("dropped %d unrecognized events", dropped)
	}

	return out, nil
}

// IncludeNames keeps only events with one of the given names. Either the event
// name or the variant name matches. No names keeps everything.
func IncludeNames(names ...string) pipeline.ProcessorFunc[simevents.Event] {
	include := make(map[string]struct{}, len(names))
	for _, name := range names {
		include[name] = struct{}{}
	}

	return func(data []simevents.Event) ([]simevents.Event, error) {
		if len(include) == 0 {
			return data, nil
		}

		out := make([]simevents.Event, 0, len(data))

		for _, ev := range data {
			if _, ok := include[ev.Name]; ok {
				out = append(out, ev)
				continue
			}

			if ev.Value == nil {
				continue
			}

			if _, ok := include[ev.Value.VariantName()]; ok {
				out = append(out, ev)
			}
		}

		return out, nil
	}
}

// SortByTimestamp orders a batch by simulation time. Events with equal
// timestamps keep their stream order.
func SortByTimestamp(data []simevents.Event) ([]simevents.Event, error) {
	slices.SortStableFunc(data, func(a, b simevents.Event) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})

	return data, nil
}
