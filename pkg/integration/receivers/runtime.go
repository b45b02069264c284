// Package receivers holds metric receivers that report on the decoder process
// itself.
package receivers

import (
	"context"
	"fmt"
	"runtime/metrics"
	"time"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/model"
)

// Runtime metrics reported as gauges, keyed by runtime/metrics name.
var runtimeGauges = map[string]string{
	"/memory/classes/heap/objects:bytes": "simevents.runtime.heapObjectsBytes",
	"/sched/goroutines:goroutines":       "simevents.runtime.goroutines",
}

type RuntimeReceiver struct {
	id  string
	now func() time.Time
}

func NewRuntimeReceiver(id string) *RuntimeReceiver {
	return &RuntimeReceiver{id: id, now: time.Now}
}

func (r *RuntimeReceiver) GetId() string {
	return r.id
}

func (r *RuntimeReceiver) PollMetrics(
	ctx context.Context,
	writer chan<- model.Metric,
) error {
	log.Debugf("reading runtime metrics")

	samples := make([]metrics.Sample, 0, len(runtimeGauges))
	for name := range runtimeGauges {
		samples = append(samples, metrics.Sample{Name: name})
	}

	metrics.Read(samples)

	now := r.now()

	for _, sample := range samples {
		if sample.Value.Kind() != metrics.KindUint64 {
			return fmt.Errorf("metric %q no longer supported", sample.Name)
		}

		writer <- model.NewGaugeMetric(
			runtimeGauges[sample.Name],
			model.MakeNumeric(int64(sample.Value.Uint64())),
			now,
		)
	}

	return nil
}
