package exporters

import (
	"context"
	"fmt"
	"time"

	nrClient "github.com/newrelic/newrelic-client-go/newrelic"
	"github.com/newrelic/newrelic-client-go/pkg/region"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/build"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/model"
	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
)

type NewRelicExporter struct {
	id            string
	buildInfo     build.BuildInfo
	nrClient      *nrClient.NewRelic
	metricsClient *NewRelicMetricsClient
	dryRun        bool
	now           func() time.Time
}

func NewNewRelicExporter(
	id string,
	buildInfo build.BuildInfo,
	nrClient *nrClient.NewRelic,
	licenseKey string,
	region region.Name,
	dryRun bool,
) *NewRelicExporter {
	return &NewRelicExporter{
		id:        id,
		buildInfo: buildInfo,
		nrClient:  nrClient,
		metricsClient: NewNewRelicMetricsClient(
			buildInfo,
			licenseKey,
			region,
			dryRun,
		),
		dryRun: dryRun,
		now:    time.Now,
	}
}

func (e *NewRelicExporter) GetId() string {
	return e.id
}

func (e *NewRelicExporter) instrumentation() map[string]any {
	return map[string]any{
		"instrumentation.name":     e.buildInfo.Name,
		"instrumentation.provider": "newrelic-labs",
		"instrumentation.version":  e.buildInfo.Version,
		"collector.name":           e.buildInfo.Id,
	}
}

func (e *NewRelicExporter) ExportMetrics(
	ctx context.Context,
	metrics []model.Metric,
) error {
	log.Debugf("exporting metrics to New Relic")

	return e.metricsClient.PostMetrics(ctx, processMetrics(metrics))
}

// eventPayload is the flat map the Event API ingests.
func (e *NewRelicExporter) eventPayload(event model.Event) map[string]any {
	evt := map[string]any{}

	for k, v := range event.Attributes {
		evt[k] = v
	}

	for k, v := range e.instrumentation() {
		evt[k] = v
	}

	evt["eventType"] = event.Type
	evt["timestamp"] = event.Timestamp

	return evt
}

func (e *NewRelicExporter) ExportEvents(
	ctx context.Context,
	events []simevents.Event,
) error {
	log.Debugf("exporting %d events to New Relic", len(events))

	harvestTime := e.now()

	for _, event := range events {
		evt := e.eventPayload(model.NewSimEvent(event, harvestTime))

		if e.dryRun || log.IsDebugEnabled() {
			log.Debugf("event payload JSON follows")
			log.PrettyPrintJson(evt)

			if e.dryRun {
				continue
			}
		}

		if err := e.nrClient.Events.EnqueueEvent(ctx, evt); err != nil {
			return fmt.Errorf("failed to enqueue event: %w", err)
		}
	}

	if e.dryRun {
		return nil
	}

	log.Debugf("all events enqueued; flushing events")

	return e.nrClient.Events.Flush()
}

func (e *NewRelicExporter) ExportLogs(
	ctx context.Context,
	logs []model.Log,
) error {
	log.Debugf("exporting logs to New Relic")

	for _, l := range logs {
		logEntry := NRLogEntry{
			Message:    l.Message,
			Timestamp:  l.Timestamp,
			Attributes: map[string]interface{}{},
		}

		for k, v := range l.Attributes {
			logEntry.Attributes[k] = v
		}

		for k, v := range e.instrumentation() {
			logEntry.Attributes[k] = v
		}

		if e.dryRun || log.IsDebugEnabled() {
			log.Debugf("log payload JSON follows")
			log.PrettyPrintJson(logEntry)

			if e.dryRun {
				continue
			}
		}

		if err := e.nrClient.Logs.EnqueueLogEntry(ctx, logEntry); err != nil {
			return fmt.Errorf("failed to enqueue log: %w", err)
		}
	}

	if e.dryRun {
		return nil
	}

	log.Debugf("all logs enqueued; flushing logs")

	return e.nrClient.Logs.Flush()
}

type NRLogEntry struct {
	Message    string                 `json:"message"`
	Timestamp  int64                  `json:"timestamp"`
	Attributes map[string]interface{} `json:"attributes"`
}

func processMetrics(metrics []model.Metric) []NRMetric {
	nrMetrics := []NRMetric{}

	for i := 0; i < len(metrics); i += 1 {
		metric := metrics[i]

		nrMetric := NRMetric{
			Name:       metric.Name,
			Value:      metric.Value.Value(),
			Timestamp:  metric.Timestamp,
			Attributes: metric.Attributes,
		}

		switch metric.Type {
		case model.Gauge:
			nrMetric.Type = "gauge"

		case model.Count:
			nrMetric.Type = "count"
			nrMetric.IntervalMs = float64(metric.Interval.Milliseconds())
		}

		nrMetrics = append(nrMetrics, nrMetric)
	}

	return nrMetrics
}
