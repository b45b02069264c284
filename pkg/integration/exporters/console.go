package exporters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/model"
	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
)

// ConsoleExporter writes telemetry as JSON lines. Events keep their typed
// value so a consumer reading the stream sees every decoded field.
type ConsoleExporter struct {
	id  string
	mu  sync.Mutex
	enc *json.Encoder
}

type consoleEvent struct {
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Timestamp float64         `json:"timestamp"`
	Variant   string          `json:"variant"`
	Value     simevents.Value `json:"value"`
}

type consoleMetric struct {
	Kind       string         `json:"kind"`
	Name       string         `json:"name"`
	Value      any            `json:"value"`
	Timestamp  int64          `json:"timestamp"`
	IntervalMs int64          `json:"interval.ms,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type consoleLog struct {
	Kind       string         `json:"kind"`
	Message    string         `json:"message"`
	Timestamp  int64          `json:"timestamp"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

func NewConsoleExporter(id string, w io.Writer) *ConsoleExporter {
	return &ConsoleExporter{
		id:  id,
		enc: json.NewEncoder(w),
	}
}

func (e *ConsoleExporter) GetId() string {
	return e.id
}

func (e *ConsoleExporter) write(v any) error {
	if err := e.enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}

func (e *ConsoleExporter) ExportEvents(
	ctx context.Context,
	events []simevents.Event,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, ev := range events {
		variant := "Marker"
		if ev.Value != nil {
			variant = ev.Value.VariantName()
		}

		err := e.write(consoleEvent{
			Kind:      "event",
			Name:      ev.Name,
			Timestamp: ev.Timestamp,
			Variant:   variant,
			Value:     ev.Value,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *ConsoleExporter) ExportMetrics(
	ctx context.Context,
	metrics []model.Metric,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, m := range metrics {
		err := e.write(consoleMetric{
			Kind:       "metric",
			Name:       m.Name,
			Value:      m.Value.Value(),
			Timestamp:  m.Timestamp,
			IntervalMs: m.Interval.Milliseconds(),
			Attributes: m.Attributes,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *ConsoleExporter) ExportLogs(
	ctx context.Context,
	logs []model.Log,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, l := range logs {
		err := e.write(consoleLog{
			Kind:       "log",
			Message:    l.Message,
			Timestamp:  l.Timestamp,
			Attributes: l.Attributes,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
