package exporters

import (
	"context"
	"fmt"
	"strconv"
	"time"

	nriSdkMetrics "github.com/newrelic/infra-integrations-sdk/v4/data/metric"
	nriSdk "github.com/newrelic/infra-integrations-sdk/v4/integration"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/build"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/model"
	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
)

// NewRelicInfraExporter adds metrics to the host entity of an infrastructure
// integration. They are written out when the integration publishes.
type NewRelicInfraExporter struct {
	id        string
	buildInfo build.BuildInfo
	i         *nriSdk.Integration
}

func NewNewRelicInfraExporter(
	id string,
	buildInfo build.BuildInfo,
	i *nriSdk.Integration,
) *NewRelicInfraExporter {
	return &NewRelicInfraExporter{
		id:        id,
		buildInfo: buildInfo,
		i:         i,
	}
}

func (e *NewRelicInfraExporter) GetId() string {
	return e.id
}

func (e *NewRelicInfraExporter) ExportMetrics(
	ctx context.Context,
	metrics []model.Metric,
) error {
	log.Debugf("adding %d metrics to host entity", len(metrics))

	entity := e.i.HostEntity

	for i := 0; i < len(metrics); i += 1 {
		metric := metrics[i]

		var (
			nriMetric nriSdkMetrics.Metric
			err       error
		)

		switch metric.Type {
		case model.Gauge:
			nriMetric, err = nriSdk.Gauge(
				time.UnixMilli(metric.Timestamp),
				metric.Name,
				metric.Value.Float(),
			)
			if err != nil {
				return fmt.Errorf("error creating gauge metric: %w", err)
			}

		case model.Count:
			// The interval is the harvest cycle; the agent does not carry it.
			nriMetric, err = nriSdk.Count(
				time.UnixMilli(metric.Timestamp),
				metric.Name,
				metric.Value.Float(),
			)
			if err != nil {
				return fmt.Errorf("error creating count metric: %w", err)
			}

		default:
			log.Warnf("skipping metric %s of unsupported type %d", metric.Name, metric.Type)
			continue
		}

		e.addAttributes(&metric, nriMetric)
		entity.AddMetric(nriMetric)
	}

	return nil
}

func (e *NewRelicInfraExporter) ExportEvents(
	ctx context.Context,
	events []simevents.Event,
) error {
	return fmt.Errorf("the new relic infrastructure exporter does not support exporting New Relic Events data")
}

func (e *NewRelicInfraExporter) ExportLogs(
	ctx context.Context,
	logs []model.Log,
) error {
	return fmt.Errorf("the new relic infrastructure exporter does not support exporting New Relic Logs data")
}

func (e *NewRelicInfraExporter) addAttributes(
	metric *model.Metric,
	nriMetric nriSdkMetrics.Metric,
) {
	nriMetric.AddDimension("instrumentation.name", e.buildInfo.Name)
	nriMetric.AddDimension("instrumentation.provider", "newrelic-labs")
	nriMetric.AddDimension("instrumentation.version", e.buildInfo.Version)
	nriMetric.AddDimension("collector.name", e.buildInfo.Id)

	for k, v := range metric.Attributes {
		if val, ok := dimension(v); ok {
			nriMetric.AddDimension(k, val)
			continue
		}

		log.Warnf("metric attribute of unsupported type: %s: %v", k, v)
	}
}

// dimension renders an attribute value as the string the agent expects.
func dimension(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', 2, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64), true
	case fmt.Stringer:
		return val.String(), true
	}

	return "", false
}
