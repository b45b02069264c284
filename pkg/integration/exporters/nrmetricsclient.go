package exporters

import (
	"context"
	"encoding/json"
	"io"

	"github.com/newrelic/newrelic-client-go/pkg/region"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/build"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/connectors"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
)

// NRMetricsPayload represents New Relic Metrics Payload format
// https://docs.newrelic.com/docs/data-ingest-apis/get-data-new-relic/metric-api/report-metrics-metric-api#new-relic-guidelines
type NRMetricsPayload struct {
	Common  NRMetricsCommon `json:"common"`
	Metrics []NRMetric      `json:"metrics"`
}

// NRMetricsCommon common attributes to apply for New Relic Metrics Format
type NRMetricsCommon struct {
	Attributes map[string]interface{} `json:"attributes"`
}

// NRMetric metric for New Relic Metrics Format
type NRMetric struct {
	Name       string                 `json:"name"`
	Value      interface{}            `json:"value,omitempty"`
	Type       string                 `json:"type,omitempty"`
	Timestamp  int64                  `json:"timestamp,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	IntervalMs float64                `json:"interval.ms,omitempty"`
}

type NewRelicMetricsClient struct {
	buildInfo  build.BuildInfo
	licenseKey string
	client     *connectors.HttpConnector
	dryRun     bool
}

func NewNewRelicMetricsClient(
	buildInfo build.BuildInfo,
	licenseKey string,
	region region.Name,
	dryRun bool,
) *NewRelicMetricsClient {
	return &NewRelicMetricsClient{
		buildInfo:  buildInfo,
		licenseKey: licenseKey,
		client:     connectors.NewHttpPostConnector(getMetricsUrl(region), nil),
		dryRun:     dryRun,
	}
}

func (c *NewRelicMetricsClient) PostMetrics(
	ctx context.Context,
	metrics []NRMetric,
) error {
	if len(metrics) == 0 {
		return nil
	}

	payload := c.newMetricsPayload(metrics)

	body, err := json.Marshal([]interface{}{payload})
	if err != nil {
		return err
	}

	if c.dryRun || log.IsDebugEnabled() {
		log.Debugf("metrics payload JSON follows")
		log.PrettyPrintJson(payload)

		if c.dryRun {
			return nil
		}
	}

	c.client.SetHeaders(map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
		"Api-Key":      c.licenseKey,
	})
	c.client.SetBody(body)

	log.Debugf("posting metrics to New Relic endpoint")

	readCloser, err := c.client.Request(ctx)
	if err != nil {
		return err
	}

	defer readCloser.Close()

	if log.IsDebugEnabled() {
		log.Debugf("metrics response payload follows")

		bytes, err := io.ReadAll(readCloser)
		if err != nil {
			log.Warnf("error reading metrics response: %v", err)
		} else {
			log.Debugf(string(bytes))
		}
	}

	return nil
}

func (c *NewRelicMetricsClient) newMetricsPayload(
	nrMetrics []NRMetric,
) *NRMetricsPayload {
	return &NRMetricsPayload{
		Common: NRMetricsCommon{
			Attributes: map[string]interface{}{
				"instrumentation.name":     c.buildInfo.Name,
				"instrumentation.provider": "newrelic-labs",
				"instrumentation.version":  c.buildInfo.Version,
				"collector.name":           c.buildInfo.Id,
			},
		},
		Metrics: nrMetrics,
	}
}

func getMetricsUrl(nrRegion region.Name) string {
	if nrRegion == region.EU {
		return "https://metric-api.eu.newrelic.com/metric/v1"
	}

	return "https://metric-api.newrelic.com/metric/v1"
}
