package integration

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/build"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/connectors"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/decoders"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/exporters"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/model"
	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu      sync.Mutex
	events  []simevents.Event
	metrics []model.Metric
	logs    []model.Log
}

func (c *collector) GetId() string {
	return "collector"
}

func (c *collector) ExportEvents(ctx context.Context, events []simevents.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = append(c.events, events...)
	return nil
}

func (c *collector) ExportMetrics(ctx context.Context, metrics []model.Metric) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.metrics = append(c.metrics, metrics...)
	return nil
}

func (c *collector) ExportLogs(ctx context.Context, logs []model.Log) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logs = append(c.logs, logs...)
	return nil
}

func resetViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func newTestIntegration(t *testing.T) *Integration {
	t.Helper()

	i, err := newIntegration(
		build.NewBuildInfo("SimEvents", "com.newrelic.labs.simevents"),
		nil,
		nil,
		log.RootLogger,
		false,
		true,
		nil,
	)
	require.NoError(t, err)

	return i
}

const records = `{"Name":"Trespassing","Timestamp":2,"Value":{"IsTrespassing":true}}
{"Name":"Mystery","Timestamp":1,"Value":{}}
{"Name":"Trespassing","Timestamp":3,"Value":{}}
{"Name":"IntroCutEnd","Timestamp":0}
`

func TestIntegration_RunOnceFromFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(records), 0644))

	viper.Set("source.type", "file")
	viper.Set("source.path", path)
	viper.Set("decoder.dropUnrecognized", true)

	source, err := NewSource()
	require.NoError(t, err)

	c := &collector{}

	i := newTestIntegration(t)
	require.NoError(t, i.AddSimEventsPipelines(source, Exporters{
		Events:  c,
		Metrics: c,
		Logs:    c,
	}))

	require.NoError(t, i.Run(context.Background()))

	names := []string{}
	for _, ev := range c.events {
		names = append(names, ev.Name)
	}
	assert.Equal(t, []string{"IntroCutEnd", "Trespassing"}, names)

	counts := map[string]int64{}
	for _, m := range c.metrics {
		counts[m.Name] += m.Value.Int()
	}
	assert.Equal(t, int64(2), counts[decoders.MetricDecoded])
	assert.Equal(t, int64(1), counts[decoders.MetricFailed])
	assert.Equal(t, int64(1), counts[decoders.MetricUnrecognized])

	require.Len(t, c.logs, 1)
	assert.Equal(t, "IsTrespassing", c.logs[0].Attributes["field"])

	// Nothing new in the file: the next harvest is empty.
	c.events = nil
	require.NoError(t, i.Run(context.Background()))
	assert.Empty(t, c.events)
}

func TestIntegration_IncludeNames(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(records), 0644))

	viper.Set("source.path", path)
	viper.Set("decoder.include", []string{"TrespassingEventValue"})

	source, err := NewSource()
	require.NoError(t, err)

	c := &collector{}

	i := newTestIntegration(t)
	require.NoError(t, i.AddSimEventsPipelines(source, Exporters{Events: c}))
	require.NoError(t, i.Run(context.Background()))

	require.Len(t, c.events, 1)
	assert.Equal(t, 2.0, c.events[0].Timestamp)
}

func TestIntegration_RunReportsSourceErrors(t *testing.T) {
	resetViper(t)

	viper.Set("source.path", filepath.Join(t.TempDir(), "missing.jsonl"))

	source, err := NewSource()
	require.NoError(t, err)

	i := newTestIntegration(t)
	require.NoError(t, i.AddSimEventsPipelines(source, Exporters{Events: &collector{}}))

	err = i.Run(context.Background())
	assert.ErrorContains(t, err, "pipeline simevents")
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		name    string
		config  map[string]any
		wantErr string
		check   func(t *testing.T, c connectors.Connector)
	}{
		{
			name:    "file needs a path",
			config:  map[string]any{"source.type": "file"},
			wantErr: "missing source.path",
		},
		{
			name:   "http",
			config: map[string]any{"source.type": "HTTP", "source.url": "http://example.com/events", "source.retries": 0},
			check: func(t *testing.T, c connectors.Connector) {
				h, ok := c.(*connectors.HttpConnector)
				require.True(t, ok)
				assert.Equal(t, "http://example.com/events", h.Url)
				assert.Equal(t, 0, h.Retries)
			},
		},
		{
			name:    "http needs a url",
			config:  map[string]any{"source.type": "http"},
			wantErr: "missing source.url",
		},
		{
			name:    "kafka needs brokers",
			config:  map[string]any{"source.type": "kafka", "source.topic": "events"},
			wantErr: "missing source.brokers",
		},
		{
			name:    "unknown",
			config:  map[string]any{"source.type": "carrier-pigeon"},
			wantErr: `unsupported source type "carrier-pigeon"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resetViper(t)

			for k, v := range test.config {
				viper.Set(k, v)
			}

			c, err := NewSource()
			if test.wantErr != "" {
				assert.ErrorContains(t, err, test.wantErr)
				return
			}

			require.NoError(t, err)
			test.check(t, c)
		})
	}
}

func TestNewExporters(t *testing.T) {
	resetViper(t)

	i := newTestIntegration(t)

	exp, err := i.NewExporters()
	require.NoError(t, err)
	_, ok := exp.Events.(*exporters.NewRelicExporter)
	assert.True(t, ok)

	viper.Set("exporter.type", "console")
	exp, err = i.NewExporters()
	require.NoError(t, err)
	_, ok = exp.Logs.(*exporters.ConsoleExporter)
	assert.True(t, ok)

	viper.Set("exporter.type", "infra")
	_, err = i.NewExporters()
	assert.ErrorContains(t, err, "needs an infrastructure integration")

	viper.Set("exporter.type", "smoke-signals")
	_, err = i.NewExporters()
	assert.ErrorContains(t, err, "unsupported exporter type")
}

func TestWithInterval(t *testing.T) {
	resetViper(t)

	i := newTestIntegration(t)

	require.NoError(t, WithInterval(30)(i))
	assert.Equal(t, "30s", i.Interval.String())

	viper.Set("interval", 5)
	require.NoError(t, WithInterval(30)(i))
	assert.Equal(t, "5s", i.Interval.String())
}

func TestWithExportSetup_DryRunNeedsNoKeys(t *testing.T) {
	resetViper(t)
	t.Setenv("NEW_RELIC_LICENSE_KEY", "")
	t.Setenv("NEW_RELIC_REGION", "")

	i := newTestIntegration(t)

	require.NoError(t, WithExportSetup(context.Background())(i))
	assert.Nil(t, i.NrClient)
	assert.NotEmpty(t, i.GetRegion())
}

func TestConfigWithFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  type: kafka\n  topic: sim\n"), 0644))

	require.NoError(t, NewConfigWithFile(path))
	assert.Equal(t, "kafka", viper.GetString("source.type"))
	assert.Equal(t, "sim", viper.GetString("source.topic"))
}

func TestUtil_Getters(t *testing.T) {
	resetViper(t)
	t.Setenv("NEW_RELIC_LICENSE_KEY", "")
	t.Setenv("NEW_RELIC_ACCOUNT_ID", "")

	_, err := getLicenseKey()
	assert.ErrorContains(t, err, "missing New Relic license key")

	viper.Set("licenseKey", "abc")
	key, err := getLicenseKey()
	require.NoError(t, err)
	assert.Equal(t, "abc", key)

	t.Setenv("NEW_RELIC_ACCOUNT_ID", "not-a-number")
	_, err = getAccountId()
	assert.ErrorContains(t, err, "invalid New Relic account ID")

	assert.Equal(t, EXPORTER_NEWRELIC, getExporterType())
	assert.Equal(t, SOURCE_FILE, getSourceType())
}
