package integration

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/connectors"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/decoders"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/exporters"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/pipeline"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/processors"
	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
	"github.com/spf13/viper"
)

// Exporters routes each telemetry type. A nil exporter drops that type.
type Exporters struct {
	Events  pipeline.EventsExporter
	Metrics pipeline.MetricsExporter
	Logs    pipeline.LogsExporter
}

// NewSource builds the connector named by source.type.
func NewSource() (connectors.Connector, error) {
	switch sourceType := getSourceType(); sourceType {
	case SOURCE_FILE:
		path := viper.GetString("source.path")
		if path == "" {
			return nil, fmt.Errorf("missing source.path for file source")
		}

		return connectors.NewFileConnector(path), nil

	case SOURCE_HTTP:
		url := viper.GetString("source.url")
		if url == "" {
			return nil, fmt.Errorf("missing source.url for http source")
		}

		c := connectors.NewHttpGetConnector(url)
		c.SetTimeout(
			time.Duration(getIntOrDefault("source.timeout", DEFAULT_SOURCE_TIMEOUT)) * time.Second,
		)
		c.SetRetries(getIntOrDefault("source.retries", DEFAULT_SOURCE_RETRIES), time.Second)

		return c, nil

	case SOURCE_KAFKA:
		brokers := viper.GetStringSlice("source.brokers")
		topic := viper.GetString("source.topic")

		if len(brokers) == 0 || topic == "" {
			return nil, fmt.Errorf("missing source.brokers or source.topic for kafka source")
		}

		c := connectors.NewKafkaConnector(brokers, topic, viper.GetString("source.groupId"))
		c.SetBatch(
			getIntOrDefault("source.batchSize", DEFAULT_KAFKA_BATCH_SIZE),
			time.Duration(getIntOrDefault("source.maxWait", DEFAULT_KAFKA_MAX_WAIT))*time.Millisecond,
		)

		return c, nil

	default:
		return nil, fmt.Errorf("unsupported source type %q", sourceType)
	}
}

// NewExporters builds the exporters named by exporter.type.
func (i *Integration) NewExporters() (Exporters, error) {
	switch exporterType := getExporterType(); exporterType {
	case EXPORTER_NEWRELIC:
		e := exporters.NewNewRelicExporter(
			"newrelic",
			i.BuildInfo,
			i.NrClient,
			i.licenseKey,
			i.region,
			i.DryRun,
		)
		return Exporters{Events: e, Metrics: e, Logs: e}, nil

	case EXPORTER_CONSOLE:
		e := exporters.NewConsoleExporter("console", os.Stdout)
		return Exporters{Events: e, Metrics: e, Logs: e}, nil

	case EXPORTER_INFRA:
		if i.Integration == nil {
			return Exporters{}, fmt.Errorf("the infra exporter needs an infrastructure integration")
		}

		// The agent takes metrics only; decoded events are counted and dropped.
		e := exporters.NewNewRelicInfraExporter("infra", i.BuildInfo, i.Integration)
		return Exporters{Metrics: e}, nil

	default:
		return Exporters{}, fmt.Errorf("unsupported exporter type %q", exporterType)
	}
}

// AddSimEventsPipelines wires source through the event decoder to exp. The
// events pipeline runs first so the decode stats it gathers are harvested by
// the stats pipelines in the same cycle.
func (i *Integration) AddSimEventsPipelines(
	source connectors.Connector,
	exp Exporters,
) error {
	stats := decoders.NewStats("simevents-stats", viper.GetInt("decoder.maxFailureLogs"))

	decoder, err := decoders.NewSimEventsDecoder(
		simevents.NewDispatcher(),
		stats,
		decoders.WithWorkers(viper.GetInt("decoder.workers")),
		decoders.WithEnvelopeValidation(viper.GetBool("decoder.validateEnvelope")),
		decoders.WithApplication(i.App),
	)
	if err != nil {
		return err
	}

	if closer, ok := source.(io.Closer); ok {
		i.closers = append(i.closers, closer)
	}

	ep := pipeline.NewEventsPipeline("simevents")
	ep.AddReceiver(pipeline.NewSimpleReceiver(
		"simevents-source",
		source,
		pipeline.WithEventsDecoder(decoder),
	))

	if viper.GetBool("decoder.dropUnrecognized") {
		ep.AddProcessor(processors.DropUnrecognized)
	}

	if names := viper.GetStringSlice("decoder.include"); len(names) > 0 {
		log.Debugf("including only events %v", names)
		ep.AddProcessor(processors.IncludeNames(names...))
	}

	ep.AddProcessor(processors.SortByTimestamp)

	if exp.Events != nil {
		ep.AddExporter(exp.Events)
	}

	i.AddPipeline(ep)

	if exp.Metrics != nil {
		mp := pipeline.NewMetricsPipeline("simevents-stats-metrics")
		mp.AddReceiver(stats)
		mp.AddExporter(exp.Metrics)
		i.AddPipeline(mp)
	}

	if exp.Logs != nil {
		lp := pipeline.NewLogsPipeline("simevents-stats-logs")
		lp.AddReceiver(stats)
		lp.AddExporter(exp.Logs)
		i.AddPipeline(lp)
	}

	return nil
}
