package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/build"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/pipeline"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/receivers"
)

const (
	INTEGRATION_ID   = "com.newrelic.labs.simevents"
	INTEGRATION_NAME = "New Relic SimEvents Decoder"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildInfo := build.NewBuildInfo(INTEGRATION_NAME, INTEGRATION_ID)

	i, err := integration.NewStandaloneIntegration(
		buildInfo,
		INTEGRATION_NAME,
		integration.WithInterval(integration.DEFAULT_INTERVAL),
		integration.WithExportSetup(ctx),
	)
	fatalIfErr(err)

	source, err := integration.NewSource()
	fatalIfErr(err)

	exporters, err := i.NewExporters()
	fatalIfErr(err)

	err = i.AddSimEventsPipelines(source, exporters)
	fatalIfErr(err)

	// Process health rides along with the decode stats.
	if exporters.Metrics != nil {
		mp := pipeline.NewMetricsPipeline("simevents-runtime")
		mp.AddReceiver(receivers.NewRuntimeReceiver("runtime"))
		mp.AddExporter(exporters.Metrics)
		i.AddPipeline(mp)
	}

	defer i.Shutdown(context.Background())

	err = i.Run(ctx)
	fatalIfErr(err)
}

func fatalIfErr(err error) {
	if err != nil {
		log.Fatalf(err)
	}
}
