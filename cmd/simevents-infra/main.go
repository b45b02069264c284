package main

import (
	"context"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/build"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/exporters"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
)

const (
	INTEGRATION_ID   = "com.newrelic.labs.simevents"
	INTEGRATION_NAME = "nri-simevents"
)

func main() {
	ctx := context.Background()

	buildInfo := build.NewBuildInfo(INTEGRATION_NAME, INTEGRATION_ID)

	i, err := integration.NewInfraIntegration(buildInfo, "NRI_SIMEVENTS")
	fatalIfErr(err)

	source, err := integration.NewSource()
	fatalIfErr(err)

	// Under the agent only decode stats are reported, as host entity metrics.
	infraExporter := exporters.NewNewRelicInfraExporter("infra", buildInfo, i.Integration)

	err = i.AddSimEventsPipelines(source, integration.Exporters{Metrics: infraExporter})
	fatalIfErr(err)

	defer i.Shutdown(ctx)

	err = i.Run(ctx)
	fatalIfErr(err)
}

func fatalIfErr(err error) {
	if err != nil {
		log.Fatalf(err)
	}
}
