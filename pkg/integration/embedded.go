package integration

import (
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/build"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/spf13/viper"
)

// NewEmbeddedIntegration builds an integration for use inside another program.
// No command line flags are touched and it always runs once per Run call; the
// host decides when to harvest.
func NewEmbeddedIntegration(
	buildInfo build.BuildInfo,
	appName string,
	integrationOpts ...IntegrationOpt,
) (*Integration, error) {
	err := loadConfig()
	if err != nil {
		return nil, err
	}

	err = setupLogging(log.RootLogger)
	if err != nil {
		return nil, err
	}

	app, err := setupApm(appName, log.RootLogger)
	if err != nil {
		return nil, err
	}

	defer log.Debugf("starting embedded %s integration", buildInfo.Name)

	return newIntegration(
		buildInfo,
		app,
		nil,
		log.RootLogger,
		false,
		viper.GetBool("dry_run"),
		integrationOpts,
	)
}
