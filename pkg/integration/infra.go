package integration

import (
	nriSdkArgs "github.com/newrelic/infra-integrations-sdk/v4/args"
	nriSdk "github.com/newrelic/infra-integrations-sdk/v4/integration"
	nriSdkLog "github.com/newrelic/infra-integrations-sdk/v4/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/build"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/spf13/viper"
)

type InfraIntegrationArgs struct {
	nriSdkArgs.DefaultArgumentList
	ConfigPath  string `help:"Path to configuration"`
	ShowVersion bool   `default:"false" help:"Print build information and exit"`
}

var (
	infraArgs InfraIntegrationArgs
)

// NewInfraIntegration builds an integration run by the infrastructure agent.
// It always runs once; the agent schedules it.
func NewInfraIntegration(
	buildInfo build.BuildInfo,
	envPrefix string,
	integrationOpts ...IntegrationOpt,
) (*Integration, error) {
	i, err := createInfraIntegration(buildInfo, log.RootLogger)
	if err != nil {
		return nil, err
	}

	if infraArgs.ShowVersion {
		showVersionAndExit(buildInfo)
	}

	viper.Set("config_path", infraArgs.ConfigPath)
	viper.Set("env_prefix", envPrefix)
	viper.Set("verbose", infraArgs.Verbose)

	err = loadConfig()
	if err != nil {
		return nil, err
	}

	err = setupLogging(log.RootLogger)
	if err != nil {
		return nil, err
	}

	defer log.Debugf("starting %s integration", buildInfo.Name)

	return newIntegration(
		buildInfo,
		nil,
		i,
		log.RootLogger,
		false,
		viper.GetBool("dry_run"),
		integrationOpts,
	)
}

func createInfraIntegration(
	buildInfo build.BuildInfo,
	logger nriSdkLog.Logger,
) (*nriSdk.Integration, error) {
	return nriSdk.New(
		buildInfo.Id,
		buildInfo.Version,
		nriSdk.Args(&infraArgs),
		nriSdk.Logger(logger),
	)
}
