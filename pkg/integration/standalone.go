package integration

import (
	"fmt"
	"os"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/nrlogrus"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/build"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NewStandaloneIntegration builds an integration for a binary run on its own:
// flags are parsed and bound before the config is loaded.
func NewStandaloneIntegration(
	buildInfo build.BuildInfo,
	appName string,
	integrationOpts ...IntegrationOpt,
) (*Integration, error) {
	parseStandaloneArgs()

	if viper.GetBool("version") {
		showVersionAndExit(buildInfo)
	}

	// The license key for the APM agent may come from the config, so it is
	// loaded first.
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

	defer log.Debugf("starting %s integration", buildInfo.Name)

	return newIntegration(
		buildInfo,
		app,
		nil,
		log.RootLogger,
		viper.GetBool("runAsService"),
		viper.GetBool("dry_run"),
		integrationOpts,
	)
}

func setupApm(
	appName string,
	logger *logrus.Logger,
) (*newrelic.Application, error) {
	licenseKey := viper.GetString("licenseKey")
	if licenseKey == "" {
		licenseKey = os.Getenv("NEW_RELIC_LICENSE_KEY")
	}

	apmAppName := appName
	if apmAppName == "" {
		apmAppName = viper.GetString("appName")
		if apmAppName == "" {
			apmAppName = os.Getenv("NEW_RELIC_APP_NAME")
			if apmAppName == "" {
				if os.Args[0] != "" {
					apmAppName = os.Args[0]
				} else {
					return nil, fmt.Errorf("no application name found")
				}
			}
		}
	}

	// Failure is fine, the agent is nil safe.
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(apmAppName),
		newrelic.ConfigLicense(licenseKey),
	)
	if err != nil {
		log.Debugf("APM agent disabled: %v", err)
		return nil, nil
	}

	// Logs in context
	logger.SetFormatter(nrlogrus.NewFormatter(app, &logrus.TextFormatter{}))

	return app, nil
}

func parseStandaloneArgs() {
	pflag.Bool(
		"verbose",
		false,
		"enable verbose logging",
	)
	pflag.Bool(
		"dry_run",
		false,
		"run in dry run mode",
	)
	pflag.Bool(
		"version",
		false,
		"display version information",
	)
	pflag.Bool(
		"runAsService",
		false,
		"harvest on an interval until interrupted",
	)
	pflag.String(
		"config_path",
		"",
		"path to YML configuration file",
	)
	pflag.String(
		"env_prefix",
		"",
		"prefix to use for environment variable lookup",
	)

	pflag.Parse()

	// Flags are bound here rather than in loadConfig because infrastructure
	// integrations get their flags parsed by the infra SDK.
	viper.BindPFlags(pflag.CommandLine)
}
