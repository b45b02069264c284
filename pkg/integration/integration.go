package integration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	nriSdk "github.com/newrelic/infra-integrations-sdk/v4/integration"
	nrClient "github.com/newrelic/newrelic-client-go/newrelic"
	"github.com/newrelic/newrelic-client-go/pkg/config"
	"github.com/newrelic/newrelic-client-go/pkg/logging"
	"github.com/newrelic/newrelic-client-go/pkg/region"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/build"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/pipeline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DEFAULT_INTERVAL = 60
)

type IntegrationOpt func(i *Integration) error

// Integration runs a set of pipelines once or on an interval, and owns the
// New Relic clients and agent the pipelines report through.
type Integration struct {
	BuildInfo     build.BuildInfo
	App           *newrelic.Application
	Integration   *nriSdk.Integration
	Logger        *logrus.Logger
	Interval      time.Duration
	NrClient      *nrClient.NewRelic
	RunAsService  bool
	DryRun        bool
	pipelines     []pipeline.Pipeline
	closers       []io.Closer
	apiKey        string
	licenseKey    string
	accountId     int
	region        region.Name
	eventsEnabled bool
	logsEnabled   bool
}

func newIntegration(
	buildInfo build.BuildInfo,
	app *newrelic.Application,
	integration *nriSdk.Integration,
	logger *logrus.Logger,
	runAsService bool,
	dryRun bool,
	integrationOpts []IntegrationOpt,
) (*Integration, error) {
	i := &Integration{
		BuildInfo:    buildInfo,
		App:          app,
		Integration:  integration,
		Logger:       logger,
		Interval:     DEFAULT_INTERVAL * time.Second,
		RunAsService: runAsService,
		DryRun:       dryRun,
		pipelines:    []pipeline.Pipeline{},
	}

	for _, opt := range integrationOpts {
		err := opt(i)
		if err != nil {
			return nil, err
		}
	}

	return i, nil
}

func (i *Integration) AddPipeline(p pipeline.Pipeline) {
	i.pipelines = append(i.pipelines, p)
}

// Run executes every pipeline once, or, as a service, once per interval
// until ctx is done.
func (i *Integration) Run(ctx context.Context) error {
	if !i.RunAsService {
		return i.executeSync(ctx)
	}

	log.Debugf("running as a service every %s", i.Interval)

	if err := i.executeSync(ctx); err != nil {
		log.Errorf("harvest failed: %v", err)
	}

	ticker := time.NewTicker(i.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			log.Debugf("poll interval timer ticked; executing integration")

			if err := i.executeSync(ctx); err != nil {
				log.Errorf("harvest failed: %v", err)
			}
		}
	}
}

func showVersionAndExit(buildInfo build.BuildInfo) {
	fmt.Printf(
		"%s Version: %s, Platform: %s, GoVersion: %s, GitCommit: %s, BuildDate: %s\n",
		buildInfo.Name,
		buildInfo.Version,
		fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		runtime.Version(),
		buildInfo.Commit,
		buildInfo.Date,
	)
	os.Exit(0)
}

// executeSync runs the pipelines in the order they were added. Every pipeline
// runs even when an earlier one fails.
func (i *Integration) executeSync(ctx context.Context) error {
	log.Debugf("executing pipelines...")

	errs := []error{}

	for j := 0; j < len(i.pipelines); j++ {
		perrs := i.pipelines[j].ExecuteSync(ctx)
		if len(perrs) > 0 {
			errs = append(
				errs,
				fmt.Errorf("pipeline %s: %w", i.pipelines[j].GetId(), errors.Join(perrs...)),
			)
		}
	}

	return errors.Join(errs...)
}

func (i *Integration) Shutdown(ctx context.Context) {
	log.Debugf("shutting down")

	for _, c := range i.closers {
		if err := c.Close(); err != nil {
			log.Warnf("failed to close source: %v", err)
		}
	}

	if !i.DryRun && (i.eventsEnabled || i.logsEnabled) {
		err := i.flushDataAndWait(ctx)
		if err != nil {
			i.Logger.Warnf("flush event queue to New Relic failed: %v", err)
		}
	}

	if i.Integration != nil {
		log.Debugf("publishing infrastructure payload")

		if err := i.Integration.Publish(); err != nil {
			i.Logger.Errorf("failed to publish infrastructure payload: %v", err)
		}
	}

	if i.App != nil {
		log.Debugf("shutting down APM agent")
		i.App.Shutdown(time.Second * 3)
	}
}

func WithLicenseKey() IntegrationOpt {
	return func(i *Integration) error {
		licenseKey, err := getLicenseKey()
		if err != nil {
			return err
		}

		region, err := getNrRegion()
		if err != nil {
			return err
		}

		i.region = region
		i.licenseKey = licenseKey

		return nil
	}
}

func WithApiKey() IntegrationOpt {
	return func(i *Integration) error {
		apiKey, err := getApiKey()
		if err != nil {
			return err
		}

		region, err := getNrRegion()
		if err != nil {
			return err
		}

		i.region = region
		i.apiKey = apiKey

		return nil
	}
}

func WithAccountId() IntegrationOpt {
	return func(i *Integration) error {
		accountId, err := getAccountId()
		if err != nil {
			return err
		}

		i.accountId = accountId

		return nil
	}
}

func WithClient() IntegrationOpt {
	return func(i *Integration) error {
		return setupClient(i)
	}
}

func WithEvents(ctx context.Context) IntegrationOpt {
	return func(i *Integration) error {
		return setupEvents(ctx, i)
	}
}

func WithLogs(ctx context.Context) IntegrationOpt {
	return func(i *Integration) error {
		return setupLogs(ctx, i)
	}
}

// WithInterval sets the service interval in seconds from the interval key,
// or defaultInterval when it is not set.
func WithInterval(defaultInterval int) IntegrationOpt {
	return func(i *Integration) error {
		interval := viper.GetInt("interval")
		if interval <= 0 {
			interval = defaultInterval
		}

		i.Interval = time.Duration(interval) * time.Second

		return nil
	}
}

// WithExportSetup prepares whatever the configured exporter.type needs. The
// New Relic exporter needs keys, an account and the batching client, except
// in dry run mode where nothing is sent.
func WithExportSetup(ctx context.Context) IntegrationOpt {
	return func(i *Integration) error {
		if getExporterType() != EXPORTER_NEWRELIC {
			return nil
		}

		if i.DryRun {
			region, err := getNrRegion()
			if err != nil {
				return err
			}

			i.region = region
			return nil
		}

		setup := []IntegrationOpt{
			WithLicenseKey(),
			WithAccountId(),
			WithClient(),
			WithEvents(ctx),
			WithLogs(ctx),
		}

		for _, opt := range setup {
			if err := opt(i); err != nil {
				return err
			}
		}

		return nil
	}
}

func (i *Integration) GetRegion() region.Name {
	return i.region
}

func (i *Integration) GetLicenseKey() string {
	return i.licenseKey
}

func (i *Integration) GetApiKey() string {
	return i.apiKey
}

func (i *Integration) flushDataAndWait(ctx context.Context) error {
	if i.eventsEnabled {
		err := i.NrClient.Events.Flush()
		if err != nil {
			return err
		}
	}

	if i.logsEnabled {
		err := i.NrClient.Logs.Flush()
		if err != nil {
			return err
		}
	}

	select {
	case <-time.After(3 * time.Second):
	case <-ctx.Done():
	}

	return nil
}

func configLicenseKey(licenseKey string) nrClient.ConfigOption {
	return func(cfg *config.Config) error {
		cfg.LicenseKey = licenseKey
		return nil
	}
}

func loadConfig() error {
	envPrefix := viper.GetString("env_prefix")

	viper.AutomaticEnv()
	if envPrefix != "" {
		viper.SetEnvPrefix(envPrefix)
	}

	// Config keys are camel case; env vars replace . with _ so nested keys
	// stay shell safe.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	configPath := viper.GetString("config_path")
	if configPath == "" {
		return NewConfigWithPaths()
	}

	return NewConfigWithFile(configPath)
}

func setupLogging(logger *logrus.Logger) error {
	verbose := viper.GetBool("verbose")

	if viper.IsSet("log.fileName") {
		file, err := os.OpenFile(
			viper.GetString("log.fileName"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0666,
		)
		if err != nil {
			log.Warnf("failed to log to file, using default stderr: %s", err)
		} else {
			logger.Out = file
		}
	}

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		return nil
	}

	logLevel := viper.GetString("log.level")
	if logLevel != "" {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			log.Warnf("failed to parse log level, default will be used: %s", err)
		} else {
			logger.SetLevel(level)
		}
	}

	return nil
}

func setupClient(i *Integration) error {
	opts := []nrClient.ConfigOption{}

	opts = append(opts, nrClient.ConfigLogger(
		logging.NewLogrusLogger(logging.ConfigLoggerInstance(i.Logger)),
	))

	if i.licenseKey != "" {
		opts = append(opts, configLicenseKey(i.licenseKey))
	}

	if i.apiKey != "" {
		opts = append(opts, nrClient.ConfigPersonalAPIKey(i.apiKey))
	}

	if i.region != "" {
		opts = append(opts, nrClient.ConfigRegion(i.region.String()))
	}

	client, err := nrClient.New(opts...)
	if err != nil {
		return fmt.Errorf("error creating New Relic client: %v", err)
	}

	i.NrClient = client

	return nil
}

func setupEvents(ctx context.Context, i *Integration) error {
	if i.NrClient == nil {
		err := setupClient(i)
		if err != nil {
			return err
		}
	}

	if i.accountId == 0 {
		accountId, err := getAccountId()
		if err != nil {
			return err
		}

		i.accountId = accountId
	}

	if err := i.NrClient.Events.BatchMode(ctx, i.accountId); err != nil {
		return fmt.Errorf("error starting batch events mode: %w", err)
	}

	i.eventsEnabled = true

	return nil
}

func setupLogs(ctx context.Context, i *Integration) error {
	if i.NrClient == nil {
		err := setupClient(i)
		if err != nil {
			return err
		}
	}

	// The account id is required by BatchMode() but unused for logs, so 0
	// is accepted here.
	if err := i.NrClient.Logs.BatchMode(ctx, i.accountId); err != nil {
		return fmt.Errorf("error starting batch logs mode: %w", err)
	}

	i.logsEnabled = true

	return nil
}
