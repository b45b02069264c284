package integration

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/newrelic/newrelic-client-go/pkg/region"
	"github.com/spf13/viper"
)

func getLicenseKey() (string, error) {
	licenseKey := viper.GetString("licenseKey")
	if licenseKey == "" {
		licenseKey = os.Getenv("NEW_RELIC_LICENSE_KEY")
		if licenseKey == "" {
			return "", fmt.Errorf("missing New Relic license key")
		}
	}
	return licenseKey, nil
}

func getApiKey() (string, error) {
	apiKey := viper.GetString("apiKey")
	if apiKey == "" {
		apiKey = os.Getenv("NEW_RELIC_API_KEY")
		if apiKey == "" {
			return "", fmt.Errorf("missing New Relic API key")
		}
	}
	return apiKey, nil
}

func getNrRegion() (region.Name, error) {
	nrRegion := viper.GetString("region")
	if nrRegion == "" {
		nrRegion = os.Getenv("NEW_RELIC_REGION")
		if nrRegion == "" {
			nrRegion = string(region.Default)
		}
	}

	r, err := region.Parse(nrRegion)
	if err != nil {
		return "", err
	}

	return r, nil
}

func getAccountId() (int, error) {
	accountId := viper.GetInt("accountId")
	if accountId == 0 {
		eventsAccountId := os.Getenv("NEW_RELIC_ACCOUNT_ID")
		if eventsAccountId == "" {
			return 0, fmt.Errorf("missing New Relic account ID")
		}

		var err error

		accountId, err = strconv.Atoi(eventsAccountId)
		if err != nil {
			return 0, fmt.Errorf("invalid New Relic account ID %s", eventsAccountId)
		}
	}
	return accountId, nil
}

const (
	EXPORTER_NEWRELIC = "newrelic"
	EXPORTER_CONSOLE  = "console"
	EXPORTER_INFRA    = "infra"

	SOURCE_FILE  = "file"
	SOURCE_HTTP  = "http"
	SOURCE_KAFKA = "kafka"

	DEFAULT_SOURCE_TIMEOUT   = 5
	DEFAULT_SOURCE_RETRIES   = 3
	DEFAULT_KAFKA_BATCH_SIZE = 1000
	DEFAULT_KAFKA_MAX_WAIT   = 1000
)

func getExporterType() string {
	exporterType := strings.ToLower(viper.GetString("exporter.type"))
	if exporterType == "" {
		return EXPORTER_NEWRELIC
	}
	return exporterType
}

func getSourceType() string {
	sourceType := strings.ToLower(viper.GetString("source.type"))
	if sourceType == "" {
		return SOURCE_FILE
	}
	return sourceType
}

func getIntOrDefault(key string, def int) int {
	if !viper.IsSet(key) {
		return def
	}
	return viper.GetInt(key)
}
