package integration

import (
	"errors"

	"github.com/spf13/viper"
)

func NewConfigWithFile(configFile string) error {
	viper.SetConfigFile(configFile)

	return newConfig()
}

// NewConfigWithPaths looks for config.yml in ./configs and the working
// directory. Not finding one is fine; env vars and flags still apply.
func NewConfigWithPaths() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("configs")
	viper.AddConfigPath(".")

	err := newConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}

func newConfig() error {
	err := viper.ReadInConfig()
	if err != nil {
		return err
	}

	return nil
}
