// Package config loads pairhash settings from a yaml file and the environment.
package config

import (
	"errors"

	"github.com/leighmacdonald/pairhash/internal/domain"
	"github.com/leighmacdonald/pairhash/internal/keys"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Read loads the configuration. When path is empty, pairhash.yml is searched for in the
// home directory and the working directory, and a missing file falls back to defaults.
// An explicit path must exist.
func Read(path string) (domain.Config, error) {
	var (
		conf domain.Config
		vpr  = viper.New()
	)

	setDefaultConfigValues(vpr)

	if path != "" {
		vpr.SetConfigFile(path)
	}

	if errReadConfig := vpr.ReadInConfig(); errReadConfig != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(errReadConfig, &notFound) {
			return conf, errors.Join(errReadConfig, domain.ErrReadConfig)
		}
	}

	if errUnmarshal := vpr.Unmarshal(&conf, viper.DecodeHook(mapstructure.DecodeHookFunc(decodeKeyValue()))); errUnmarshal != nil {
		return conf, errors.Join(errUnmarshal, domain.ErrFormatConfig)
	}

	if conf.Pairing.ServerID < 0 {
		return conf, domain.ErrInvalidServerID
	}

	return conf, nil
}

// Registry builds the key registry described by the configuration.
func Registry(conf domain.Config) (*keys.Registry, error) {
	return keys.FromServerKeys(conf.Registry.Servers)
}
