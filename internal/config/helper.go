package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/leighmacdonald/pairhash/internal/domain"
	"github.com/leighmacdonald/pairhash/internal/keys"
	"github.com/leighmacdonald/pairhash/internal/log"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var keyValueType = reflect.TypeOf(domain.KeyValue(0))

// decodeKeyValue parses string keys such as "0x59EB" or "23019" into a domain.KeyValue.
func decodeKeyValue() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, target reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || target != keyValueType {
			return data, nil
		}

		value, errParse := strconv.ParseInt(strings.TrimSpace(data.(string)), 0, 64)
		if errParse != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKey, data)
		}

		return domain.KeyValue(value), nil
	}
}

func setDefaultConfigValues(v *viper.Viper) {
	if home, errHomeDir := homedir.Dir(); errHomeDir == nil {
		v.AddConfigPath(home)
	}

	v.AddConfigPath(".")
	v.SetConfigName("pairhash")
	v.SetConfigType("yml")
	v.SetEnvPrefix("pairhash")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaultConfig := map[string]any{
		"registry.servers": []map[string]any{
			{
				"server_id":  int(keys.DefaultServerID),
				"server_key": int(keys.DefaultServerKey),
				"client_key": int(keys.DefaultClientKey),
			},
		},
		"pairing.client_name": "Oompa Loompa",
		"pairing.server_id":   int(keys.DefaultServerID),
		"logging.level":       string(log.Info),
		"logging.file":        "",
		"logging.sentry_dsn":  "",
		"metrics.textfile":    "",
	}

	for configKey, value := range defaultConfig {
		v.SetDefault(configKey, value)
	}
}
