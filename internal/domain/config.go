package domain

import "github.com/leighmacdonald/pairhash/internal/log"

type Config struct {
	Registry RegistryConfig `mapstructure:"registry"`
	Pairing  PairingConfig  `mapstructure:"pairing"`
	Log      log.Config     `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// MetricsConfig controls where counters are written when a command exits. The file uses the
// prometheus text format read by the node_exporter textfile collector.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

type RegistryConfig struct {
	Servers []ServerKeys `mapstructure:"servers"`
}

// PairingConfig holds the name and server used by the pair command when none are given.
type PairingConfig struct {
	ClientName string   `mapstructure:"client_name"`
	ServerID   ServerID `mapstructure:"server_id"`
}
