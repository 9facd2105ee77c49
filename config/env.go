package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvPeers             = "SHARDFLOW_PEERS"
	EnvExchangeBatchSize = "SHARDFLOW_EXCHANGE_BATCH_SIZE"
	EnvMetricsEnabled    = "SHARDFLOW_METRICS_ENABLED"
)

// FromEnv builds a config from the environment, applies defaults, and
// validates it. Unset variables keep their defaults.
func FromEnv() (Config, error) {
	var c Config

	if v, ok := os.LookupEnv(EnvPeers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPeers, err)
		}
		c.Peers = n
	}

	if v, ok := os.LookupEnv(EnvExchangeBatchSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvExchangeBatchSize, err)
		}
		c.ExchangeBatchSize = n
	}

	if v, ok := os.LookupEnv(EnvMetricsEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMetricsEnabled, err)
		}
		c.MetricsEnabled = b
	}

	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
