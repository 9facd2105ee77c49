// Package config groups the runtime settings for a shardflow process.
package config

import (
	"errors"
	"fmt"

	"github.com/shardflow/shardflow/channels/pact"
)

// Config holds the settings used to bootstrap a process and its channels.
// Zero values fall back to defaults via WithDefaults.
type Config struct {
	// Peers is the number of parallel workers in the process.
	Peers int

	// ExchangeBatchSize is the per-destination staging capacity of
	// exchange contracts. Larger batches amortize envelope overhead at
	// the cost of latency.
	ExchangeBatchSize int

	// MetricsEnabled registers the Prometheus channel collectors.
	MetricsEnabled bool
}

// Defaults applied by WithDefaults. The exchange batch size falls back to
// the contract layer's own default so the two never drift apart.
const (
	DefaultPeers             = 1
	DefaultExchangeBatchSize = pact.DefaultBatchSize
)

// WithDefaults returns a copy of the config with zero values replaced by
// defaults.
func (c Config) WithDefaults() Config {
	if c.Peers == 0 {
		c.Peers = DefaultPeers
	}
	if c.ExchangeBatchSize == 0 {
		c.ExchangeBatchSize = DefaultExchangeBatchSize
	}
	return c
}

// Validate checks the configuration. Returns an error describing every
// invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Peers < 0 {
		errs = append(errs, fmt.Errorf("peers: cannot be negative, got %d", c.Peers))
	}
	if c.ExchangeBatchSize < 0 {
		errs = append(errs, fmt.Errorf("exchange batch size: cannot be negative, got %d", c.ExchangeBatchSize))
	}
	return errors.Join(errs...)
}
