package shardflow

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shardflow/shardflow/channels"
	"github.com/shardflow/shardflow/channels/pact"
	"github.com/shardflow/shardflow/config"
	containerpkg "github.com/shardflow/shardflow/container"
	"github.com/shardflow/shardflow/events"
	"github.com/shardflow/shardflow/worker"
)

type (
	Config = config.Config

	Message[T any, C containerpkg.Container] = channels.Message[T, C]
	Pusher[T any, C containerpkg.Container]  = channels.Pusher[T, C]
	Puller[T any, C containerpkg.Container]  = channels.Puller[T, C]

	Container         = containerpkg.Container
	List[R any]       = containerpkg.List[R]
	Records[R any]    = containerpkg.Records[R]
	Builder[R, C any] = containerpkg.Builder[R, C]

	ParallelizationContract[T any, C containerpkg.Container] = pact.ParallelizationContract[T, C]
	Pipeline[T any, C containerpkg.Container]                = pact.Pipeline[T, C]

	MessagesEvent = events.MessagesEvent
	Sink          = events.Sink
	SinkFunc      = events.SinkFunc

	Process = worker.Process
	Worker  = worker.Worker
)

// NewProcess creates an in-process runtime with the given number of workers.
func NewProcess(peers int) *worker.Process { return worker.NewProcess(peers) }

// NewProcessFromConfig creates a runtime from a validated config.
func NewProcessFromConfig(cfg config.Config) (*worker.Process, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return worker.NewProcess(cfg.Peers), nil
}

// NewPipeline creates the direct, zero-redistribution contract.
func NewPipeline[T any, C containerpkg.Container]() pact.Pipeline[T, C] {
	return pact.Pipeline[T, C]{}
}

// NewExchange creates an exchange contract distributing records by hash.
func NewExchange[T comparable, R any](hash func(R) uint64) pact.ExchangeCore[T, R, containerpkg.List[R]] {
	return pact.NewExchange[T](hash)
}

// NewExchangeFromConfig creates an exchange contract whose per-destination
// staging capacity is taken from the config.
func NewExchangeFromConfig[T comparable, R any](cfg config.Config, hash func(R) uint64) pact.ExchangeCore[T, R, containerpkg.List[R]] {
	cfg = cfg.WithDefaults()
	return pact.NewExchangeBatch[T](hash, cfg.ExchangeBatchSize)
}

// NewSinkFromConfig builds the event sink selected by the config: the
// Prometheus channel collectors, registered on registerer (nil falls back to
// prometheus.DefaultRegisterer), when metrics are enabled, or a nil sink
// (tracing disabled) otherwise.
func NewSinkFromConfig(cfg config.Config, registerer prometheus.Registerer) (events.Sink, error) {
	if !cfg.MetricsEnabled {
		return nil, nil
	}
	sink := events.NewMetricsSink(registerer)
	if err := sink.Register(); err != nil {
		return nil, err
	}
	return sink, nil
}

// HashBytes returns a deterministic 64-bit key for a byte-slice record.
func HashBytes(record []byte) uint64 { return pact.HashBytes(record) }

// HashString returns a deterministic 64-bit key for a string record.
func HashString(record string) uint64 { return pact.HashString(record) }
