// Package pact implements parallelization contracts: the policies deciding
// how records on a dataflow edge move between workers. A contract allocates a
// matched pair of push and pull endpoints from a worker's runtime; Pipeline
// keeps records on their worker, Exchange partitions them across all workers
// by a caller-supplied hash.
//
// Every contract preserves the record count per logical timestamp. Progress
// tracking in a surrounding runtime assumes this holds unconditionally, so it
// is a structural requirement of any future contract as well.
package pact

import (
	"github.com/shardflow/shardflow/channels"
	"github.com/shardflow/shardflow/channels/pushers"
	"github.com/shardflow/shardflow/container"
	"github.com/shardflow/shardflow/events"
	"github.com/shardflow/shardflow/worker"
)

// DefaultBatchSize is the per-destination staging capacity used by exchange
// contracts unless overridden.
const DefaultBatchSize = 1024

// ParallelizationContract allocates a matched pair of push and pull
// endpoints implementing one distribution policy. channel identifies the
// dataflow edge within the runtime, both for routing and for attributing
// trace events; address is an opaque structural path disambiguating nested
// scopes; a nil sink disables tracing.
//
// Connect is the only place channel transport resources are created.
// Allocation failure is fatal and surfaces as a panic from the runtime, not
// as an error value.
type ParallelizationContract[T any, C container.Container] interface {
	Connect(w *worker.Worker, channel int, address []int, sink events.Sink) (channels.Pusher[T, C], channels.Puller[T, C])
}

// Pipeline is the direct, zero-redistribution contract: a FIFO hand-off from
// a producer to a consumer on the same worker. Edges that need no
// partitioning should pay no partitioning cost.
type Pipeline[T any, C container.Container] struct{}

// Connect allocates an intra-worker channel pair and wraps both ends in
// instrumentation. Source and target are both the calling worker; the
// message never leaves it.
func (Pipeline[T, C]) Connect(w *worker.Worker, channel int, address []int, sink events.Sink) (channels.Pusher[T, C], channels.Puller[T, C]) {
	push, pull := worker.Pipeline[channels.Message[T, C]](w, channel, address)
	return channels.NewLogPusher[T, C](push, w.Index(), w.Index(), channel, sink),
		channels.NewLogPuller[T, C](pull, w.Index(), channel, sink)
}

// ExchangeCore is the exchange contract generic over the container/builder
// pair. Most callers want Exchange, its List specialization.
//
// The contract owns its hash function exclusively and invokes it only from
// the sending worker's goroutine. The function must be a pure function of
// record content: routing and the conservation invariant both depend on the
// same record hashing identically wherever it is recomputed. A non-
// deterministic function is not detected at runtime and silently breaks
// conservation.
type ExchangeCore[T comparable, R any, C container.Records[R]] struct {
	hash       func(R) uint64
	newBuilder func() container.Builder[R, C]
}

// NewExchangeCore creates an exchange contract from a distribution function
// and a per-destination builder factory.
func NewExchangeCore[T comparable, R any, C container.Records[R]](hash func(R) uint64, newBuilder func() container.Builder[R, C]) ExchangeCore[T, R, C] {
	return ExchangeCore[T, R, C]{hash: hash, newBuilder: newBuilder}
}

// Connect allocates one send endpoint per worker plus this worker's inbound
// endpoint, wraps each in instrumentation labelled with its destination, and
// hands the send side to the fan-out pusher. Records are FIFO per
// (source, destination) pair only.
func (e ExchangeCore[T, R, C]) Connect(w *worker.Worker, channel int, address []int, sink events.Sink) (channels.Pusher[T, C], channels.Puller[T, C]) {
	raw, recv := worker.Fanout[channels.Message[T, C]](w, channel, address)

	senders := make([]channels.Pusher[T, C], len(raw))
	for i, p := range raw {
		senders[i] = channels.NewLogPusher[T, C](p, w.Index(), i, channel, sink)
	}

	return pushers.NewExchange[T, R, C](senders, e.hash, e.newBuilder),
		channels.NewLogPuller[T, C](recv, w.Index(), channel, sink)
}

// NewExchange creates an exchange contract for plain record batches
// (container.List) with the default staging capacity.
func NewExchange[T comparable, R any](hash func(R) uint64) ExchangeCore[T, R, container.List[R]] {
	return NewExchangeBatch[T](hash, DefaultBatchSize)
}

// NewExchangeBatch is NewExchange with an explicit per-destination staging
// capacity.
func NewExchangeBatch[T comparable, R any](hash func(R) uint64, batch int) ExchangeCore[T, R, container.List[R]] {
	return NewExchangeCore[T](hash, func() container.Builder[R, container.List[R]] {
		return container.NewListBuilder[R](batch)
	})
}
