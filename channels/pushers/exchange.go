// Package pushers contains the fan-out machinery behind the exchange
// parallelization contract: a pusher that partitions each batch across a set
// of per-destination send endpoints by a caller-supplied hash.
package pushers

import (
	"github.com/shardflow/shardflow/channels"
	"github.com/shardflow/shardflow/container"
)

// Exchange partitions records across destination workers. Each record of a
// pushed batch is routed to destination hash(record) % len(pushers). This
// mapping is exact and stable; changing it would silently reroute keys and
// must be treated as a breaking protocol change.
//
// Records are staged in one builder per destination and flushed as a fresh
// message (at the staged timestamp) when the builder fills, when the batch
// timestamp changes, and on the nil flush signal. Per-destination order of
// records is preserved; no ordering is guaranteed across destinations.
//
// The record count is conserved: every record of every pushed batch appears
// in exactly one forwarded batch.
type Exchange[T comparable, R any, C container.Records[R]] struct {
	pushers  []channels.Pusher[T, C]
	hash     func(R) uint64
	builders []container.Builder[R, C]
	time     *T
}

// NewExchange creates an exchange pusher over the given per-destination
// endpoints. hash must be a pure function of record content; newBuilder
// creates the per-destination staging builder.
func NewExchange[T comparable, R any, C container.Records[R]](
	pushers []channels.Pusher[T, C],
	hash func(R) uint64,
	newBuilder func() container.Builder[R, C],
) *Exchange[T, R, C] {
	builders := make([]container.Builder[R, C], len(pushers))
	for i := range builders {
		builders[i] = newBuilder()
	}
	return &Exchange[T, R, C]{
		pushers:  pushers,
		hash:     hash,
		builders: builders,
	}
}

// Push partitions msg's records across the destinations. A nil msg flushes
// all staged records and forwards the flush signal to every destination.
func (e *Exchange[T, R, C]) Push(msg *channels.Message[T, C]) {
	if msg == nil {
		e.flushAll()
		for _, p := range e.pushers {
			p.Push(nil)
		}
		return
	}

	// Staged records belong to a single timestamp; a new one forces out
	// everything staged so far.
	if e.time != nil && *e.time != msg.Time {
		e.flushAll()
	}
	t := msg.Time
	e.time = &t

	if len(e.pushers) == 1 {
		e.pushers[0].Push(msg)
		return
	}

	peers := uint64(len(e.pushers))
	for r := range msg.Data.Records() {
		i := int(e.hash(r) % peers)
		e.builders[i].Push(r)
		if e.builders[i].Full() {
			e.flush(i)
		}
	}
}

func (e *Exchange[T, R, C]) flushAll() {
	for i := range e.builders {
		e.flush(i)
	}
}

func (e *Exchange[T, R, C]) flush(i int) {
	if e.builders[i].Len() == 0 || e.time == nil {
		return
	}
	e.pushers[i].Push(&channels.Message[T, C]{
		Time: *e.time,
		Data: e.builders[i].Extract(),
	})
}
