// Package worker provides the in-process runtime that parallelization
// contracts allocate their transport resources from. A Process hosts a fixed
// set of workers, each meant to run on its own goroutine; workers hand out
// intra-worker pipeline channels and cross-worker fan-out channels keyed by
// channel identifier and address path.
package worker

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Process owns the shared channel state for a set of workers.
type Process struct {
	workers []*Worker

	mu      sync.Mutex
	fanouts map[string]any
}

// NewProcess creates a process with the given number of workers. Peers below
// 1 are treated as 1.
func NewProcess(peers int) *Process {
	if peers < 1 {
		peers = 1
	}
	p := &Process{
		workers: make([]*Worker, peers),
		fanouts: make(map[string]any),
	}
	for i := range p.workers {
		p.workers[i] = &Worker{index: i, process: p}
	}
	return p
}

// Peers returns the number of workers in the process.
func (p *Process) Peers() int { return len(p.workers) }

// Worker returns the worker with the given index.
func (p *Process) Worker(index int) *Worker { return p.workers[index] }

// Run executes fn once per worker, each on its own goroutine, and waits for
// all of them. The first error cancels the shared context and is returned.
func (p *Process) Run(ctx context.Context, fn func(ctx context.Context, w *Worker) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range p.workers {
		g.Go(func() error {
			return fn(ctx, w)
		})
	}
	return g.Wait()
}

// Worker is the runtime handle passed to a parallelization contract's
// Connect. It identifies one parallel execution unit of the process.
type Worker struct {
	index   int
	process *Process
}

// Index returns this worker's index within the process.
func (w *Worker) Index() int { return w.index }

// Peers returns the number of workers in the process.
func (w *Worker) Peers() int { return w.process.Peers() }

// channelKey disambiguates allocations that share a channel identifier but
// live in different nested scopes.
func channelKey(channel int, address []int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(channel))
	for _, a := range address {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(a))
	}
	return b.String()
}

// Pipeline allocates an intra-worker channel pair carrying values of type M.
// Both endpoints belong to the calling worker; the pair is FIFO and
// non-blocking on both sides.
func Pipeline[M any](w *Worker, channel int, address []int) (*QueuePusher[M], *QueuePuller[M]) {
	q := &queue[M]{}
	return &QueuePusher[M]{q: q}, &QueuePuller[M]{q: q}
}

// Fanout allocates, for the calling worker, one pusher per destination worker
// (including itself) plus the puller for values addressed to this worker.
// Every worker of the process must call Fanout with the same channel and
// address to obtain its own view of the shared channel; the value type must
// match across workers or Fanout panics, as a mismatched allocation cannot be
// recovered from.
func Fanout[M any](w *Worker, channel int, address []int) ([]*QueuePusher[M], *QueuePuller[M]) {
	key := channelKey(channel, address)
	p := w.process

	p.mu.Lock()
	state, ok := p.fanouts[key]
	if !ok {
		mailboxes := make([]*queue[M], p.Peers())
		for i := range mailboxes {
			mailboxes[i] = &queue[M]{}
		}
		state = mailboxes
		p.fanouts[key] = state
	}
	p.mu.Unlock()

	mailboxes, ok := state.([]*queue[M])
	if !ok {
		panic(fmt.Sprintf("shardflow: channel %q already allocated with a different message type", key))
	}

	pushers := make([]*QueuePusher[M], len(mailboxes))
	for i, q := range mailboxes {
		pushers[i] = &QueuePusher[M]{q: q}
	}
	return pushers, &QueuePuller[M]{q: mailboxes[w.index]}
}
