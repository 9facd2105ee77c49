package worker

import "sync"

// queue is an unbounded FIFO mailbox. Pushing never blocks; popping an empty
// queue returns nil.
type queue[M any] struct {
	mu    sync.Mutex
	items []*M
}

func (q *queue[M]) push(m *M) {
	q.mu.Lock()
	q.items = append(q.items, m)
	q.mu.Unlock()
}

func (q *queue[M]) pop() *M {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	head := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return head
}

// QueuePusher is the raw send endpoint of a queue-backed channel.
type QueuePusher[M any] struct {
	q *queue[M]
}

// Push enqueues m. Pushing nil is the flush signal; queue-backed channels
// buffer nothing outside the queue, so it is a no-op here.
func (p *QueuePusher[M]) Push(m *M) {
	if m == nil {
		return
	}
	p.q.push(m)
}

// QueuePuller is the raw receive endpoint of a queue-backed channel.
type QueuePuller[M any] struct {
	q *queue[M]
}

// Pull dequeues the next value, or returns nil when nothing is available.
// Ownership of the returned value passes to the caller.
func (p *QueuePuller[M]) Pull() *M {
	return p.q.pop()
}
