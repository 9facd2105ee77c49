package channels

import (
	"github.com/shardflow/shardflow/container"
	"github.com/shardflow/shardflow/events"
)

// LogPusher wraps a send endpoint to stamp each outgoing message with a
// per-instance sequence number and the sending worker's index, and to emit a
// trace event per send. Payload and ordering pass through unchanged.
type LogPusher[T any, C container.Container] struct {
	pusher  Pusher[T, C]
	channel int
	counter int
	source  int
	target  int
	sink    events.Sink
}

// NewLogPusher wraps pusher. source is the sending worker, target the worker
// the endpoint addresses. A nil sink disables tracing.
func NewLogPusher[T any, C container.Container](pusher Pusher[T, C], source, target, channel int, sink events.Sink) *LogPusher[T, C] {
	return &LogPusher[T, C]{
		pusher:  pusher,
		channel: channel,
		source:  source,
		target:  target,
		sink:    sink,
	}
}

// Push stamps msg and forwards it. A nil msg is the flush signal and is
// forwarded untouched.
func (p *LogPusher[T, C]) Push(msg *Message[T, C]) {
	if msg != nil {
		p.counter++

		msg.Seq = p.counter - 1
		msg.From = p.source

		if p.sink != nil {
			p.sink.Log(events.MessagesEvent{
				IsSend:  true,
				Channel: p.channel,
				Source:  p.source,
				Target:  p.target,
				SeqNo:   msg.Seq,
				Length:  msg.Data.Len(),
			})
		}
	}

	p.pusher.Push(msg)
}

// LogPuller wraps a receive endpoint to emit a trace event per received
// message. The message itself is handed to the caller untouched.
type LogPuller[T any, C container.Container] struct {
	puller  Puller[T, C]
	channel int
	index   int
	sink    events.Sink
}

// NewLogPuller wraps puller. index is the receiving worker. A nil sink
// disables tracing.
func NewLogPuller[T any, C container.Container](puller Puller[T, C], index, channel int, sink events.Sink) *LogPuller[T, C] {
	return &LogPuller[T, C]{
		puller:  puller,
		channel: channel,
		index:   index,
		sink:    sink,
	}
}

// Pull returns the next message from the wrapped endpoint, or nil when none
// is available. Ownership transfers to the caller.
func (p *LogPuller[T, C]) Pull() *Message[T, C] {
	msg := p.puller.Pull()
	if msg != nil && p.sink != nil {
		p.sink.Log(events.MessagesEvent{
			IsSend:  false,
			Channel: p.channel,
			Source:  msg.From,
			Target:  p.index,
			SeqNo:   msg.Seq,
			Length:  msg.Data.Len(),
		})
	}
	return msg
}
