// Package events defines the structured trace events emitted by the channel
// instrumentation, together with the sink implementations that deliver them
// to a structured logger, Prometheus collectors, or an OpenTelemetry span.
package events

import "sync"

// MessagesEvent records one message crossing a channel endpoint. Events are
// emitted synchronously on every send and receive by the instrumented
// decorators.
type MessagesEvent struct {
	// IsSend is true for a send observation, false for a receive.
	IsSend bool `json:"is_send"`
	// Channel identifies the dataflow edge within the runtime.
	Channel int `json:"channel"`
	// Source is the index of the worker that sent the message.
	Source int `json:"source"`
	// Target is the index of the worker the message is addressed to.
	Target int `json:"target"`
	// SeqNo is the per-sender sequence number stamped on the message.
	SeqNo int `json:"seq_no"`
	// Length is the number of records in the message's container.
	Length int `json:"length"`
}

// Sink receives message events. A nil Sink disables tracing; implementations
// must not retain or mutate the event beyond the call.
type Sink interface {
	Log(event MessagesEvent)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(MessagesEvent)

// Log calls f.
func (f SinkFunc) Log(event MessagesEvent) { f(event) }

// Multi returns a sink that forwards each event to every non-nil sink in
// order. Multi(nil) and Multi() return nil, which disables tracing.
func Multi(sinks ...Sink) Sink {
	kept := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

type multiSink []Sink

func (m multiSink) Log(event MessagesEvent) {
	for _, s := range m {
		s.Log(event)
	}
}

// Collector is a sink that records every event it receives. It is safe for
// concurrent use and is primarily useful in tests and diagnostics.
type Collector struct {
	mu     sync.Mutex
	events []MessagesEvent
}

// Log appends the event to the collector.
func (c *Collector) Log(event MessagesEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

// Events returns a copy of all collected events in arrival order.
func (c *Collector) Events() []MessagesEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]MessagesEvent, len(c.events))
	copy(out, c.events)
	return out
}
