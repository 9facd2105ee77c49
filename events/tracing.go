package events

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NewSpanSink records each event as an OpenTelemetry span event on the given
// span, typically the span covering one scheduling quantum of a worker.
func NewSpanSink(span trace.Span) Sink {
	if span == nil {
		panic("shardflow: span cannot be nil")
	}
	return &spanSink{span: span}
}

type spanSink struct {
	span trace.Span
}

func (s *spanSink) Log(event MessagesEvent) {
	name := "message received"
	if event.IsSend {
		name = "message sent"
	}
	s.span.AddEvent(name, trace.WithAttributes(
		attribute.Bool("shardflow.is_send", event.IsSend),
		attribute.Int("shardflow.channel", event.Channel),
		attribute.Int("shardflow.source", event.Source),
		attribute.Int("shardflow.target", event.Target),
		attribute.Int("shardflow.seq_no", event.SeqNo),
		attribute.Int("shardflow.length", event.Length),
	))
}
