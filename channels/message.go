// Package channels defines the message envelope moved along dataflow edges
// and the push/pull endpoint capabilities every transport primitive must
// satisfy. Instrumented decorators wrap any endpoint pair to stamp sequence
// numbers and provenance and to emit trace events without touching payload or
// ordering.
package channels

import "github.com/shardflow/shardflow/container"

// Message is the unit of transfer on a dataflow edge: a batch of records at
// a logical timestamp, plus transport metadata.
//
// Seq and From are unset at creation and assigned exactly once by the
// instrumented send decorator when the message is first handed to the
// transport. For a fixed sender the sequence numbers observed downstream are
// 0, 1, 2, … with no gaps, which lets an observer detect loss or reordering.
type Message[T any, C container.Container] struct {
	// Time is the logical timestamp of the batch. It is set upstream and
	// never mutated by the channel fabric.
	Time T `json:"time"`
	// Data is the batch of records. The fabric is oblivious to its
	// contents beyond the record count.
	Data C `json:"data"`
	// Seq is the per-sender sequence number.
	Seq int `json:"seq"`
	// From is the index of the worker that sent the message.
	From int `json:"from"`
}

// Pusher is the send half of a channel. Pushing transfers exclusive
// ownership of the message to the transport; the message must not be touched
// by the caller afterwards.
//
// Pushing nil is a flush signal marking the end of a burst. It carries no
// payload but must propagate through every layer untouched.
type Pusher[T any, C container.Container] interface {
	Push(msg *Message[T, C])
}

// Puller is the receive half of a channel. Pull returns the next available
// message, transferring exclusive ownership to the caller, or nil when no
// message is available right now. A nil result is not an end-of-stream
// marker; any termination protocol is a convention of the surrounding
// scheduler.
type Puller[T any, C container.Container] interface {
	Pull() *Message[T, C]
}
