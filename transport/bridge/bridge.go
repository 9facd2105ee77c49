// Package bridge adapts a Watermill publisher/subscriber pair into channel
// endpoints, letting a dataflow edge cross a process boundary over any
// Watermill-backed transport (in tests, pubsub/gochannel).
//
// The bridge is deliberately weaker than the in-process fabric: delivery and
// ordering are whatever the backing transport provides. It exists for edges
// that leave the process; intra-process edges should use the worker runtime
// directly.
package bridge

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/shardflow/shardflow/channels"
	"github.com/shardflow/shardflow/container"
	"github.com/shardflow/shardflow/internal/ids"
	"github.com/shardflow/shardflow/internal/jsoncodec"
)

// Topic derives the Watermill topic for a channel and address path.
func Topic(channel int, address []int) string {
	var b strings.Builder
	b.WriteString("shardflow.channel.")
	b.WriteString(strconv.Itoa(channel))
	for _, a := range address {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(a))
	}
	return b.String()
}

// Pusher publishes envelopes to a Watermill topic. Envelopes are encoded as
// JSON, so the container type must round-trip through JSON.
//
// Transport faults are fatal at this layer: Push panics on encode or publish
// failure, matching the fabric's no-recoverable-error contract. Callers that
// need retries should configure them in the backing publisher.
type Pusher[T any, C container.Container] struct {
	publisher message.Publisher
	topic     string
}

// NewPusher creates a send endpoint publishing to topic.
func NewPusher[T any, C container.Container](publisher message.Publisher, topic string) *Pusher[T, C] {
	if publisher == nil {
		panic("shardflow: publisher cannot be nil")
	}
	return &Pusher[T, C]{publisher: publisher, topic: topic}
}

// Push publishes msg. The nil flush signal is a no-op; the bridge buffers
// nothing.
func (p *Pusher[T, C]) Push(msg *channels.Message[T, C]) {
	if msg == nil {
		return
	}

	payload, err := jsoncodec.Marshal(msg)
	if err != nil {
		panic(fmt.Sprintf("shardflow: encoding envelope for %q: %v", p.topic, err))
	}

	wm := message.NewMessage(ids.MessageID(), payload)
	if err := p.publisher.Publish(p.topic, wm); err != nil {
		panic(fmt.Sprintf("shardflow: publishing to %q: %v", p.topic, err))
	}
}

// Puller receives envelopes from a Watermill subscription. Pull never
// blocks; it drains the subscription channel one message at a time.
type Puller[T any, C container.Container] struct {
	topic    string
	messages <-chan *message.Message
}

// NewPuller subscribes to topic and returns the receive endpoint. The
// subscription lives until ctx is cancelled or the subscriber closes.
func NewPuller[T any, C container.Container](ctx context.Context, subscriber message.Subscriber, topic string) (*Puller[T, C], error) {
	if subscriber == nil {
		return nil, fmt.Errorf("shardflow: subscriber cannot be nil")
	}
	messages, err := subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("shardflow: subscribing to %q: %w", topic, err)
	}
	return &Puller[T, C]{topic: topic, messages: messages}, nil
}

// Pull returns the next available envelope, or nil when none is waiting or
// the subscription has closed. Received messages are acked; a message whose
// payload does not decode is nacked and Pull panics, as a malformed envelope
// on a fabric topic cannot be recovered from.
func (p *Puller[T, C]) Pull() *channels.Message[T, C] {
	select {
	case wm, ok := <-p.messages:
		if !ok {
			return nil
		}
		var msg channels.Message[T, C]
		if err := jsoncodec.Unmarshal(wm.Payload, &msg); err != nil {
			wm.Nack()
			panic(fmt.Sprintf("shardflow: decoding envelope from %q: %v", p.topic, err))
		}
		wm.Ack()
		return &msg
	default:
		return nil
	}
}
