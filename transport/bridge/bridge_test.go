package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shardflow/shardflow/channels"
	"github.com/shardflow/shardflow/container"
)

func TestTopic(t *testing.T) {
	assert.Equal(t, "shardflow.channel.3", Topic(3, nil))
	assert.Equal(t, "shardflow.channel.3.0.2", Topic(3, []int{0, 2}))
}

func TestBridgeRoundTrip(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	topic := Topic(5, []int{1})

	pull, err := NewPuller[int, container.List[string]](context.Background(), pubSub, topic)
	require.NoError(t, err)

	push := NewPusher[int, container.List[string]](pubSub, topic)
	push.Push(&channels.Message[int, container.List[string]]{
		Time: 3,
		Data: container.List[string]{"a", "b"},
		Seq:  5,
		From: 1,
	})

	var got *channels.Message[int, container.List[string]]
	require.Eventually(t, func() bool {
		got = pull.Pull()
		return got != nil
	}, time.Second, time.Millisecond)

	assert.Equal(t, 3, got.Time)
	assert.Equal(t, container.List[string]{"a", "b"}, got.Data)
	assert.Equal(t, 5, got.Seq)
	assert.Equal(t, 1, got.From)
}

func TestPullIsNonBlocking(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	pull, err := NewPuller[int, container.List[string]](context.Background(), pubSub, Topic(1, nil))
	require.NoError(t, err)

	assert.Nil(t, pull.Pull())
}

func TestPushNilIsNoOp(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	topic := Topic(2, nil)
	pull, err := NewPuller[int, container.List[string]](context.Background(), pubSub, topic)
	require.NoError(t, err)

	push := NewPusher[int, container.List[string]](pubSub, topic)
	push.Push(nil)

	time.Sleep(10 * time.Millisecond)
	assert.Nil(t, pull.Pull())
}

func TestNewPusherRequiresPublisher(t *testing.T) {
	assert.Panics(t, func() {
		NewPusher[int, container.List[string]](nil, "topic")
	})
}

func TestNewPullerRequiresSubscriber(t *testing.T) {
	_, err := NewPuller[int, container.List[string]](context.Background(), nil, "topic")
	assert.Error(t, err)
}
