package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"netdecoy/pkg/eventbus"
)

func TestRedisPublisherTopics(t *testing.T) {
	pub := NewRedisPublisher("127.0.0.1:6379", "netdecoy.activity")
	defer pub.Close()
	require.Equal(t, []string{eventbus.TopicActivity}, pub.Topics())
}

func TestRedisPublisherFailuresAreContained(t *testing.T) {
	// Port 1 is never a Redis server; both the marshal and the publish
	// failure paths must return without panicking or propagating.
	pub := NewRedisPublisher("127.0.0.1:1", "netdecoy.activity")
	defer pub.Close()

	before := mPublishError.Value()
	pub.Handle(context.Background(), eventbus.Event{
		Type:    eventbus.TopicActivity,
		Payload: make(chan int), // not marshalable
	})
	require.Equal(t, before+1, mPublishError.Value())

	pub.Handle(context.Background(), eventbus.Event{
		Type:    eventbus.TopicActivity,
		Payload: NewRecord("192.0.2.1", 22, []byte("ls\n")),
	})
	require.Equal(t, before+2, mPublishError.Value())
}
