package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()

	sub := client.Subscribe(ctx, "projects:events:ALPHA")
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	publisher := NewPublisher(client)
	err = publisher.Publish(ctx, Event{
		Type:        TypeProjectCompleted,
		ProjectCode: "ALPHA",
		Actor:       "alice",
	})
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		var got Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, TypeProjectCompleted, got.Type)
		assert.Equal(t, "ALPHA", got.ProjectCode)
		assert.Equal(t, "alice", got.Actor)
		assert.NotEmpty(t, got.ID)
		assert.False(t, got.At.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published event")
	}
}
