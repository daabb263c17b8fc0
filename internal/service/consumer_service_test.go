package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"wisenotes-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerPersistsActivity(t *testing.T) {
	store := newFakeStore()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	consumer := NewConsumerService(pubSub, "resource-activity", newFakeUowFactory(store), nopLogger{})
	publisher := NewPublisherService(pubSub, "resource-activity")

	ctx := context.Background()
	require.NoError(t, consumer.Consume(ctx))

	msg := dto.ActivityMessage{
		EventId: "evt-1",
		Action:  "NOTE_CREATED",
		UserId:  "user-1",
		Data:    map[string]interface{}{"note_id": float64(7)},
	}
	payload, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.activities) == 1
	}, 2*time.Second, 10*time.Millisecond)

	store.mu.Lock()
	entry := store.activities[0]
	store.mu.Unlock()
	assert.Equal(t, "evt-1", entry.EventId)
	assert.Equal(t, "NOTE_CREATED", entry.Action)
	assert.Equal(t, "user-1", entry.UserId)
}

func TestConsumerAcksMalformedPayload(t *testing.T) {
	store := newFakeStore()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	consumer := NewConsumerService(pubSub, "resource-activity", newFakeUowFactory(store), nopLogger{})
	publisher := NewPublisherService(pubSub, "resource-activity")

	ctx := context.Background()
	require.NoError(t, consumer.Consume(ctx))

	require.NoError(t, publisher.Publish(ctx, []byte("not json")))

	// A valid message after the malformed one proves the loop is alive
	msg := dto.ActivityMessage{EventId: "evt-2", Action: "NOTE_DELETED", UserId: "user-1"}
	payload, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.activities) == 1
	}, 2*time.Second, 10*time.Millisecond)
}
