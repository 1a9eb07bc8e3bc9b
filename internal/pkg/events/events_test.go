package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return client, cleanup
}

func TestEvent_JSON(t *testing.T) {
	evt := &Event{
		Type:      TypePaymentVerified,
		UserID:    1,
		PaymentID: 9,
		Status:    "verified",
		Message:   "Pagamento verificado",
	}

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "payment_verified", decoded["type"])
	assert.Equal(t, float64(1), decoded["user_id"])
	assert.Equal(t, float64(9), decoded["payment_id"])
}

func TestTypeMessages(t *testing.T) {
	types := []string{
		TypePaymentVerified,
		TypePaymentRejected,
		TypeListingApproved,
		TypeListingRejected,
		TypeSubscriptionActivated,
	}

	for _, typ := range types {
		msg, ok := typeMessages[typ]
		assert.True(t, ok, "type %s should have a default message", typ)
		assert.NotEmpty(t, msg)
	}
}

func TestPublisher_FillsDefaultMessage(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	pub := NewPublisher(client)
	evt := &Event{Type: TypeListingApproved, UserID: 3, ListingID: 7}

	err := pub.Publish(context.Background(), evt)
	require.NoError(t, err)
	assert.Equal(t, "Anúncio aprovado", evt.Message)
}

func TestPublishSubscribe_RoundTrip(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan *Event, 1)
	sub := NewSubscriber(client)
	go func() {
		_ = sub.Run(ctx, func(evt *Event) {
			received <- evt
		})
	}()

	// Dá tempo para a assinatura se estabelecer
	time.Sleep(50 * time.Millisecond)

	pub := NewPublisher(client)
	err := pub.Publish(ctx, &Event{
		Type:      TypePaymentRejected,
		UserID:    5,
		PaymentID: 11,
		Status:    "rejected",
	})
	require.NoError(t, err)

	select {
	case evt := <-received:
		assert.Equal(t, TypePaymentRejected, evt.Type)
		assert.Equal(t, int64(5), evt.UserID)
		assert.Equal(t, int64(11), evt.PaymentID)
		assert.Equal(t, "Pagamento rejeitado", evt.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("event not received")
	}
}
