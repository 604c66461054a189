package rabbitmq_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket/markethub/rabbitmq"
	"github.com/openmarket/markethub/lib/service"
)

type publishedMessage struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeAMQPClient struct {
	mu                sync.Mutex
	declaredExchanges []string
	published         []publishedMessage
}

func (f *fakeAMQPClient) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	body := make([]byte, len(msg.Body))
	copy(body, msg.Body)
	msg.Body = body
	f.published = append(f.published, publishedMessage{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeAMQPClient) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.declaredExchanges = append(f.declaredExchanges, name)
	return nil
}

func (f *fakeAMQPClient) Close() error { return nil }

func (f *fakeAMQPClient) snapshot() []publishedMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]publishedMessage{}, f.published...)
}

func TestStartPublishEvents(t *testing.T) {
	amqpClient := &fakeAMQPClient{}
	client, err := rabbitmq.NewClient(amqpClient, rabbitmq.WithEventExchange("test_exchange"))
	require.NoError(t, err)

	events := make(chan service.Event, 2)
	events <- service.Event{Type: "listed", AssetID: "asset-1", SellerID: "alice", UnitPrice: 10, Quantity: 5}
	events <- service.Event{Type: "sold", AssetID: "asset-1", SellerID: "alice", BuyerID: "bob", Quantity: 3}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- client.StartPublishEvents(ctx, func() (chan service.Event, error) {
			return events, nil
		})
	}()

	assert.Eventually(t, func() bool {
		return len(amqpClient.snapshot()) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	published := amqpClient.snapshot()
	assert.Equal(t, []string{"test_exchange"}, amqpClient.declaredExchanges)
	assert.Equal(t, "market.listed", published[0].key)
	assert.Equal(t, "market.sold", published[1].key)

	var event service.Event
	require.NoError(t, json.Unmarshal(published[1].msg.Body, &event))
	assert.Equal(t, "bob", event.BuyerID)
	assert.Equal(t, uint64(3), event.Quantity)
}
