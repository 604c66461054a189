package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"

	"github.com/openmarket/markethub/lib/service"
)

// bufPool reuses encode buffers between published events. With a single
// publisher goroutine there is only ever one buffer in here.
var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

const (
	contentTypeJSON = "application/json"

	defaultEventExchange = "markethub_event"
)

// SubscribeToEventsFunc hands the publisher a drained stream of every
// notification the service emits.
type SubscribeToEventsFunc = func() (chan service.Event, error)

type Client interface {
	// StartPublishEvents publishes every listed/sold event to the event
	// exchange with routing key "market.<type>" until the context ends.
	StartPublishEvents(ctx context.Context, eventsSubscribeFunc SubscribeToEventsFunc) error
	// Close will close all connections to rabbitmq
	Close() error
}

type DefaultClient struct {
	amqpClient AMQPClient

	eventExchange string

	logger *lecho.Logger
}

type ClientOption = func(client *DefaultClient)

func WithEventExchange(exchange string) ClientOption {
	return func(client *DefaultClient) {
		client.eventExchange = exchange
	}
}

func WithLogger(logger *lecho.Logger) ClientOption {
	return func(client *DefaultClient) {
		client.logger = logger
	}
}

func NewClient(amqpClient AMQPClient, options ...ClientOption) (Client, error) {
	client := &DefaultClient{
		amqpClient:    amqpClient,
		eventExchange: defaultEventExchange,
		logger: lecho.New(
			os.Stdout,
			lecho.WithLevel(log.DEBUG),
			lecho.WithTimestamp(),
		),
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (client *DefaultClient) Close() error { return client.amqpClient.Close() }

func (client *DefaultClient) StartPublishEvents(ctx context.Context, eventsSubscribeFunc SubscribeToEventsFunc) error {
	err := client.amqpClient.ExchangeDeclare(
		client.eventExchange,
		// topic exchanges let consumers bind per routing key, so a consumer
		// can take only sold events or only listed events
		"topic",
		// Durable and Non-Auto-Deleted exchanges will survive server restarts and remain
		// declared when there are no remaining bindings.
		true,
		false,
		// Non-Internal exchange's accept direct publishing
		false,
		// Nowait: We set this to false as we want to wait for a server response
		// to check whether the exchange was created succesfully
		false,
		nil,
	)
	if err != nil {
		return err
	}

	client.logger.Info("Starting rabbitmq publisher")

	events, err := eventsSubscribeFunc()
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return context.Canceled
		case event := <-events:
			if err = client.publishToEventExchange(ctx, event); err != nil {
				captureErr(client.logger, err)
			}
		}
	}
}

func (client *DefaultClient) publishToEventExchange(ctx context.Context, event service.Event) error {
	payload := bufPool.Get().(*bytes.Buffer)
	payload.Reset()
	defer bufPool.Put(payload)

	if err := json.NewEncoder(payload).Encode(event); err != nil {
		return err
	}

	key := fmt.Sprintf("market.%s", event.Type)

	err := client.amqpClient.PublishWithContext(ctx,
		client.eventExchange,
		key,
		false,
		false,
		amqp.Publishing{
			ContentType: contentTypeJSON,
			Body:        payload.Bytes(),
		},
	)
	if err != nil {
		captureErr(client.logger, err)
		return err
	}

	client.logger.Debugf("Successfully published %s event for asset %s to rabbitmq", event.Type, event.AssetID)

	return nil
}

func captureErr(logger *lecho.Logger, err error) {
	logger.Error(err)
	sentry.CaptureException(err)
}
