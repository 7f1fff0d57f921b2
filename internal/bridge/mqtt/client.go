package mqtt

import (
	"context"
	"fmt"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/oshokin/catpoint/internal/config"
	"github.com/oshokin/catpoint/internal/logger"
)

const (
	// defaultConnectTimeout is the maximum time to wait for the initial connection.
	defaultConnectTimeout = 10 * time.Second
	// defaultOperationTimeout bounds publish and subscribe acknowledgements.
	defaultOperationTimeout = 5 * time.Second
	// defaultDisconnectQuiesce is the time in milliseconds to wait for pending work on disconnect.
	defaultDisconnectQuiesce = 250
	// defaultKeepAlive is the keepalive interval for the connection.
	defaultKeepAlive = 30 * time.Second
	// maxReconnectInterval caps the reconnect backoff.
	maxReconnectInterval = time.Minute
)

// MessageHandler is called for every message received on a subscribed topic.
// Handlers run on paho goroutines.
type MessageHandler func(topic string, payload []byte) error

// Client is the subset of broker operations the bridge needs.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
	Subscribe(topic string, qos byte, handler MessageHandler) error
	Close() error
}

// PahoClient implements Client on top of paho.mqtt.golang.
// Subscriptions are restored after every reconnect.
type PahoClient struct {
	client pahomqtt.Client

	// subscriptions tracks handlers for re-subscription on reconnect.
	subscriptions map[string]subscription
	subMu         sync.Mutex

	// ctx carries the logger used from paho callbacks.
	ctx context.Context //nolint:containedctx // Paho callbacks have no context of their own.
}

type subscription struct {
	qos     byte
	handler MessageHandler
}

var _ Client = (*PahoClient)(nil)

// Connect dials the broker described by cfg.
func Connect(ctx context.Context, cfg *config.MQTTConfig) (*PahoClient, error) {
	c := &PahoClient{
		subscriptions: make(map[string]subscription),
		ctx:           logger.WithName(ctx, "mqtt"),
	}

	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetMaxReconnectInterval(maxReconnectInterval).
		SetConnectTimeout(defaultConnectTimeout).
		SetKeepAlive(defaultKeepAlive).
		SetOnConnectHandler(func(pahomqtt.Client) { c.restoreSubscriptions() }).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			logger.WarnKV(c.ctx, "MQTT connection lost", "error", err)
		})

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	c.client = pahomqtt.NewClient(opts)

	token := c.client.Connect()
	if !token.WaitTimeout(defaultConnectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, defaultConnectTimeout)
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	logger.InfoKV(c.ctx, "Connected to MQTT broker", "broker", cfg.Broker, "client_id", cfg.ClientID)

	return c, nil
}

// Publish sends a message and waits for the acknowledgement.
func (c *PahoClient) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := c.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(defaultOperationTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, defaultOperationTimeout)
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	return nil
}

// Subscribe registers a handler for a topic filter.
func (c *PahoClient) Subscribe(topic string, qos byte, handler MessageHandler) error {
	c.subMu.Lock()
	c.subscriptions[topic] = subscription{qos: qos, handler: handler}
	c.subMu.Unlock()

	token := c.client.Subscribe(topic, qos, c.wrapHandler(handler))
	if !token.WaitTimeout(defaultOperationTimeout) {
		c.forget(topic)

		return fmt.Errorf("%w: timeout after %v", ErrSubscribeFailed, defaultOperationTimeout)
	}

	if err := token.Error(); err != nil {
		c.forget(topic)

		return fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}

	return nil
}

// Close disconnects from the broker.
func (c *PahoClient) Close() error {
	c.client.Disconnect(defaultDisconnectQuiesce)

	return nil
}

func (c *PahoClient) forget(topic string) {
	c.subMu.Lock()
	delete(c.subscriptions, topic)
	c.subMu.Unlock()
}

func (c *PahoClient) restoreSubscriptions() {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	for topic, sub := range c.subscriptions {
		c.client.Subscribe(topic, sub.qos, c.wrapHandler(sub.handler))
	}
}

// wrapHandler adds panic recovery and error logging to a handler.
func (c *PahoClient) wrapHandler(handler MessageHandler) pahomqtt.MessageHandler {
	return func(_ pahomqtt.Client, msg pahomqtt.Message) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorKV(c.ctx, "MQTT handler panic recovered", "topic", msg.Topic(), "panic", r)
			}
		}()

		if err := handler(msg.Topic(), msg.Payload()); err != nil {
			logger.WarnKV(c.ctx, "MQTT handler returned error", "topic", msg.Topic(), "error", err)
		}
	}
}
