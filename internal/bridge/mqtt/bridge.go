package mqtt

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/logger"
)

// outboxSize is the number of messages queued for publishing before new ones are dropped.
const outboxSize = 32

// Engine abstracts the engine operations the bridge depends on.
type Engine interface {
	AlarmStatus(ctx context.Context) (domain.AlarmStatus, error)
	CatDetected() bool
	SetSensorActive(ctx context.Context, id string, active bool) (*domain.Sensor, error)
	NotifySensorsChanged(ctx context.Context)
}

type (
	sensorCommand struct {
		Active *bool `json:"active"`
	}

	alarmMessage struct {
		Status      string `json:"status"`
		Description string `json:"description"`
	}

	catMessage struct {
		Cat bool `json:"cat"`
	}
)

// message is a queued publish.
type message struct {
	topic   string
	payload []byte
}

// Bridge relays sensor commands to the engine and engine notifications to the broker.
// Register it as an engine status listener before calling Run.
type Bridge struct {
	client Client
	engine Engine
	topics Topics
	qos    byte

	// outbox decouples engine notifications from broker round trips.
	outbox chan message
}

// NewBridge creates a bridge publishing under prefix with the given QoS.
func NewBridge(client Client, engine Engine, prefix string, qos byte) *Bridge {
	return &Bridge{
		client: client,
		engine: engine,
		topics: Topics{Prefix: prefix},
		qos:    qos,
		outbox: make(chan message, outboxSize),
	}
}

// Run subscribes to sensor commands, publishes the current state and then
// publishes queued notifications until ctx is done.
func (b *Bridge) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "mqtt-bridge")

	filter := b.topics.SensorSetFilter()

	err := b.client.Subscribe(filter, b.qos, func(topic string, payload []byte) error {
		return b.HandleSensorCommand(ctx, topic, payload)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", filter, err)
	}

	logger.InfoKV(ctx, "MQTT bridge started", "filter", filter)

	alarm, err := b.engine.AlarmStatus(ctx)
	if err != nil {
		return fmt.Errorf("load alarm status: %w", err)
	}

	b.AlarmStatusChanged(ctx, alarm)
	b.CatDetected(ctx, b.engine.CatDetected())

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "MQTT bridge stopped")

			return nil
		case msg := <-b.outbox:
			if err = b.client.Publish(msg.topic, b.qos, true, msg.payload); err != nil {
				logger.WarnKV(ctx, "Failed to publish MQTT message", "topic", msg.topic, "error", err)
			}
		}
	}
}

// HandleSensorCommand applies a {"active": bool} command to the sensor named in the topic.
func (b *Bridge) HandleSensorCommand(ctx context.Context, topic string, payload []byte) error {
	id, err := b.topics.ParseSensorSet(topic)
	if err != nil {
		return err
	}

	var cmd sensorCommand
	if err = json.Unmarshal(payload, &cmd); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if cmd.Active == nil {
		return fmt.Errorf("%w: active flag is missing", ErrInvalidPayload)
	}

	ctx = logger.WithKV(ctx, "sensor_id", id)

	if _, err = b.engine.SetSensorActive(ctx, id, *cmd.Active); err != nil {
		return fmt.Errorf("set sensor %s active: %w", id, err)
	}

	b.engine.NotifySensorsChanged(ctx)

	return nil
}

// AlarmStatusChanged queues the retained alarm status message.
func (b *Bridge) AlarmStatusChanged(ctx context.Context, status domain.AlarmStatus) {
	b.enqueue(ctx, b.topics.AlarmStatus(), alarmMessage{
		Status:      string(status),
		Description: domain.DescribeAlarm(status).Description,
	})
}

// CatDetected queues the retained camera message.
func (b *Bridge) CatDetected(ctx context.Context, cat bool) {
	b.enqueue(ctx, b.topics.CameraCat(), catMessage{Cat: cat})
}

func (b *Bridge) enqueue(ctx context.Context, topic string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to encode MQTT message", "topic", topic, "error", err)

		return
	}

	select {
	case b.outbox <- message{topic: topic, payload: payload}:
	default:
		logger.WarnKV(ctx, "MQTT outbox is full, dropping message", "topic", topic)
	}
}
