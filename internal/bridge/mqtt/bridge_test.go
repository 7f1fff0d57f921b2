package mqtt

import (
	"context"
	"encoding/json"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/catpoint/internal/classifier"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/repository/state"
	engine "github.com/oshokin/catpoint/internal/service/security"
)

// fakeClient records publishes and keeps subscribed handlers.
type fakeClient struct {
	mu        sync.Mutex
	published []message
	handlers  map[string]MessageHandler
	qos       []byte
}

func newFakeClient() *fakeClient {
	return &fakeClient{handlers: make(map[string]MessageHandler)}
}

// Publish records the message.
func (f *fakeClient) Publish(topic string, qos byte, retained bool, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !retained {
		return ErrPublishFailed
	}

	f.published = append(f.published, message{topic: topic, payload: payload})
	f.qos = append(f.qos, qos)

	return nil
}

// Subscribe stores the handler.
func (f *fakeClient) Subscribe(topic string, _ byte, handler MessageHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.handlers[topic] = handler

	return nil
}

// Close does nothing.
func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) handler(topic string) MessageHandler {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.handlers[topic]
}

// last returns the latest payload published on topic.
func (f *fakeClient) last(topic string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(f.published) - 1; i >= 0; i-- {
		if f.published[i].topic == topic {
			return f.published[i].payload
		}
	}

	return nil
}

// runBridge starts a bridge over a fresh engine with one door sensor.
func runBridge(t *testing.T) (*fakeClient, *engine.Engine, *domain.Sensor) {
	t.Helper()

	eng, err := engine.NewEngine(state.NewMemoryRepository(), &classifier.StaticService{Cat: true})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	door, err := domain.NewSensor("Door", domain.SensorTypeDoor)
	require.NoError(t, err)
	require.NoError(t, eng.AddSensor(ctx, door))

	client := newFakeClient()
	bridge := NewBridge(client, eng, "home", 1)
	eng.AddStatusListener(bridge)

	done := make(chan error, 1)

	go func() {
		done <- bridge.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	require.Eventually(t, func() bool {
		return client.handler("home/sensor/+/set") != nil && client.last("home/camera/cat") != nil
	}, 5*time.Second, 10*time.Millisecond)

	return client, eng, door
}

func decodeAlarm(t *testing.T, payload []byte) alarmMessage {
	t.Helper()

	var msg alarmMessage

	require.NoError(t, json.Unmarshal(payload, &msg))

	return msg
}

// TestBridge_PublishesInitialState checks the retained messages sent on start.
func TestBridge_PublishesInitialState(t *testing.T) {
	t.Parallel()

	client, _, _ := runBridge(t)

	msg := decodeAlarm(t, client.last("home/alarm/status"))
	require.Equal(t, "NO_ALARM", msg.Status)
	require.Equal(t, "Cool and Good", msg.Description)
	require.JSONEq(t, `{"cat":false}`, string(client.last("home/camera/cat")))

	client.mu.Lock()
	defer client.mu.Unlock()

	for _, qos := range client.qos {
		require.Equal(t, byte(1), qos)
	}
}

// TestBridge_SensorCommands drives the engine from MQTT messages.
func TestBridge_SensorCommands(t *testing.T) {
	t.Parallel()

	client, eng, door := runBridge(t)
	ctx := context.Background()

	require.NoError(t, eng.SetArmingStatus(ctx, domain.ArmingStatusArmedAway))

	handler := client.handler("home/sensor/+/set")
	require.NoError(t, handler("home/sensor/"+door.ID+"/set", []byte(`{"active":true}`)))

	status, err := eng.AlarmStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.AlarmStatusPendingAlarm, status)

	require.Eventually(t, func() bool {
		payload := client.last("home/alarm/status")

		return payload != nil && decodeAlarm(t, payload).Status == "PENDING_ALARM"
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, handler("home/sensor/"+door.ID+"/set", []byte(`{"active":false}`)))

	status, err = eng.AlarmStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.AlarmStatusNoAlarm, status)
}

// TestBridge_RejectsBadCommands covers malformed topics and payloads.
func TestBridge_RejectsBadCommands(t *testing.T) {
	t.Parallel()

	client, _, door := runBridge(t)
	handler := client.handler("home/sensor/+/set")

	require.ErrorIs(t, handler("home/sensor/"+door.ID+"/set", []byte(`{`)), ErrInvalidPayload)
	require.ErrorIs(t, handler("home/sensor/"+door.ID+"/set", []byte(`{}`)), ErrInvalidPayload)
	require.ErrorIs(t, handler("home/camera/cat", []byte(`{"active":true}`)), ErrInvalidTopic)
	require.ErrorIs(t, handler("home/sensor/missing/set", []byte(`{"active":true}`)), state.ErrSensorNotFound)
}

// TestBridge_CameraResults publishes every classification.
func TestBridge_CameraResults(t *testing.T) {
	t.Parallel()

	client, eng, _ := runBridge(t)

	require.NoError(t, eng.ProcessImage(context.Background(), classifierImage()))

	require.Eventually(t, func() bool {
		return string(client.last("home/camera/cat")) == `{"cat":true}`
	}, 5*time.Second, 10*time.Millisecond)
}

// TestTopics covers topic building and parsing.
func TestTopics(t *testing.T) {
	t.Parallel()

	topics := Topics{Prefix: "catpoint"}

	require.Equal(t, "catpoint/sensor/+/set", topics.SensorSetFilter())
	require.Equal(t, "catpoint/alarm/status", topics.AlarmStatus())
	require.Equal(t, "catpoint/camera/cat", topics.CameraCat())

	id, err := topics.ParseSensorSet(topics.SensorSet("abc"))
	require.NoError(t, err)
	require.Equal(t, "abc", id)

	for _, topic := range []string{
		"catpoint/sensor//set",
		"catpoint/sensor/a/b/set",
		"catpoint/sensor/abc",
		"other/sensor/abc/set",
	} {
		_, err = topics.ParseSensorSet(topic)
		require.ErrorIs(t, err, ErrInvalidTopic, topic)
	}
}

func classifierImage() image.Image {
	return image.NewGray(image.Rect(0, 0, 1, 1))
}
