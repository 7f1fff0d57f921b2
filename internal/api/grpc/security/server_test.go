package security

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/oshokin/catpoint/internal/classifier"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
	"github.com/oshokin/catpoint/internal/repository/state"
	engine "github.com/oshokin/catpoint/internal/service/security"
)

// testEnv is a server running on an in-memory listener.
type testEnv struct {
	server *Server
	client pb.SecurityServiceClient
}

// newTestEnv starts a server backed by a memory repository and a static classifier.
func newTestEnv(t *testing.T, cat bool) *testEnv {
	t.Helper()

	eng, err := engine.NewEngine(state.NewMemoryRepository(), &classifier.StaticService{Cat: cat})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	grpcServer := grpc.NewServer()
	server := NewServer(eng)
	pb.RegisterSecurityServiceServer(grpcServer, server)

	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()

		grpcServer.Stop()
	})

	return &testEnv{
		server: server,
		client: pb.NewSecurityServiceClient(conn),
	}
}

func (e *testEnv) subscriberCount() int {
	e.server.events.mu.Lock()
	defer e.server.events.mu.Unlock()

	return len(e.server.events.subscribers)
}

func encodePNG(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))

	return buf.Bytes()
}

// TestServer_Roundtrip arms the system and trips a sensor over the wire.
func TestServer_Roundtrip(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, false)
	ctx := context.Background()
	actor := &pb.Actor{Hostname: "test-hostname", Username: "test-user"}

	added, err := env.client.AddSensor(ctx, &pb.AddSensorRequest{Actor: actor, Name: "Front door", Type: pb.SensorType_SENSOR_TYPE_DOOR})
	require.NoError(t, err)
	require.NotEmpty(t, added.GetSensor().GetId())
	require.Equal(t, pb.SensorType_SENSOR_TYPE_DOOR, added.GetSensor().GetType())

	armed, err := env.client.SetArmingStatus(ctx, &pb.SetArmingStatusRequest{Actor: actor, ArmingStatus: pb.ArmingStatus_ARMING_STATUS_ARMED_AWAY})
	require.NoError(t, err)
	require.Equal(t, pb.ArmingStatus_ARMING_STATUS_ARMED_AWAY, armed.GetArmingStatus())
	require.Equal(t, "Armed - Away", armed.GetArmingDescription())

	activated, err := env.client.SetSensorActive(ctx, &pb.SetSensorActiveRequest{
		Actor:  actor,
		Id:     added.GetSensor().GetId(),
		Active: true,
	})
	require.NoError(t, err)
	require.True(t, activated.GetSensor().GetActive())

	response, err := env.client.GetStatus(ctx, &pb.GetStatusRequest{Actor: actor})
	require.NoError(t, err)
	require.Equal(t, pb.AlarmStatus_ALARM_STATUS_PENDING_ALARM, response.GetAlarmStatus())
	require.Equal(t, "I'm in Danger...", response.GetAlarmDescription())
	require.Len(t, response.GetSensors(), 1)
	require.NotNil(t, response.GetTimestamp())

	listed, err := env.client.ListSensors(ctx, new(pb.ListSensorsRequest))
	require.NoError(t, err)
	require.Len(t, listed.GetSensors(), 1)

	_, err = env.client.RemoveSensor(ctx, &pb.RemoveSensorRequest{Id: added.GetSensor().GetId()})
	require.NoError(t, err)

	listed, err = env.client.ListSensors(ctx, new(pb.ListSensorsRequest))
	require.NoError(t, err)
	require.Empty(t, listed.GetSensors())
}

// TestServer_ProcessImage raises the alarm for a cat while armed at home.
func TestServer_ProcessImage(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, true)
	ctx := context.Background()

	_, err := env.client.SetArmingStatus(ctx, &pb.SetArmingStatusRequest{ArmingStatus: pb.ArmingStatus_ARMING_STATUS_ARMED_HOME})
	require.NoError(t, err)

	response, err := env.client.ProcessImage(ctx, &pb.ProcessImageRequest{Image: encodePNG(t)})
	require.NoError(t, err)
	require.True(t, response.GetCatDetected())
	require.Equal(t, pb.AlarmStatus_ALARM_STATUS_ALARM, response.GetAlarmStatus())
}

// TestServer_Validation ensures invalid requests map to the right status codes.
func TestServer_Validation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, false)
	ctx := context.Background()

	_, err := env.client.SetArmingStatus(ctx, &pb.SetArmingStatusRequest{ArmingStatus: pb.ArmingStatus(42)})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.client.SetArmingStatus(ctx, new(pb.SetArmingStatusRequest))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.client.AddSensor(ctx, &pb.AddSensorRequest{Name: "Hatch", Type: pb.SensorType_SENSOR_TYPE_UNSPECIFIED})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.client.AddSensor(ctx, &pb.AddSensorRequest{Name: "", Type: pb.SensorType_SENSOR_TYPE_DOOR})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.client.SetSensorActive(ctx, &pb.SetSensorActiveRequest{Id: "", Active: true})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.client.SetSensorActive(ctx, &pb.SetSensorActiveRequest{Id: "missing", Active: true})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = env.client.RemoveSensor(ctx, &pb.RemoveSensorRequest{Id: "missing"})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = env.client.ProcessImage(ctx, &pb.ProcessImageRequest{Image: []byte("not an image")})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.client.ProcessImage(ctx, new(pb.ProcessImageRequest))
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_NilRequests checks direct calls with nil requests.
func TestServer_NilRequests(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, false)
	ctx := context.Background()

	_, err := env.server.GetStatus(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.server.SetArmingStatus(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.server.RemoveSensor(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.server.SetSensorActive(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_WatchEvents streams notifications caused by other calls.
func TestServer_WatchEvents(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, false)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := env.client.WatchEvents(ctx, new(pb.WatchEventsRequest))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return env.subscriberCount() == 1
	}, 5*time.Second, 10*time.Millisecond)

	added, err := env.client.AddSensor(ctx, &pb.AddSensorRequest{Name: "Hall", Type: pb.SensorType_SENSOR_TYPE_MOTION})
	require.NoError(t, err)

	_, err = env.client.SetArmingStatus(ctx, &pb.SetArmingStatusRequest{ArmingStatus: pb.ArmingStatus_ARMING_STATUS_ARMED_AWAY})
	require.NoError(t, err)

	_, err = env.client.SetSensorActive(ctx, &pb.SetSensorActiveRequest{Id: added.GetSensor().GetId(), Active: true})
	require.NoError(t, err)

	_, err = env.client.ProcessImage(ctx, &pb.ProcessImageRequest{Image: encodePNG(t)})
	require.NoError(t, err)

	expected := []*pb.Event{
		{Kind: pb.EventKind_EVENT_KIND_SENSORS},
		{Kind: pb.EventKind_EVENT_KIND_ALARM_STATUS, AlarmStatus: pb.AlarmStatus_ALARM_STATUS_PENDING_ALARM},
		{Kind: pb.EventKind_EVENT_KIND_SENSORS},
		{Kind: pb.EventKind_EVENT_KIND_CAT_DETECTED, CatDetected: false},
	}

	for _, want := range expected {
		event, err := stream.Recv()
		require.NoError(t, err)
		require.Equal(t, want.GetKind(), event.GetKind())
		require.Equal(t, want.GetAlarmStatus(), event.GetAlarmStatus())
		require.Equal(t, want.GetCatDetected(), event.GetCatDetected())
		require.False(t, event.GetTimestamp().AsTime().IsZero())
	}

	cancel()

	require.Eventually(t, func() bool {
		return env.subscriberCount() == 0
	}, 5*time.Second, 10*time.Millisecond)
}

// TestEventHub_DropsWhenFull never blocks the publisher.
func TestEventHub_DropsWhenFull(t *testing.T) {
	t.Parallel()

	hub := NewEventHub()
	events, unsubscribe := hub.Subscribe()

	for range subscriberBuffer + 10 {
		hub.CatDetected(context.Background(), true)
	}

	require.Len(t, events, subscriberBuffer)

	unsubscribe()
	unsubscribe()

	// Publishing without subscribers is a no-op.
	hub.AlarmStatusChanged(context.Background(), domain.AlarmStatusAlarm)
}

// TestEventHub_Events converts engine notifications into protobuf events.
func TestEventHub_Events(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	hub := NewEventHub()
	hub.now = func() time.Time { return now }

	events, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	ctx := context.Background()
	hub.AlarmStatusChanged(ctx, domain.AlarmStatusPendingAlarm)
	hub.CatDetected(ctx, true)
	hub.SensorStatusChanged(ctx)

	event := <-events
	require.Equal(t, pb.EventKind_EVENT_KIND_ALARM_STATUS, event.GetKind())
	require.Equal(t, pb.AlarmStatus_ALARM_STATUS_PENDING_ALARM, event.GetAlarmStatus())
	require.Equal(t, now, event.GetTimestamp().AsTime())

	event = <-events
	require.Equal(t, pb.EventKind_EVENT_KIND_CAT_DETECTED, event.GetKind())
	require.True(t, event.GetCatDetected())

	event = <-events
	require.Equal(t, pb.EventKind_EVENT_KIND_SENSORS, event.GetKind())
	require.Equal(t, pb.AlarmStatus_ALARM_STATUS_UNSPECIFIED, event.GetAlarmStatus())
}
