package security

import (
	"context"
	"image"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/catpoint/internal/classifier"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/logger"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
	"github.com/oshokin/catpoint/internal/protoconv"
	engine "github.com/oshokin/catpoint/internal/service/security"
)

// Service abstracts the engine operations the transport layer depends on.
type Service interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
	AlarmStatus(ctx context.Context) (domain.AlarmStatus, error)
	SetArmingStatus(ctx context.Context, status domain.ArmingStatus) error
	Sensors(ctx context.Context) ([]*domain.Sensor, error)
	Sensor(ctx context.Context, id string) (*domain.Sensor, error)
	AddSensor(ctx context.Context, sensor *domain.Sensor) error
	RemoveSensor(ctx context.Context, sensor *domain.Sensor) error
	SetSensorActive(ctx context.Context, id string, active bool) (*domain.Sensor, error)
	ProcessImage(ctx context.Context, img image.Image) error
	CatDetected() bool
	NotifySensorsChanged(ctx context.Context)
	AddStatusListener(listener engine.StatusListener)
}

// Server implements the SecurityService gRPC API.
type Server struct {
	pb.UnimplementedSecurityServiceServer

	// service provides the alarm rules.
	service Service
	// events fans engine notifications out to WatchEvents streams.
	events *EventHub
}

var _ pb.SecurityServiceServer = (*Server)(nil)

// NewServer wires the provided service into a gRPC handler and subscribes
// the event hub to its notifications.
func NewServer(service Service) *Server {
	events := NewEventHub()
	service.AddStatusListener(events)

	return &Server{
		service: service,
		events:  events,
	}
}

// GetStatus returns the full controller state.
func (s *Server) GetStatus(ctx context.Context, req *pb.GetStatusRequest) (*pb.StatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return s.status(withActor(ctx, req.GetActor()))
}

// SetArmingStatus changes the arming mode and returns the resulting state.
func (s *Server) SetArmingStatus(ctx context.Context, req *pb.SetArmingStatusRequest) (*pb.StatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ctx = withActor(ctx, req.GetActor())

	arming, err := protoconv.FromProtoArmingStatus(req.GetArmingStatus())
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	logger.InfoKV(ctx, "Arming status requested", "arming_status", arming)

	if err = s.service.SetArmingStatus(ctx, arming); err != nil {
		return nil, toStatusError(ctx, err)
	}

	return s.status(ctx)
}

// ListSensors returns every registered sensor.
func (s *Server) ListSensors(ctx context.Context, req *pb.ListSensorsRequest) (*pb.ListSensorsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ctx = withActor(ctx, req.GetActor())

	sensors, err := s.service.Sensors(ctx)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	return &pb.ListSensorsResponse{Sensors: protoconv.ToProtoSensors(sensors)}, nil
}

// AddSensor registers a new inactive sensor.
func (s *Server) AddSensor(ctx context.Context, req *pb.AddSensorRequest) (*pb.SensorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ctx = withActor(ctx, req.GetActor())

	sensorType, err := protoconv.FromProtoSensorType(req.GetType())
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	sensor, err := domain.NewSensor(req.GetName(), sensorType)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	if err = s.service.AddSensor(ctx, sensor); err != nil {
		return nil, toStatusError(ctx, err)
	}

	s.service.NotifySensorsChanged(ctx)

	return &pb.SensorResponse{Sensor: protoconv.ToProtoSensor(sensor)}, nil
}

// RemoveSensor unregisters a sensor.
func (s *Server) RemoveSensor(ctx context.Context, req *pb.RemoveSensorRequest) (*pb.RemoveSensorResponse, error) {
	if req.GetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "sensor id is required")
	}

	ctx = withActor(ctx, req.GetActor())

	sensor, err := s.service.Sensor(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	if err = s.service.RemoveSensor(ctx, sensor); err != nil {
		return nil, toStatusError(ctx, err)
	}

	s.service.NotifySensorsChanged(ctx)

	return new(pb.RemoveSensorResponse), nil
}

// SetSensorActive changes the activation of a sensor.
func (s *Server) SetSensorActive(ctx context.Context, req *pb.SetSensorActiveRequest) (*pb.SensorResponse, error) {
	if req.GetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "sensor id is required")
	}

	ctx = withActor(ctx, req.GetActor())

	sensor, err := s.service.SetSensorActive(ctx, req.GetId(), req.GetActive())
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	s.service.NotifySensorsChanged(ctx)

	return &pb.SensorResponse{Sensor: protoconv.ToProtoSensor(sensor)}, nil
}

// ProcessImage classifies a camera image.
func (s *Server) ProcessImage(ctx context.Context, req *pb.ProcessImageRequest) (*pb.ProcessImageResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ctx = withActor(ctx, req.GetActor())

	img, err := classifier.DecodeImage(req.GetImage())
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	if err = s.service.ProcessImage(ctx, img); err != nil {
		return nil, toStatusError(ctx, err)
	}

	alarm, err := s.service.AlarmStatus(ctx)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	return &pb.ProcessImageResponse{
		CatDetected: s.service.CatDetected(),
		AlarmStatus: protoconv.ToProtoAlarmStatus(alarm),
	}, nil
}

// WatchEvents streams engine notifications until the client goes away.
func (s *Server) WatchEvents(req *pb.WatchEventsRequest, stream grpc.ServerStreamingServer[pb.Event]) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}

	ctx := withActor(stream.Context(), req.GetActor())

	events, unsubscribe := s.events.Subscribe()
	defer unsubscribe()

	logger.Info(ctx, "Event stream opened")
	defer logger.Info(ctx, "Event stream closed")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}

			if err := stream.Send(event); err != nil {
				return err
			}
		}
	}
}

func (s *Server) status(ctx context.Context) (*pb.StatusResponse, error) {
	snapshot, err := s.service.Snapshot(ctx)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	return protoconv.ToProtoStatus(snapshot), nil
}

// withActor adds the requesting actor to the request logger.
func withActor(ctx context.Context, actor *pb.Actor) context.Context {
	return logger.WithKV(ctx, "actor", protoconv.FromProtoActor(actor).String())
}
