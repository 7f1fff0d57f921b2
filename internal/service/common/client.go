//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/catpoint/internal/config"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
	"github.com/oshokin/catpoint/internal/protoconv"
)

// Client wraps the gRPC SecurityService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the server.
	conn *grpc.ClientConn
	// api is the typed SecurityService client.
	api pb.SecurityServiceClient

	// actor is attached to every request.
	actor *pb.Actor
	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithActor attaches the actor to every request.
func WithActor(actor *domain.Actor) Option {
	return func(c *Client) {
		c.actor = protoconv.ToProtoActor(actor)
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errSensorIDRequired is returned when a sensor operation has no ID.
	errSensorIDRequired = errors.New("sensor id must be provided")
	// errSensorMissing is returned when the server responds without a sensor.
	errSensorMissing = errors.New("response carries no sensor")
)

// Dial establishes a gRPC connection to the catpoint server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial catpoint server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewSecurityServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// GetStatus retrieves the controller state.
func (c *Client) GetStatus(ctx context.Context) (*pb.StatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetStatus(callCtx, &pb.GetStatusRequest{Actor: c.actor})
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	return resp, nil
}

// SetArmingStatus changes the arming mode.
func (c *Client) SetArmingStatus(ctx context.Context, status domain.ArmingStatus) (*pb.StatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.SetArmingStatusRequest{
		Actor:        c.actor,
		ArmingStatus: protoconv.ToProtoArmingStatus(status),
	}

	resp, err := c.api.SetArmingStatus(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("set arming status: %w", err)
	}

	return resp, nil
}

// ListSensors returns every registered sensor.
func (c *Client) ListSensors(ctx context.Context) ([]*domain.Sensor, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListSensors(callCtx, &pb.ListSensorsRequest{Actor: c.actor})
	if err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}

	sensors, err := protoconv.FromProtoSensors(resp.GetSensors())
	if err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}

	return sensors, nil
}

// AddSensor registers a sensor.
func (c *Client) AddSensor(ctx context.Context, name string, sensorType domain.SensorType) (*domain.Sensor, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.AddSensorRequest{
		Actor: c.actor,
		Name:  name,
		Type:  protoconv.ToProtoSensorType(sensorType),
	}

	resp, err := c.api.AddSensor(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("add sensor: %w", err)
	}

	return sensorFromResponse(resp)
}

// RemoveSensor unregisters a sensor.
func (c *Client) RemoveSensor(ctx context.Context, id string) error {
	if id == "" {
		return errSensorIDRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.RemoveSensor(callCtx, &pb.RemoveSensorRequest{Actor: c.actor, Id: id}); err != nil {
		return fmt.Errorf("remove sensor: %w", err)
	}

	return nil
}

// SetSensorActive changes the activation of a sensor.
func (c *Client) SetSensorActive(ctx context.Context, id string, active bool) (*domain.Sensor, error) {
	if id == "" {
		return nil, errSensorIDRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.SetSensorActiveRequest{
		Actor:  c.actor,
		Id:     id,
		Active: active,
	}

	resp, err := c.api.SetSensorActive(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("set sensor active: %w", err)
	}

	return sensorFromResponse(resp)
}

// ProcessImage submits an encoded camera image.
func (c *Client) ProcessImage(ctx context.Context, data []byte) (*pb.ProcessImageResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ProcessImage(callCtx, &pb.ProcessImageRequest{Actor: c.actor, Image: data})
	if err != nil {
		return nil, fmt.Errorf("process image: %w", err)
	}

	return resp, nil
}

// WatchEvents opens the event stream. The stream lives until ctx is canceled,
// so no call timeout is applied.
func (c *Client) WatchEvents(ctx context.Context) (grpc.ServerStreamingClient[pb.Event], error) {
	stream, err := c.api.WatchEvents(ctx, &pb.WatchEventsRequest{Actor: c.actor})
	if err != nil {
		return nil, fmt.Errorf("watch events: %w", err)
	}

	return stream, nil
}

// sensorFromResponse converts the sensor carried by a response.
func sensorFromResponse(resp *pb.SensorResponse) (*domain.Sensor, error) {
	if resp.GetSensor() == nil {
		return nil, errSensorMissing
	}

	return protoconv.FromProtoSensor(resp.GetSensor())
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
