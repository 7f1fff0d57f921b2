package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oshokin/catpoint/internal/config"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/logger"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
	"github.com/oshokin/catpoint/internal/presenter/console"
	"github.com/oshokin/catpoint/internal/protoconv"
	"github.com/oshokin/catpoint/internal/service/common"
)

// Options configures how catpoint-ctl reaches the server.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// Retry keeps pushing an arming change until the server confirms it.
	Retry bool

	// Out receives the printed result. Defaults to stdout.
	Out io.Writer

	// NoColor disables ANSI colors in the output.
	NoColor bool
}

// defaultPushInterval defines retry delay when pushing arming changes to the server.
const defaultPushInterval = 1 * time.Second

// session is an open connection plus the printer for its results.
type session struct {
	client  *common.Client
	printer *console.Printer
}

// connect loads settings, detects the actor and dials the server.
func connect(ctx context.Context, opts *Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	actor, err := common.DetectActor()
	if err != nil {
		return nil, err
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout), common.WithActor(actor))
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Connected to catpoint server", "server_address", serverAddress, "actor", actor)

	return &session{
		client:  client,
		printer: newPrinter(opts),
	}, nil
}

func newPrinter(opts *Options) *console.Printer {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	var printerOpts []console.Option
	if opts.NoColor {
		printerOpts = append(printerOpts, console.WithoutColor())
	}

	return console.NewPrinter(out, printerOpts...)
}

// withSession runs fn on a fresh connection and closes it afterwards.
func withSession(ctx context.Context, opts *Options, fn func(*session) error) error {
	s, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = s.client.Close()
	}()

	return fn(s)
}

// Status prints the full controller state.
func Status(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "status")

	return withSession(ctx, opts, func(s *session) error {
		resp, err := s.client.GetStatus(ctx)
		if err != nil {
			return err
		}

		return s.printStatus(resp)
	})
}

// SetArming changes the arming mode. With Retry set it keeps trying until the
// server reports the requested mode or ctx is canceled.
func SetArming(ctx context.Context, opts *Options, status domain.ArmingStatus) error {
	ctx = logger.WithName(ctx, "arming")

	return withSession(ctx, opts, func(s *session) error {
		logger.InfoKV(ctx, "Pushing arming status", "arming_status", status)

		// attempt tries once to change the arming status, returns (completed, error).
		attempt := func() (bool, error) {
			resp, err := s.client.SetArmingStatus(ctx, status)
			if err != nil {
				if !opts.Retry {
					return false, err
				}

				logger.ErrorKV(ctx, "SetArmingStatus failed", "error", err)

				return false, nil
			}

			if resp.GetArmingStatus() != protoconv.ToProtoArmingStatus(status) {
				return false, nil
			}

			return true, s.printStatus(resp)
		}

		done, err := attempt()
		if err != nil || done || !opts.Retry {
			return err
		}

		ticker := time.NewTicker(defaultPushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if done, err = attempt(); err != nil || done {
					return err
				}
			}
		}
	})
}

// ListSensors prints every registered sensor.
func ListSensors(ctx context.Context, opts *Options) error {
	return withSession(ctx, opts, func(s *session) error {
		sensors, err := s.client.ListSensors(ctx)
		if err != nil {
			return err
		}

		s.printer.PrintSensors(sensors)

		return nil
	})
}

// AddSensor registers a sensor and prints it.
func AddSensor(ctx context.Context, opts *Options, name string, sensorType domain.SensorType) error {
	return withSession(ctx, opts, func(s *session) error {
		sensor, err := s.client.AddSensor(ctx, name, sensorType)
		if err != nil {
			return err
		}

		s.printer.PrintSensors([]*domain.Sensor{sensor})

		return nil
	})
}

// RemoveSensor unregisters a sensor.
func RemoveSensor(ctx context.Context, opts *Options, id string) error {
	return withSession(ctx, opts, func(s *session) error {
		return s.client.RemoveSensor(ctx, id)
	})
}

// SetSensorActive activates or deactivates a sensor and prints the resulting state.
func SetSensorActive(ctx context.Context, opts *Options, id string, active bool) error {
	return withSession(ctx, opts, func(s *session) error {
		if _, err := s.client.SetSensorActive(ctx, id, active); err != nil {
			return err
		}

		resp, err := s.client.GetStatus(ctx)
		if err != nil {
			return err
		}

		return s.printStatus(resp)
	})
}

// SubmitImage sends an image file to the camera pipeline.
func SubmitImage(ctx context.Context, opts *Options, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	return withSession(ctx, opts, func(s *session) error {
		resp, err := s.client.ProcessImage(ctx, data)
		if err != nil {
			return err
		}

		alarm, err := protoconv.FromProtoAlarmStatus(resp.GetAlarmStatus())
		if err != nil {
			return err
		}

		s.printer.CatDetected(ctx, resp.GetCatDetected())
		s.printer.AlarmStatusChanged(ctx, alarm)

		return nil
	})
}

// printStatus prints the controller state carried by a status response.
func (s *session) printStatus(resp *pb.StatusResponse) error {
	snapshot, err := protoconv.FromProtoStatus(resp)
	if err != nil {
		return fmt.Errorf("decode status: %w", err)
	}

	s.printer.PrintSnapshot(snapshot)

	return nil
}
