package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/catpoint/internal/config"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/logger"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
	"github.com/oshokin/catpoint/internal/presenter/console"
	"github.com/oshokin/catpoint/internal/protoconv"
	"github.com/oshokin/catpoint/internal/service/common"
)

// Options controls the watcher behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// RetryInterval defines the delay before reopening a broken stream.
	RetryInterval time.Duration
	// ExitOnAlarm stops watching once the alarm status becomes ALARM.
	ExitOnAlarm bool
	// Out receives the printed events. Defaults to stdout.
	Out io.Writer
	// NoColor disables ANSI colors in the output.
	NoColor bool
}

// DefaultRetryInterval defines the delay between stream reconnect attempts.
const DefaultRetryInterval = 5 * time.Second

// errAlarmRaised indicates that the alarm sounded and the watcher should stop.
var errAlarmRaised = errors.New("alarm raised")

// Run prints server events until ctx is canceled.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "watcher")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if opts.RetryInterval <= 0 {
		opts.RetryInterval = DefaultRetryInterval
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout), common.WithActor(actor))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	printer := newPrinter(opts)

	logger.InfoKV(ctx, "Watching events", "server_address", serverAddress)

	for {
		err = watch(ctx, client, printer, opts.ExitOnAlarm)

		switch {
		case errors.Is(err, errAlarmRaised):
			logger.Info(ctx, "Alarm raised, exiting")

			return nil
		case ctx.Err() != nil:
			logger.Info(ctx, "Context canceled, exiting")

			return nil
		case err != nil:
			logger.ErrorKV(ctx, "Event stream failed", "error", err, "retry_in", opts.RetryInterval.String())
		}

		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")

			return nil
		case <-time.After(opts.RetryInterval):
		}
	}
}

// watch prints the current state, then streams events until the stream breaks.
func watch(ctx context.Context, client *common.Client, printer *console.Printer, exitOnAlarm bool) error {
	stream, err := client.WatchEvents(ctx)
	if err != nil {
		return err
	}

	current, err := client.GetStatus(ctx)
	if err != nil {
		return err
	}

	alarm, err := protoconv.FromProtoAlarmStatus(current.GetAlarmStatus())
	if err != nil {
		return err
	}

	printer.AlarmStatusChanged(ctx, alarm)

	if exitOnAlarm && alarm == domain.AlarmStatusAlarm {
		return errAlarmRaised
	}

	for {
		event, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
				return nil
			}

			return fmt.Errorf("receive event: %w", err)
		}

		if err = handleEvent(ctx, printer, event, exitOnAlarm); err != nil {
			return err
		}
	}
}

// handleEvent prints one event and reports errAlarmRaised when asked to stop on alarm.
func handleEvent(ctx context.Context, printer *console.Printer, event *pb.Event, exitOnAlarm bool) error {
	switch event.GetKind() {
	case pb.EventKind_EVENT_KIND_ALARM_STATUS:
		alarm, err := protoconv.FromProtoAlarmStatus(event.GetAlarmStatus())
		if err != nil {
			logger.WarnKV(ctx, "Ignoring alarm event", "error", err)
			return nil
		}

		printer.AlarmStatusChanged(ctx, alarm)

		if exitOnAlarm && alarm == domain.AlarmStatusAlarm {
			return errAlarmRaised
		}
	case pb.EventKind_EVENT_KIND_CAT_DETECTED:
		printer.CatDetected(ctx, event.GetCatDetected())
	case pb.EventKind_EVENT_KIND_SENSORS:
		printer.SensorStatusChanged(ctx)
	default:
		logger.DebugKV(ctx, "Ignoring unknown event", "kind", event.GetKind())
	}

	return nil
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
