package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	api "github.com/oshokin/catpoint/internal/api/grpc/security"
	"github.com/oshokin/catpoint/internal/api/http/panel"
	"github.com/oshokin/catpoint/internal/bridge/mqtt"
	"github.com/oshokin/catpoint/internal/config"
	"github.com/oshokin/catpoint/internal/logger"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
	"github.com/oshokin/catpoint/internal/presenter/console"
	"github.com/oshokin/catpoint/internal/service/security"
)

// Options controls the catpoint-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// StoragePath overrides the state file or database location from the config.
	StoragePath string
	// Console receives the colored status echo. Nil disables it.
	Console io.Writer
}

const (
	// readHeaderTimeout bounds how long the HTTP panel waits for request headers.
	readHeaderTimeout = 10 * time.Second
	// shutdownTimeout bounds the HTTP panel graceful shutdown.
	shutdownTimeout = 5 * time.Second
)

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the gRPC server, the optional HTTP panel and the optional MQTT
// bridge and blocks until ctx is canceled or one of them fails.
//
//nolint:funlen // Startup wiring reads best top to bottom.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "catpoint-server")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(level)
	}

	if opts.StoragePath != "" {
		settings.Storage.Path = opts.StoragePath
	}

	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	repo, closeRepo, err := openRepository(ctx, settings.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	defer func() {
		if err := closeRepo(); err != nil {
			logger.ErrorKV(ctx, "Failed to close storage", "error", err)
		}
	}()

	engine, err := newService(ctx, repo, newClassifier(settings.Classifier))
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}

	if opts.Console != nil {
		engine.AddStatusListener(console.NewPrinter(opts.Console))
	}

	bridge, closeBridge, err := connectBridge(ctx, &settings.MQTT, engine)
	if err != nil {
		return err
	}

	defer closeBridge()

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterSecurityServiceServer(grpcServer, api.NewServer(engine))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.SecurityService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	logger.InfoKV(ctx, "Catpoint server listening",
		"listen_address", listenAddress,
		"storage_driver", settings.Storage.Driver,
		"storage_path", settings.Storage.Path)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()

		return nil
	})

	if settings.HTTPAddress != "" {
		startPanel(ctx, groupCtx, group, settings.HTTPAddress, engine)
	}

	if bridge != nil {
		group.Go(func() error {
			return bridge.Run(groupCtx)
		})
	}

	if err = group.Wait(); err != nil {
		return err
	}

	logger.Info(ctx, "Catpoint server stopped")

	return nil
}

// startPanel runs the HTTP panel until groupCtx is done.
func startPanel(ctx, groupCtx context.Context, group *errgroup.Group, address string, engine *security.Engine) {
	httpServer := &http.Server{
		Addr:              address,
		Handler:           panel.NewHandler(logger.WithName(ctx, "panel"), engine),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group.Go(func() error {
		logger.InfoKV(ctx, "HTTP panel listening", "http_address", address)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})
}

// connectBridge connects to the MQTT broker when one is configured and
// registers the bridge as an engine listener. The returned bridge is nil when
// MQTT is disabled.
func connectBridge(
	ctx context.Context,
	cfg *config.MQTTConfig,
	engine *security.Engine,
) (*mqtt.Bridge, func(), error) {
	if !cfg.Enabled() {
		return nil, func() {}, nil
	}

	client, err := mqtt.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mqtt: %w", err)
	}

	bridge := mqtt.NewBridge(client, engine, cfg.TopicPrefix, cfg.QoS)
	engine.AddStatusListener(bridge)

	return bridge, func() {
		engine.RemoveStatusListener(bridge)

		_ = client.Close()
	}, nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
