package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/catpoint/internal/classifier"
	"github.com/oshokin/catpoint/internal/config"
	"github.com/oshokin/catpoint/internal/logger"
	"github.com/oshokin/catpoint/internal/repository/state"
	"github.com/oshokin/catpoint/internal/service/security"
)

// errUnsupportedDriver is returned for storage drivers without an implementation.
var errUnsupportedDriver = errors.New("unsupported storage driver")

// openRepository builds the repository selected by the storage settings.
// The returned close function releases backend resources and is never nil.
func openRepository(ctx context.Context, storage config.StorageConfig) (state.Repository, func() error, error) {
	noop := func() error { return nil }

	switch storage.Driver {
	case config.StorageMemory:
		return state.NewMemoryRepository(), noop, nil
	case config.StorageFile:
		return state.NewFileRepository(storage.Path), noop, nil
	case config.StorageSQLite:
		repo, err := state.OpenSQLiteRepository(ctx, storage.Path)
		if err != nil {
			return nil, noop, err
		}

		return repo, repo.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", errUnsupportedDriver, storage.Driver)
	}
}

// newService creates the engine backed by the provided repository and logs the
// state it starts from.
func newService(ctx context.Context, repo state.Repository, cls classifier.Service) (*security.Engine, error) {
	engine, err := security.NewEngine(repo, cls)
	if err != nil {
		return nil, err
	}

	snapshot, err := engine.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	logger.InfoKV(ctx, "Loaded controller state",
		"alarm_status", snapshot.AlarmStatus,
		"arming_status", snapshot.ArmingStatus,
		"sensors", len(snapshot.Sensors))

	return engine, nil
}

// newClassifier picks the image classifier described by the settings.
func newClassifier(cfg config.ClassifierConfig) classifier.Service {
	if cfg.Always != nil {
		return &classifier.StaticService{Cat: *cfg.Always}
	}

	return classifier.NewFakeService(cfg.Seed)
}
