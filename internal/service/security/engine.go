package security

import (
	"context"
	"errors"
	"fmt"
	"image"
	"slices"
	"sync"
	"time"

	"github.com/oshokin/catpoint/internal/classifier"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/logger"
	"github.com/oshokin/catpoint/internal/repository/state"
)

// CatConfidenceThreshold is the confidence, in percent, required to report a cat.
const CatConfidenceThreshold float32 = 50.0

var (
	// ErrNilSensor is returned when an operation receives a nil sensor.
	ErrNilSensor = errors.New("sensor is nil")
	// ErrNilRepository is returned when the engine is built without a repository.
	ErrNilRepository = errors.New("repository is nil")
	// ErrNilClassifier is returned when the engine is built without a classifier.
	ErrNilClassifier = errors.New("classifier is nil")
)

// Engine owns the alarm rules.
type Engine struct {
	// repo is the source of truth for sensors and statuses.
	repo state.Repository
	// classifier detects cats in camera images.
	classifier classifier.Service
	// catVisible is the result of the last classification.
	catVisible bool
	// mu serializes engine operations and protects catVisible.
	mu sync.Mutex

	// listeners are notified in registration order.
	listeners []StatusListener
	// listenersMu protects listeners independently of mu.
	listenersMu sync.RWMutex
}

// NewEngine creates an engine backed by the provided repository and classifier.
func NewEngine(repo state.Repository, cls classifier.Service) (*Engine, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}

	if cls == nil {
		return nil, ErrNilClassifier
	}

	return &Engine{
		repo:       repo,
		classifier: cls,
	}, nil
}

// SetArmingStatus changes the arming mode.
//
// Disarming clears the alarm. Arming first deactivates every active sensor,
// then stores the new mode; arming at home while a cat is in view raises the
// alarm immediately.
func (e *Engine) SetArmingStatus(ctx context.Context, status domain.ArmingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("set arming status: %w: %q", domain.ErrUnknownArmingStatus, status)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if status == domain.ArmingStatusDisarmed {
		if err := e.setAlarmStatusLocked(ctx, domain.AlarmStatusNoAlarm); err != nil {
			return err
		}
	} else if err := e.resetSensorsLocked(ctx); err != nil {
		return err
	}

	if err := e.repo.SetArmingStatus(ctx, status); err != nil {
		return fmt.Errorf("persist arming status: %w", err)
	}

	logger.InfoKV(ctx, "Arming status changed", "arming_status", status, "cat_visible", e.catVisible)

	if status == domain.ArmingStatusArmedHome && e.catVisible {
		return e.setAlarmStatusLocked(ctx, domain.AlarmStatusAlarm)
	}

	return nil
}

// ChangeSensorActivationStatus applies a sensor activation change and
// persists the sensor. The sensor is updated in place.
func (e *Engine) ChangeSensorActivationStatus(ctx context.Context, sensor *domain.Sensor, active bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.changeSensorLocked(ctx, sensor, active)
}

// SetSensorActive looks the sensor up by ID and applies ChangeSensorActivationStatus.
// It returns the stored sensor after the change.
func (e *Engine) SetSensorActive(ctx context.Context, id string, active bool) (*domain.Sensor, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sensor, err := e.repo.Sensor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load sensor: %w", err)
	}

	if err = e.changeSensorLocked(ctx, sensor, active); err != nil {
		return nil, err
	}

	return sensor.Clone(), nil
}

// ProcessImage classifies a camera image and reacts to the result.
// Listeners learn about the classification even when no transition happens.
func (e *Engine) ProcessImage(ctx context.Context, img image.Image) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cat, err := e.classifier.ContainsCat(ctx, img, CatConfidenceThreshold)
	if err != nil {
		return fmt.Errorf("classify image: %w", err)
	}

	e.catVisible = cat

	logger.DebugKV(ctx, "Image classified", "cat", cat)

	err = e.catDetectedLocked(ctx, cat)

	e.notifyCatDetected(ctx, cat)

	return err
}

// SetAlarmStatus stores the alarm status and notifies every listener.
func (e *Engine) SetAlarmStatus(ctx context.Context, status domain.AlarmStatus) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.setAlarmStatusLocked(ctx, status)
}

// AddStatusListener registers a listener. Registering it twice has no effect.
func (e *Engine) AddStatusListener(listener StatusListener) {
	if listener == nil {
		return
	}

	e.listenersMu.Lock()
	defer e.listenersMu.Unlock()

	if slices.Contains(e.listeners, listener) {
		return
	}

	e.listeners = append(e.listeners, listener)
}

// RemoveStatusListener unregisters a listener.
func (e *Engine) RemoveStatusListener(listener StatusListener) {
	e.listenersMu.Lock()
	defer e.listenersMu.Unlock()

	e.listeners = slices.DeleteFunc(e.listeners, func(l StatusListener) bool {
		return l == listener
	})
}

// NotifySensorsChanged fires the optional sensor hook on listeners that
// implement SensorStatusListener. The engine rules never call it; it is meant
// for code that adds, removes or toggles sensors.
func (e *Engine) NotifySensorsChanged(ctx context.Context) {
	for _, l := range e.listenersSnapshot() {
		if sl, ok := l.(SensorStatusListener); ok {
			sl.SensorStatusChanged(ctx)
		}
	}
}

// AlarmStatus returns the current alarm status.
func (e *Engine) AlarmStatus(ctx context.Context) (domain.AlarmStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.repo.AlarmStatus(ctx)
}

// ArmingStatus returns the current arming status.
func (e *Engine) ArmingStatus(ctx context.Context) (domain.ArmingStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.repo.ArmingStatus(ctx)
}

// Sensors returns every registered sensor.
func (e *Engine) Sensors(ctx context.Context) ([]*domain.Sensor, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.repo.Sensors(ctx)
}

// Sensor returns the sensor with the given ID.
func (e *Engine) Sensor(ctx context.Context, id string) (*domain.Sensor, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.repo.Sensor(ctx, id)
}

// AddSensor registers a sensor in the repository.
func (e *Engine) AddSensor(ctx context.Context, sensor *domain.Sensor) error {
	if sensor == nil {
		return ErrNilSensor
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.repo.AddSensor(ctx, sensor); err != nil {
		return fmt.Errorf("add sensor: %w", err)
	}

	logger.InfoKV(ctx, "Sensor added", "sensor_id", sensor.ID, "name", sensor.Name, "type", sensor.Type)

	return nil
}

// RemoveSensor unregisters a sensor from the repository.
func (e *Engine) RemoveSensor(ctx context.Context, sensor *domain.Sensor) error {
	if sensor == nil {
		return ErrNilSensor
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.repo.RemoveSensor(ctx, sensor); err != nil {
		return fmt.Errorf("remove sensor: %w", err)
	}

	logger.InfoKV(ctx, "Sensor removed", "sensor_id", sensor.ID, "name", sensor.Name)

	return nil
}

// CatDetected returns the result of the last image classification.
func (e *Engine) CatDetected() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.catVisible
}

// Snapshot returns a consistent view of the whole controller state.
func (e *Engine) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	alarm, err := e.repo.AlarmStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("load alarm status: %w", err)
	}

	arming, err := e.repo.ArmingStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("load arming status: %w", err)
	}

	sensors, err := e.repo.Sensors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sensors: %w", err)
	}

	return &domain.Snapshot{
		Timestamp:    time.Now(),
		AlarmStatus:  alarm,
		ArmingStatus: arming,
		CatDetected:  e.catVisible,
		Sensors:      sensors,
	}, nil
}
