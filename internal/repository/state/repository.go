package state

import (
	"context"
	"errors"

	domain "github.com/oshokin/catpoint/internal/domain/security"
)

// Repository defines persistence operations for the controller state.
// It is the single source of truth: callers must not cache what it returns.
type Repository interface {
	// Sensors returns every registered sensor ordered by name, type and ID.
	Sensors(ctx context.Context) ([]*domain.Sensor, error)
	// Sensor returns the sensor with the given ID or ErrSensorNotFound.
	Sensor(ctx context.Context, id string) (*domain.Sensor, error)
	// AddSensor registers a sensor, replacing one with the same ID.
	AddSensor(ctx context.Context, sensor *domain.Sensor) error
	// RemoveSensor unregisters a sensor. Removing an unknown sensor is a no-op.
	RemoveSensor(ctx context.Context, sensor *domain.Sensor) error
	// UpdateSensor stores the new state of a registered sensor.
	UpdateSensor(ctx context.Context, sensor *domain.Sensor) error
	// AlarmStatus returns the current alarm status.
	AlarmStatus(ctx context.Context) (domain.AlarmStatus, error)
	// SetAlarmStatus stores the alarm status.
	SetAlarmStatus(ctx context.Context, status domain.AlarmStatus) error
	// ArmingStatus returns the current arming status.
	ArmingStatus(ctx context.Context) (domain.ArmingStatus, error)
	// SetArmingStatus stores the arming status.
	SetArmingStatus(ctx context.Context, status domain.ArmingStatus) error
}

var (
	// ErrSensorNotFound is returned when no sensor has the requested ID.
	ErrSensorNotFound = errors.New("sensor not found")
	// ErrNilSensor is returned when a nil sensor is passed to the repository.
	ErrNilSensor = errors.New("sensor is nil")
)

// Initial statuses used when nothing has been stored yet.
const (
	InitialAlarmStatus  = domain.AlarmStatusNoAlarm
	InitialArmingStatus = domain.ArmingStatusDisarmed
)
