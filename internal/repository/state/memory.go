package state

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/oshokin/catpoint/internal/domain/security"
)

// MemoryRepository keeps the controller state in process memory.
// Sensors are copied on the way in and out so callers never share
// references with the stored state.
type MemoryRepository struct {
	// sensors maps sensor IDs to the stored sensors.
	sensors map[string]*domain.Sensor
	// alarmStatus is the stored alarm status.
	alarmStatus domain.AlarmStatus
	// armingStatus is the stored arming status.
	armingStatus domain.ArmingStatus
	// mu protects all fields.
	mu sync.RWMutex
}

// NewMemoryRepository creates an empty repository in the initial state.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sensors:      make(map[string]*domain.Sensor),
		alarmStatus:  InitialAlarmStatus,
		armingStatus: InitialArmingStatus,
	}
}

// newMemoryRepositoryFromSnapshot seeds a repository with previously stored state.
// Empty statuses fall back to the initial ones, unknown statuses are rejected.
func newMemoryRepositoryFromSnapshot(snapshot *domain.Snapshot) (*MemoryRepository, error) {
	r := NewMemoryRepository()

	if snapshot.AlarmStatus != "" {
		if !snapshot.AlarmStatus.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAlarmStatus, snapshot.AlarmStatus)
		}

		r.alarmStatus = snapshot.AlarmStatus
	}

	if snapshot.ArmingStatus != "" {
		if !snapshot.ArmingStatus.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownArmingStatus, snapshot.ArmingStatus)
		}

		r.armingStatus = snapshot.ArmingStatus
	}

	for _, sensor := range snapshot.Sensors {
		if sensor != nil && sensor.ID != "" {
			r.sensors[sensor.ID] = sensor.Clone()
		}
	}

	return r, nil
}

// Sensors returns copies of every registered sensor.
func (r *MemoryRepository) Sensors(_ context.Context) ([]*domain.Sensor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sensorsLocked(), nil
}

// Sensor returns a copy of the sensor with the given ID.
func (r *MemoryRepository) Sensor(_ context.Context, id string) (*domain.Sensor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sensor, ok := r.sensors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSensorNotFound, id)
	}

	return sensor.Clone(), nil
}

// AddSensor stores a copy of the sensor.
func (r *MemoryRepository) AddSensor(_ context.Context, sensor *domain.Sensor) error {
	if sensor == nil {
		return ErrNilSensor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sensors[sensor.ID] = sensor.Clone()

	return nil
}

// RemoveSensor deletes the sensor with the same ID.
func (r *MemoryRepository) RemoveSensor(_ context.Context, sensor *domain.Sensor) error {
	if sensor == nil {
		return ErrNilSensor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sensors, sensor.ID)

	return nil
}

// UpdateSensor replaces the stored copy of a registered sensor.
func (r *MemoryRepository) UpdateSensor(_ context.Context, sensor *domain.Sensor) error {
	if sensor == nil {
		return ErrNilSensor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sensors[sensor.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrSensorNotFound, sensor.ID)
	}

	r.sensors[sensor.ID] = sensor.Clone()

	return nil
}

// AlarmStatus returns the stored alarm status.
func (r *MemoryRepository) AlarmStatus(_ context.Context) (domain.AlarmStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.alarmStatus, nil
}

// SetAlarmStatus stores the alarm status.
func (r *MemoryRepository) SetAlarmStatus(_ context.Context, status domain.AlarmStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alarmStatus = status

	return nil
}

// ArmingStatus returns the stored arming status.
func (r *MemoryRepository) ArmingStatus(_ context.Context) (domain.ArmingStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.armingStatus, nil
}

// SetArmingStatus stores the arming status.
func (r *MemoryRepository) SetArmingStatus(_ context.Context, status domain.ArmingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.armingStatus = status

	return nil
}

// snapshot copies the full state.
func (r *MemoryRepository) snapshot() *domain.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &domain.Snapshot{
		AlarmStatus:  r.alarmStatus,
		ArmingStatus: r.armingStatus,
		Sensors:      r.sensorsLocked(),
	}
}

// sensorsLocked returns sorted copies of the sensors. The caller must hold mu.
func (r *MemoryRepository) sensorsLocked() []*domain.Sensor {
	result := make([]*domain.Sensor, 0, len(r.sensors))
	for _, sensor := range r.sensors {
		result = append(result, sensor.Clone())
	}

	domain.SortSensors(result)

	return result
}
