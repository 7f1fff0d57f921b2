package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/oshokin/catpoint/internal/config"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
	"github.com/oshokin/catpoint/internal/protoconv"
)

// FileRepository persists the controller state to a JSON file on disk.
// The file holds a StatusResponse encoded with protojson, so it matches the
// message the API returns. It is read on first access and rewritten after
// every mutation.
type FileRepository struct {
	// path is the filesystem location of the JSON state file.
	path string
	// cache holds the loaded state; nil until the first access.
	cache *MemoryRepository
	// mu serializes file access and cache initialisation.
	mu sync.Mutex
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Sensors returns every registered sensor.
func (r *FileRepository) Sensors(ctx context.Context) ([]*domain.Sensor, error) {
	var result []*domain.Sensor

	err := r.read(func(m *MemoryRepository) (err error) {
		result, err = m.Sensors(ctx)
		return err
	})

	return result, err
}

// Sensor returns the sensor with the given ID.
func (r *FileRepository) Sensor(ctx context.Context, id string) (*domain.Sensor, error) {
	var result *domain.Sensor

	err := r.read(func(m *MemoryRepository) (err error) {
		result, err = m.Sensor(ctx, id)
		return err
	})

	return result, err
}

// AddSensor registers the sensor and rewrites the state file.
func (r *FileRepository) AddSensor(ctx context.Context, sensor *domain.Sensor) error {
	return r.write(func(m *MemoryRepository) error {
		return m.AddSensor(ctx, sensor)
	})
}

// RemoveSensor unregisters the sensor and rewrites the state file.
func (r *FileRepository) RemoveSensor(ctx context.Context, sensor *domain.Sensor) error {
	return r.write(func(m *MemoryRepository) error {
		return m.RemoveSensor(ctx, sensor)
	})
}

// UpdateSensor stores the sensor state and rewrites the state file.
func (r *FileRepository) UpdateSensor(ctx context.Context, sensor *domain.Sensor) error {
	return r.write(func(m *MemoryRepository) error {
		return m.UpdateSensor(ctx, sensor)
	})
}

// AlarmStatus returns the stored alarm status.
func (r *FileRepository) AlarmStatus(ctx context.Context) (domain.AlarmStatus, error) {
	var result domain.AlarmStatus

	err := r.read(func(m *MemoryRepository) (err error) {
		result, err = m.AlarmStatus(ctx)
		return err
	})

	return result, err
}

// SetAlarmStatus stores the alarm status and rewrites the state file.
func (r *FileRepository) SetAlarmStatus(ctx context.Context, status domain.AlarmStatus) error {
	return r.write(func(m *MemoryRepository) error {
		return m.SetAlarmStatus(ctx, status)
	})
}

// ArmingStatus returns the stored arming status.
func (r *FileRepository) ArmingStatus(ctx context.Context) (domain.ArmingStatus, error) {
	var result domain.ArmingStatus

	err := r.read(func(m *MemoryRepository) (err error) {
		result, err = m.ArmingStatus(ctx)
		return err
	})

	return result, err
}

// SetArmingStatus stores the arming status and rewrites the state file.
func (r *FileRepository) SetArmingStatus(ctx context.Context, status domain.ArmingStatus) error {
	return r.write(func(m *MemoryRepository) error {
		return m.SetArmingStatus(ctx, status)
	})
}

// read runs fn against the loaded state.
func (r *FileRepository) read(fn func(*MemoryRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cache, err := r.loadLocked()
	if err != nil {
		return err
	}

	return fn(cache)
}

// write runs fn against the loaded state and persists the result.
// On a failed write the cache is dropped so the next access re-reads the file.
func (r *FileRepository) write(fn func(*MemoryRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cache, err := r.loadLocked()
	if err != nil {
		return err
	}

	if err = fn(cache); err != nil {
		return err
	}

	if err = r.saveLocked(cache); err != nil {
		r.cache = nil
		return err
	}

	return nil
}

// loadLocked reads the state file once. A missing file yields the initial state.
func (r *FileRepository) loadLocked() (*MemoryRepository, error) {
	if r.cache != nil {
		return r.cache, nil
	}

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.cache = NewMemoryRepository()
			return r.cache, nil
		}

		return nil, fmt.Errorf("read state file: %w", err)
	}

	var protoState pb.StatusResponse
	if err = protojson.Unmarshal(contents, &protoState); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	snapshot, err := fromProto(&protoState)
	if err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	cache, err := newMemoryRepositoryFromSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	r.cache = cache

	return r.cache, nil
}

// saveLocked writes the cached state to disk.
func (r *FileRepository) saveLocked(cache *MemoryRepository) error {
	snapshot := cache.snapshot()
	snapshot.Timestamp = time.Now().UTC()

	marshalOptions := protojson.MarshalOptions{
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(protoconv.ToProtoStatus(snapshot))
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// fromProto converts the stored StatusResponse into a snapshot.
// UNSPECIFIED statuses are left empty so the initial ones apply.
func fromProto(protoState *pb.StatusResponse) (*domain.Snapshot, error) {
	var (
		snapshot = new(domain.Snapshot)
		err      error
	)

	if ts := protoState.GetTimestamp(); ts != nil {
		snapshot.Timestamp = ts.AsTime()
	}

	if status := protoState.GetAlarmStatus(); status != pb.AlarmStatus_ALARM_STATUS_UNSPECIFIED {
		if snapshot.AlarmStatus, err = protoconv.FromProtoAlarmStatus(status); err != nil {
			return nil, err
		}
	}

	if status := protoState.GetArmingStatus(); status != pb.ArmingStatus_ARMING_STATUS_UNSPECIFIED {
		if snapshot.ArmingStatus, err = protoconv.FromProtoArmingStatus(status); err != nil {
			return nil, err
		}
	}

	if snapshot.Sensors, err = protoconv.FromProtoSensors(protoState.GetSensors()); err != nil {
		return nil, err
	}

	return snapshot, nil
}
