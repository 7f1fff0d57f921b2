package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"google.golang.org/protobuf/encoding/protojson"

	domain "github.com/oshokin/catpoint/internal/domain/security"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
)

// repositoryFactories builds a fresh repository per backend for contract tests.
func repositoryFactories() map[string]func(t *testing.T) Repository {
	return map[string]func(t *testing.T) Repository{
		"memory": func(*testing.T) Repository {
			return NewMemoryRepository()
		},
		"file": func(t *testing.T) Repository {
			return NewFileRepository(filepath.Join(t.TempDir(), "state.json"))
		},
		"sqlite": func(t *testing.T) Repository {
			t.Helper()

			repo, err := OpenSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "catpoint.db"))
			require.NoError(t, err)

			t.Cleanup(func() {
				_ = repo.Close()
			})

			return repo
		},
	}
}

// TestRepository_Contract exercises every backend against the same expectations.
func TestRepository_Contract(t *testing.T) {
	t.Parallel()

	for name, factory := range repositoryFactories() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			repo := factory(t)

			// Initial state.
			alarm, err := repo.AlarmStatus(ctx)
			require.NoError(t, err)
			require.Equal(t, domain.AlarmStatusNoAlarm, alarm)

			arming, err := repo.ArmingStatus(ctx)
			require.NoError(t, err)
			require.Equal(t, domain.ArmingStatusDisarmed, arming)

			sensors, err := repo.Sensors(ctx)
			require.NoError(t, err)
			require.Empty(t, sensors)

			// Statuses.
			require.NoError(t, repo.SetAlarmStatus(ctx, domain.AlarmStatusPendingAlarm))
			require.NoError(t, repo.SetArmingStatus(ctx, domain.ArmingStatusArmedAway))

			alarm, err = repo.AlarmStatus(ctx)
			require.NoError(t, err)
			require.Equal(t, domain.AlarmStatusPendingAlarm, alarm)

			arming, err = repo.ArmingStatus(ctx)
			require.NoError(t, err)
			require.Equal(t, domain.ArmingStatusArmedAway, arming)

			// Sensors with identical names stay distinct.
			window := &domain.Sensor{ID: "b", Name: "Window", Type: domain.SensorTypeWindow}
			door := &domain.Sensor{ID: "a", Name: "Door", Type: domain.SensorTypeDoor}
			twin := &domain.Sensor{ID: "c", Name: "Door", Type: domain.SensorTypeDoor}

			require.NoError(t, repo.AddSensor(ctx, window))
			require.NoError(t, repo.AddSensor(ctx, door))
			require.NoError(t, repo.AddSensor(ctx, twin))

			sensors, err = repo.Sensors(ctx)
			require.NoError(t, err)
			require.Len(t, sensors, 3)
			require.Equal(t, "a", sensors[0].ID)
			require.Equal(t, "c", sensors[1].ID)
			require.Equal(t, "b", sensors[2].ID)

			door.Active = true
			require.NoError(t, repo.UpdateSensor(ctx, door))

			got, err := repo.Sensor(ctx, "a")
			require.NoError(t, err)
			require.True(t, got.Active)

			got, err = repo.Sensor(ctx, "c")
			require.NoError(t, err)
			require.False(t, got.Active)

			// Unknown sensors.
			_, err = repo.Sensor(ctx, "missing")
			require.ErrorIs(t, err, ErrSensorNotFound)

			err = repo.UpdateSensor(ctx, &domain.Sensor{ID: "missing", Name: "x", Type: domain.SensorTypeMotion})
			require.ErrorIs(t, err, ErrSensorNotFound)

			require.ErrorIs(t, repo.AddSensor(ctx, nil), ErrNilSensor)

			// Removal.
			require.NoError(t, repo.RemoveSensor(ctx, twin))
			require.NoError(t, repo.RemoveSensor(ctx, twin))

			sensors, err = repo.Sensors(ctx)
			require.NoError(t, err)
			require.Len(t, sensors, 2)
		})
	}
}

// TestMemoryRepository_ReturnsCopies ensures callers cannot mutate stored sensors.
func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()
	sensor := &domain.Sensor{ID: "1", Name: "Door", Type: domain.SensorTypeDoor}

	require.NoError(t, repo.AddSensor(ctx, sensor))

	sensor.Active = true

	got, err := repo.Sensor(ctx, "1")
	require.NoError(t, err)
	require.False(t, got.Active)

	got.Active = true

	again, err := repo.Sensor(ctx, "1")
	require.NoError(t, err)
	require.False(t, again.Active)
}

// TestFileRepository_Reopen verifies state survives a new repository instance.
func TestFileRepository_Reopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	repo := NewFileRepository(path)

	require.NoError(t, repo.AddSensor(ctx, &domain.Sensor{ID: "1", Name: "Door", Type: domain.SensorTypeDoor, Active: true}))
	require.NoError(t, repo.SetArmingStatus(ctx, domain.ArmingStatusArmedHome))
	require.NoError(t, repo.SetAlarmStatus(ctx, domain.AlarmStatusAlarm))

	_, err := os.Stat(path)
	require.NoError(t, err)

	reopened := NewFileRepository(path)

	sensors, err := reopened.Sensors(ctx)
	require.NoError(t, err)
	require.Len(t, sensors, 1)
	require.True(t, sensors[0].Active)

	arming, err := reopened.ArmingStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ArmingStatusArmedHome, arming)

	alarm, err := reopened.AlarmStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.AlarmStatusAlarm, alarm)
}

// TestFileRepository_RejectsUnknownStatus ensures corrupted files fail loudly.
func TestFileRepository_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"alarmStatus":9}`), 0o600))

	_, err := NewFileRepository(path).AlarmStatus(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownAlarmStatus)

	path = filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sensors":[{"id":"1","name":"Hatch"}]}`), 0o600))

	_, err = NewFileRepository(path).Sensors(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownSensorType)

	path = filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("alarm_status: ALARM\n"), 0o600))

	_, err = NewFileRepository(path).AlarmStatus(context.Background())
	require.Error(t, err)
}

// TestFileRepository_Format stores a protojson StatusResponse.
func TestFileRepository_Format(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	repo := NewFileRepository(path)

	require.NoError(t, repo.AddSensor(ctx, &domain.Sensor{ID: "1", Name: "Door", Type: domain.SensorTypeDoor}))
	require.NoError(t, repo.SetArmingStatus(ctx, domain.ArmingStatusArmedAway))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	var stored pb.StatusResponse
	require.NoError(t, protojson.Unmarshal(contents, &stored))
	require.Equal(t, pb.AlarmStatus_ALARM_STATUS_NO_ALARM, stored.GetAlarmStatus())
	require.Equal(t, pb.ArmingStatus_ARMING_STATUS_ARMED_AWAY, stored.GetArmingStatus())
	require.NotNil(t, stored.GetTimestamp())
	require.Len(t, stored.GetSensors(), 1)
	require.Equal(t, pb.SensorType_SENSOR_TYPE_DOOR, stored.GetSensors()[0].GetType())
}

// TestFileRepository_EmptyDocument falls back to the initial statuses.
func TestFileRepository_EmptyDocument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	repo := NewFileRepository(path)

	alarm, err := repo.AlarmStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, InitialAlarmStatus, alarm)

	arming, err := repo.ArmingStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, InitialArmingStatus, arming)
}

// TestSQLiteRepository_Reopen verifies state survives closing the database.
func TestSQLiteRepository_Reopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "catpoint.db")

	repo, err := OpenSQLiteRepository(ctx, path)
	require.NoError(t, err)
	require.Equal(t, path, repo.Path())

	require.NoError(t, repo.AddSensor(ctx, &domain.Sensor{ID: "1", Name: "Hall", Type: domain.SensorTypeMotion}))
	require.NoError(t, repo.SetArmingStatus(ctx, domain.ArmingStatusArmedAway))
	require.NoError(t, repo.Close())

	repo, err = OpenSQLiteRepository(ctx, path)
	require.NoError(t, err)

	defer func() {
		_ = repo.Close()
	}()

	sensors, err := repo.Sensors(ctx)
	require.NoError(t, err)
	require.Len(t, sensors, 1)
	require.Equal(t, domain.SensorTypeMotion, sensors[0].Type)

	arming, err := repo.ArmingStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ArmingStatusArmedAway, arming)
}
