package integration

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/catpoint/internal/config"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/protoconv"
	"github.com/oshokin/catpoint/internal/service/common"
)

func dial(t *testing.T, addr string) *common.Client {
	t.Helper()

	c, err := common.Dial(context.Background(), addr,
		common.WithCallTimeout(3*time.Second),
		common.WithActor(&domain.Actor{Hostname: "test-hostname", Username: "test-user"}))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

// TestGRPC_ArmAwayScenario runs the arm, trigger and disarm flow against the real server.
func TestGRPC_ArmAwayScenario(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)
	statePath := filepath.Join(t.TempDir(), "state.json")

	stop := startServer(t, &config.Config{
		ServerAddress: addr,
		Timeout:       5 * time.Second,
		Storage:       config.StorageConfig{Driver: config.StorageFile, Path: statePath},
	})
	defer stop()

	ctx := context.Background()
	c := dial(t, addr)

	door, err := c.AddSensor(ctx, "Door", domain.SensorTypeDoor)
	require.NoError(t, err)

	window, err := c.AddSensor(ctx, "Window", domain.SensorTypeWindow)
	require.NoError(t, err)

	status, err := c.SetArmingStatus(ctx, domain.ArmingStatusArmedAway)
	require.NoError(t, err)
	require.Equal(t, protoconv.ToProtoAlarmStatus(domain.AlarmStatusNoAlarm), status.GetAlarmStatus())

	_, err = c.SetSensorActive(ctx, door.ID, true)
	require.NoError(t, err)

	status, err = c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, protoconv.ToProtoAlarmStatus(domain.AlarmStatusPendingAlarm), status.GetAlarmStatus())

	_, err = c.SetSensorActive(ctx, window.ID, true)
	require.NoError(t, err)

	status, err = c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, protoconv.ToProtoAlarmStatus(domain.AlarmStatusAlarm), status.GetAlarmStatus())

	status, err = c.SetArmingStatus(ctx, domain.ArmingStatusDisarmed)
	require.NoError(t, err)
	require.Equal(t, protoconv.ToProtoAlarmStatus(domain.AlarmStatusNoAlarm), status.GetAlarmStatus())

	// Verify state was persisted to disk.
	_, err = os.Stat(statePath)
	require.NoError(t, err)
}

// TestGRPC_StatePersistsAcrossRestart stops the server and starts it again on the same SQLite database.
func TestGRPC_StatePersistsAcrossRestart(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "catpoint.db")
	ctx := context.Background()

	addr := reservePort(t)
	settings := &config.Config{
		ServerAddress: addr,
		Storage:       config.StorageConfig{Driver: config.StorageSQLite, Path: dbPath},
	}

	stop := startServer(t, settings)
	c := dial(t, addr)

	_, err := c.AddSensor(ctx, "Hall", domain.SensorTypeMotion)
	require.NoError(t, err)

	_, err = c.SetArmingStatus(ctx, domain.ArmingStatusArmedHome)
	require.NoError(t, err)

	stop()

	settings.ServerAddress = reservePort(t)
	stop = startServer(t, settings)
	defer stop()

	status, err := dial(t, settings.ServerAddress).GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, protoconv.ToProtoArmingStatus(domain.ArmingStatusArmedHome), status.GetArmingStatus())
	require.Len(t, status.GetSensors(), 1)
	require.Equal(t, "Hall", status.GetSensors()[0].GetName())
}

// TestGRPC_CatWhileArmedHome forces the classifier to see a cat.
func TestGRPC_CatWhileArmedHome(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)
	always := true

	stop := startServer(t, &config.Config{
		ServerAddress: addr,
		Storage:       config.StorageConfig{Driver: config.StorageMemory},
		Classifier:    config.ClassifierConfig{Always: &always},
	})
	defer stop()

	ctx := context.Background()
	c := dial(t, addr)

	var buf bytes.Buffer

	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8))))

	result, err := c.ProcessImage(ctx, buf.Bytes())
	require.NoError(t, err)
	require.True(t, result.GetCatDetected())
	require.Equal(t, protoconv.ToProtoAlarmStatus(domain.AlarmStatusNoAlarm), result.GetAlarmStatus())

	// The remembered cat raises the alarm as soon as the system is armed at home.
	status, err := c.SetArmingStatus(ctx, domain.ArmingStatusArmedHome)
	require.NoError(t, err)
	require.Equal(t, protoconv.ToProtoAlarmStatus(domain.AlarmStatusAlarm), status.GetAlarmStatus())
	require.True(t, status.GetCatDetected())
}
