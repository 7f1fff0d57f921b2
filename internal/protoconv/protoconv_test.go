package protoconv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/catpoint/internal/domain/security"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
)

func TestAlarmStatus(t *testing.T) {
	t.Parallel()

	for _, status := range domain.AlarmStatuses() {
		protoStatus := ToProtoAlarmStatus(status)
		require.NotEqual(t, pb.AlarmStatus_ALARM_STATUS_UNSPECIFIED, protoStatus, status)

		converted, err := FromProtoAlarmStatus(protoStatus)
		require.NoError(t, err)
		require.Equal(t, status, converted)
	}

	require.Equal(t, pb.AlarmStatus_ALARM_STATUS_PENDING_ALARM, ToProtoAlarmStatus(domain.AlarmStatusPendingAlarm))
	require.Equal(t, pb.AlarmStatus_ALARM_STATUS_UNSPECIFIED, ToProtoAlarmStatus("SIREN"))

	_, err := FromProtoAlarmStatus(pb.AlarmStatus_ALARM_STATUS_UNSPECIFIED)
	require.ErrorIs(t, err, domain.ErrUnknownAlarmStatus)

	_, err = FromProtoAlarmStatus(pb.AlarmStatus(42))
	require.ErrorIs(t, err, domain.ErrUnknownAlarmStatus)
}

func TestArmingStatus(t *testing.T) {
	t.Parallel()

	for _, status := range domain.ArmingStatuses() {
		converted, err := FromProtoArmingStatus(ToProtoArmingStatus(status))
		require.NoError(t, err)
		require.Equal(t, status, converted)
	}

	require.Equal(t, pb.ArmingStatus_ARMING_STATUS_ARMED_AWAY, ToProtoArmingStatus(domain.ArmingStatusArmedAway))

	_, err := FromProtoArmingStatus(pb.ArmingStatus_ARMING_STATUS_UNSPECIFIED)
	require.ErrorIs(t, err, domain.ErrUnknownArmingStatus)
}

func TestSensor(t *testing.T) {
	t.Parallel()

	sensor := &domain.Sensor{ID: "s1", Name: "Front door", Type: domain.SensorTypeDoor, Active: true}

	protoSensor := ToProtoSensor(sensor)
	require.Equal(t, "s1", protoSensor.GetId())
	require.Equal(t, pb.SensorType_SENSOR_TYPE_DOOR, protoSensor.GetType())

	converted, err := FromProtoSensor(protoSensor)
	require.NoError(t, err)
	require.Equal(t, sensor, converted)

	_, err = FromProtoSensor(&pb.Sensor{Id: "s2", Name: "Window"})
	require.ErrorIs(t, err, domain.ErrUnknownSensorType)

	sensors, err := FromProtoSensors([]*pb.Sensor{nil, protoSensor})
	require.NoError(t, err)
	require.Len(t, sensors, 1)
}

func TestActor(t *testing.T) {
	t.Parallel()

	require.Nil(t, ToProtoActor(nil))
	require.Nil(t, FromProtoActor(nil))

	actor := &domain.Actor{Hostname: "kitchen", Username: "alice"}
	require.Equal(t, actor, FromProtoActor(ToProtoActor(actor)))
}

func TestStatus(t *testing.T) {
	t.Parallel()

	snapshot := &domain.Snapshot{
		Timestamp:    time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		AlarmStatus:  domain.AlarmStatusAlarm,
		ArmingStatus: domain.ArmingStatusArmedHome,
		CatDetected:  true,
		Sensors: []*domain.Sensor{
			{ID: "s1", Name: "Hall", Type: domain.SensorTypeMotion},
		},
	}

	response := ToProtoStatus(snapshot)
	require.Equal(t, domain.DescribeAlarm(domain.AlarmStatusAlarm).Description, response.GetAlarmDescription())
	require.Equal(t, domain.DescribeArming(domain.ArmingStatusArmedHome).Description, response.GetArmingDescription())
	require.Equal(t, snapshot.Timestamp, response.GetTimestamp().AsTime())

	converted, err := FromProtoStatus(response)
	require.NoError(t, err)
	require.Equal(t, snapshot, converted)

	require.NotNil(t, ToProtoStatus(nil))

	_, err = FromProtoStatus(&pb.StatusResponse{ArmingStatus: pb.ArmingStatus_ARMING_STATUS_DISARMED})
	require.ErrorIs(t, err, domain.ErrUnknownAlarmStatus)
}
