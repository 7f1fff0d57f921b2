// Package protoconv converts between the security domain model and the
// generated protobuf messages.
//
// Enums are matched by name: the protobuf value ALARM_STATUS_NO_ALARM maps to
// the domain value NO_ALARM. The zero UNSPECIFIED values have no domain
// counterpart and are rejected.
package protoconv

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/catpoint/internal/domain/security"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
)

// Enum name prefixes generated for the protobuf enums.
const (
	alarmStatusPrefix  = "ALARM_STATUS_"
	armingStatusPrefix = "ARMING_STATUS_"
	sensorTypePrefix   = "SENSOR_TYPE_"
)

// ToProtoAlarmStatus converts an alarm status. Unknown values become UNSPECIFIED.
func ToProtoAlarmStatus(status domain.AlarmStatus) pb.AlarmStatus {
	return pb.AlarmStatus(pb.AlarmStatus_value[alarmStatusPrefix+string(status)])
}

// FromProtoAlarmStatus converts a protobuf alarm status.
func FromProtoAlarmStatus(status pb.AlarmStatus) (domain.AlarmStatus, error) {
	result := domain.AlarmStatus(trimEnum(pb.AlarmStatus_name, int32(status), alarmStatusPrefix))
	if !result.Valid() {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownAlarmStatus, status)
	}

	return result, nil
}

// ToProtoArmingStatus converts an arming status. Unknown values become UNSPECIFIED.
func ToProtoArmingStatus(status domain.ArmingStatus) pb.ArmingStatus {
	return pb.ArmingStatus(pb.ArmingStatus_value[armingStatusPrefix+string(status)])
}

// FromProtoArmingStatus converts a protobuf arming status.
func FromProtoArmingStatus(status pb.ArmingStatus) (domain.ArmingStatus, error) {
	result := domain.ArmingStatus(trimEnum(pb.ArmingStatus_name, int32(status), armingStatusPrefix))
	if !result.Valid() {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownArmingStatus, status)
	}

	return result, nil
}

// ToProtoSensorType converts a sensor type. Unknown values become UNSPECIFIED.
func ToProtoSensorType(sensorType domain.SensorType) pb.SensorType {
	return pb.SensorType(pb.SensorType_value[sensorTypePrefix+string(sensorType)])
}

// FromProtoSensorType converts a protobuf sensor type.
func FromProtoSensorType(sensorType pb.SensorType) (domain.SensorType, error) {
	result := domain.SensorType(trimEnum(pb.SensorType_name, int32(sensorType), sensorTypePrefix))
	if !result.Valid() {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownSensorType, sensorType)
	}

	return result, nil
}

// ToProtoActor converts an actor. A nil actor stays nil.
func ToProtoActor(actor *domain.Actor) *pb.Actor {
	if actor == nil {
		return nil
	}

	return &pb.Actor{
		Hostname: actor.Hostname,
		Username: actor.Username,
	}
}

// FromProtoActor converts a protobuf actor. A nil actor stays nil.
func FromProtoActor(actor *pb.Actor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// ToProtoSensor converts a sensor.
func ToProtoSensor(sensor *domain.Sensor) *pb.Sensor {
	if sensor == nil {
		return nil
	}

	return &pb.Sensor{
		Id:     sensor.ID,
		Name:   sensor.Name,
		Type:   ToProtoSensorType(sensor.Type),
		Active: sensor.Active,
	}
}

// FromProtoSensor converts a protobuf sensor, rejecting unknown types.
func FromProtoSensor(sensor *pb.Sensor) (*domain.Sensor, error) {
	if sensor == nil {
		return nil, nil //nolint:nilnil // A missing sensor is not an error.
	}

	sensorType, err := FromProtoSensorType(sensor.GetType())
	if err != nil {
		return nil, fmt.Errorf("sensor %q: %w", sensor.GetId(), err)
	}

	return &domain.Sensor{
		ID:     sensor.GetId(),
		Name:   sensor.GetName(),
		Type:   sensorType,
		Active: sensor.GetActive(),
	}, nil
}

// ToProtoSensors converts a sensor list.
func ToProtoSensors(sensors []*domain.Sensor) []*pb.Sensor {
	result := make([]*pb.Sensor, 0, len(sensors))
	for _, sensor := range sensors {
		if sensor != nil {
			result = append(result, ToProtoSensor(sensor))
		}
	}

	return result
}

// FromProtoSensors converts a protobuf sensor list. Nil entries are skipped.
func FromProtoSensors(sensors []*pb.Sensor) ([]*domain.Sensor, error) {
	result := make([]*domain.Sensor, 0, len(sensors))

	for _, protoSensor := range sensors {
		if protoSensor == nil {
			continue
		}

		sensor, err := FromProtoSensor(protoSensor)
		if err != nil {
			return nil, err
		}

		result = append(result, sensor)
	}

	return result, nil
}

// ToProtoStatus converts a snapshot into a status response, filling in the
// display descriptions of both statuses.
func ToProtoStatus(snapshot *domain.Snapshot) *pb.StatusResponse {
	if snapshot == nil {
		return &pb.StatusResponse{}
	}

	var timestamp *timestamppb.Timestamp
	if !snapshot.Timestamp.IsZero() {
		timestamp = timestamppb.New(snapshot.Timestamp)
	}

	return &pb.StatusResponse{
		Timestamp:         timestamp,
		AlarmStatus:       ToProtoAlarmStatus(snapshot.AlarmStatus),
		AlarmDescription:  domain.DescribeAlarm(snapshot.AlarmStatus).Description,
		ArmingStatus:      ToProtoArmingStatus(snapshot.ArmingStatus),
		ArmingDescription: domain.DescribeArming(snapshot.ArmingStatus).Description,
		CatDetected:       snapshot.CatDetected,
		Sensors:           ToProtoSensors(snapshot.Sensors),
	}
}

// FromProtoStatus converts a status response into a snapshot.
func FromProtoStatus(response *pb.StatusResponse) (*domain.Snapshot, error) {
	alarm, err := FromProtoAlarmStatus(response.GetAlarmStatus())
	if err != nil {
		return nil, err
	}

	arming, err := FromProtoArmingStatus(response.GetArmingStatus())
	if err != nil {
		return nil, err
	}

	sensors, err := FromProtoSensors(response.GetSensors())
	if err != nil {
		return nil, err
	}

	snapshot := &domain.Snapshot{
		AlarmStatus:  alarm,
		ArmingStatus: arming,
		CatDetected:  response.GetCatDetected(),
		Sensors:      sensors,
	}

	if ts := response.GetTimestamp(); ts != nil {
		snapshot.Timestamp = ts.AsTime()
	}

	return snapshot, nil
}

func trimEnum(names map[int32]string, value int32, prefix string) string {
	name, ok := names[value]
	if !ok {
		return ""
	}

	return strings.TrimPrefix(name, prefix)
}
