package security

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// SensorType is the kind of device a sensor represents.
type SensorType string

// Sensor types.
const (
	SensorTypeDoor   SensorType = "DOOR"
	SensorTypeWindow SensorType = "WINDOW"
	SensorTypeMotion SensorType = "MOTION"
)

var (
	// ErrUnknownSensorType is returned when a value is not one of the sensor types.
	ErrUnknownSensorType = errors.New("unknown sensor type")
	// ErrEmptySensorName is returned when a sensor is created without a name.
	ErrEmptySensorName = errors.New("sensor name must be provided")
)

// Valid reports whether t is a known sensor type.
func (t SensorType) Valid() bool {
	switch t {
	case SensorTypeDoor, SensorTypeWindow, SensorTypeMotion:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t SensorType) String() string {
	return string(t)
}

// ParseSensorType converts user input such as "door" into a SensorType.
func ParseSensorType(value string) (SensorType, error) {
	sensorType := SensorType(normalizeEnum(value))
	if !sensorType.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSensorType, value)
	}

	return sensorType, nil
}

// Sensor is a named device reporting a binary active/inactive state.
// Sensors are identified by ID only: two sensors sharing a name and type are
// still distinct devices.
type Sensor struct {
	// ID is the generated identifier of the sensor.
	ID string `json:"id" yaml:"id"`
	// Name is the human readable sensor name.
	Name string `json:"name" yaml:"name"`
	// Type is the kind of device.
	Type SensorType `json:"type" yaml:"type"`
	// Active reports whether the sensor is currently triggered.
	Active bool `json:"active" yaml:"active"`
}

// NewSensor creates an inactive sensor with a freshly generated ID.
func NewSensor(name string, sensorType SensorType) (*Sensor, error) {
	if name == "" {
		return nil, ErrEmptySensorName
	}

	if !sensorType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSensorType, sensorType)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate sensor id: %w", err)
	}

	return &Sensor{
		ID:   id.String(),
		Name: name,
		Type: sensorType,
	}, nil
}

// Clone returns a copy of the sensor.
func (s *Sensor) Clone() *Sensor {
	if s == nil {
		return nil
	}

	cloned := *s

	return &cloned
}

// CompareSensors orders sensors by name, then type, then ID.
func CompareSensors(a, b *Sensor) int {
	return cmp.Or(
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Type, b.Type),
		cmp.Compare(a.ID, b.ID),
	)
}

// SortSensors sorts sensors in place using CompareSensors.
func SortSensors(sensors []*Sensor) {
	slices.SortFunc(sensors, CompareSensors)
}

// AnyActive reports whether at least one of the sensors is active.
func AnyActive(sensors []*Sensor) bool {
	return slices.ContainsFunc(sensors, func(s *Sensor) bool {
		return s.Active
	})
}
