package security

import (
	"errors"
	"fmt"
	"strings"
)

// AlarmStatus is the three-level escalation state maintained by the engine.
type AlarmStatus string

// Alarm statuses.
const (
	AlarmStatusNoAlarm      AlarmStatus = "NO_ALARM"
	AlarmStatusPendingAlarm AlarmStatus = "PENDING_ALARM"
	AlarmStatusAlarm        AlarmStatus = "ALARM"
)

// ArmingStatus controls whether sensor and camera activity can raise alarms.
type ArmingStatus string

// Arming statuses.
const (
	ArmingStatusDisarmed  ArmingStatus = "DISARMED"
	ArmingStatusArmedHome ArmingStatus = "ARMED_HOME"
	ArmingStatusArmedAway ArmingStatus = "ARMED_AWAY"
)

var (
	// ErrUnknownAlarmStatus is returned when a value is not one of the alarm statuses.
	ErrUnknownAlarmStatus = errors.New("unknown alarm status")
	// ErrUnknownArmingStatus is returned when a value is not one of the arming statuses.
	ErrUnknownArmingStatus = errors.New("unknown arming status")
)

// AlarmStatuses lists every alarm status in escalation order.
func AlarmStatuses() []AlarmStatus {
	return []AlarmStatus{AlarmStatusNoAlarm, AlarmStatusPendingAlarm, AlarmStatusAlarm}
}

// ArmingStatuses lists every arming status.
func ArmingStatuses() []ArmingStatus {
	return []ArmingStatus{ArmingStatusDisarmed, ArmingStatusArmedHome, ArmingStatusArmedAway}
}

// Valid reports whether s is a known alarm status.
func (s AlarmStatus) Valid() bool {
	switch s {
	case AlarmStatusNoAlarm, AlarmStatusPendingAlarm, AlarmStatusAlarm:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s AlarmStatus) String() string {
	return string(s)
}

// Valid reports whether s is a known arming status.
func (s ArmingStatus) Valid() bool {
	switch s {
	case ArmingStatusDisarmed, ArmingStatusArmedHome, ArmingStatusArmedAway:
		return true
	default:
		return false
	}
}

// Armed reports whether s is one of the armed modes.
func (s ArmingStatus) Armed() bool {
	return s == ArmingStatusArmedHome || s == ArmingStatusArmedAway
}

// String implements fmt.Stringer.
func (s ArmingStatus) String() string {
	return string(s)
}

// ParseAlarmStatus converts user input such as "pending-alarm" into an AlarmStatus.
func ParseAlarmStatus(value string) (AlarmStatus, error) {
	status := AlarmStatus(normalizeEnum(value))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlarmStatus, value)
	}

	return status, nil
}

// ParseArmingStatus converts user input into an ArmingStatus.
// The short forms "home" and "away" are accepted as well.
func ParseArmingStatus(value string) (ArmingStatus, error) {
	normalized := normalizeEnum(value)

	switch normalized {
	case "HOME":
		return ArmingStatusArmedHome, nil
	case "AWAY":
		return ArmingStatusArmedAway, nil
	}

	status := ArmingStatus(normalized)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownArmingStatus, value)
	}

	return status, nil
}

func normalizeEnum(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))

	return strings.NewReplacer("-", "_", " ", "_").Replace(value)
}
