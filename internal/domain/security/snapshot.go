package security

import "time"

// Snapshot represents the controller state at a specific point in time.
type Snapshot struct {
	// Timestamp is when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`
	// AlarmStatus is the current alarm status.
	AlarmStatus AlarmStatus `json:"alarm_status"`
	// ArmingStatus is the current arming status.
	ArmingStatus ArmingStatus `json:"arming_status"`
	// CatDetected is the result of the last image classification.
	CatDetected bool `json:"cat_detected"`
	// Sensors holds every registered sensor.
	Sensors []*Sensor `json:"sensors"`
}

// Clone returns a copy of the snapshot to avoid leaking internal references.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	sensors := make([]*Sensor, 0, len(s.Sensors))
	for _, sensor := range s.Sensors {
		sensors = append(sensors, sensor.Clone())
	}

	return &Snapshot{
		Timestamp:    s.Timestamp,
		AlarmStatus:  s.AlarmStatus,
		ArmingStatus: s.ArmingStatus,
		CatDetected:  s.CatDetected,
		Sensors:      sensors,
	}
}
