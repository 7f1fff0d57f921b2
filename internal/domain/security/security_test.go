package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestActorClone verifies that Clone returns a deep copy and handles nil safely.
func TestActorClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Actor)(nil).Clone())

	a := &Actor{
		Hostname: "front-desk",
		Username: "o.shokin",
	}

	b := a.Clone()

	require.Equal(t, a, b)
	require.NotSame(t, a, b)
	require.Equal(t, "o.shokin@front-desk", a.String())
	require.Equal(t, "<unknown>", (*Actor)(nil).String())
}

// TestParseArmingStatus checks canonical names, short forms and rejection of unknown values.
func TestParseArmingStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]ArmingStatus{
		"DISARMED":   ArmingStatusDisarmed,
		"armed-home": ArmingStatusArmedHome,
		"home":       ArmingStatusArmedHome,
		" away ":     ArmingStatusArmedAway,
		"Armed Away": ArmingStatusArmedAway,
	}
	for input, want := range cases {
		got, err := ParseArmingStatus(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got)
	}

	_, err := ParseArmingStatus("armed-garage")
	require.ErrorIs(t, err, ErrUnknownArmingStatus)
}

// TestParseAlarmStatus checks parsing and validation of alarm statuses.
func TestParseAlarmStatus(t *testing.T) {
	t.Parallel()

	for _, status := range AlarmStatuses() {
		got, err := ParseAlarmStatus(status.String())
		require.NoError(t, err)
		require.Equal(t, status, got)
	}

	got, err := ParseAlarmStatus("pending alarm")
	require.NoError(t, err)
	require.Equal(t, AlarmStatusPendingAlarm, got)

	_, err = ParseAlarmStatus("SIREN")
	require.ErrorIs(t, err, ErrUnknownAlarmStatus)
	require.False(t, AlarmStatus("").Valid())
}

// TestArmingStatusArmed verifies which modes count as armed.
func TestArmingStatusArmed(t *testing.T) {
	t.Parallel()

	require.False(t, ArmingStatusDisarmed.Armed())
	require.True(t, ArmingStatusArmedHome.Armed())
	require.True(t, ArmingStatusArmedAway.Armed())
}

// TestNewSensor ensures sensors get unique identifiers and start inactive.
func TestNewSensor(t *testing.T) {
	t.Parallel()

	a, err := NewSensor("Front door", SensorTypeDoor)
	require.NoError(t, err)

	b, err := NewSensor("Front door", SensorTypeDoor)
	require.NoError(t, err)

	require.NotEqual(t, a.ID, b.ID)
	require.False(t, a.Active)

	_, err = uuid.Parse(a.ID)
	require.NoError(t, err)

	_, err = NewSensor("", SensorTypeDoor)
	require.ErrorIs(t, err, ErrEmptySensorName)

	_, err = NewSensor("Garage", SensorType("GARAGE"))
	require.ErrorIs(t, err, ErrUnknownSensorType)
}

// TestSortSensors verifies ordering by name, type and ID.
func TestSortSensors(t *testing.T) {
	t.Parallel()

	sensors := []*Sensor{
		{ID: "3", Name: "Window", Type: SensorTypeWindow},
		{ID: "2", Name: "Door", Type: SensorTypeWindow},
		{ID: "1", Name: "Door", Type: SensorTypeDoor},
		{ID: "0", Name: "Door", Type: SensorTypeDoor},
	}

	SortSensors(sensors)

	ids := make([]string, 0, len(sensors))
	for _, s := range sensors {
		ids = append(ids, s.ID)
	}

	require.Equal(t, []string{"0", "1", "2", "3"}, ids)
	require.False(t, AnyActive(sensors))

	sensors[2].Active = true
	require.True(t, AnyActive(sensors))
}

// TestSnapshotClone verifies that Snapshot.Clone deep-copies sensors.
func TestSnapshotClone(t *testing.T) {
	t.Parallel()

	s := &Snapshot{
		Timestamp:    time.Now().UTC(),
		AlarmStatus:  AlarmStatusPendingAlarm,
		ArmingStatus: ArmingStatusArmedAway,
		Sensors:      []*Sensor{{ID: "1", Name: "Door", Type: SensorTypeDoor, Active: true}},
	}

	c := s.Clone()
	require.Equal(t, s, c)
	require.NotSame(t, s.Sensors[0], c.Sensors[0])

	c.Sensors[0].Active = false
	require.True(t, s.Sensors[0].Active)
}

// TestDescribe verifies the presentation lookup.
func TestDescribe(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Awooga!", DescribeAlarm(AlarmStatusAlarm).Description)
	require.Equal(t, "Armed - At Home", DescribeArming(ArmingStatusArmedHome).Description)
	require.Equal(t, Presentation{Description: "BOGUS"}, DescribeAlarm(AlarmStatus("BOGUS")))
}
