package mqtt

import (
	"fmt"
	"strings"
)

// Topics builds the topic names under a common prefix.
type Topics struct {
	Prefix string
}

// SensorSetFilter matches every sensor command topic.
func (t Topics) SensorSetFilter() string {
	return t.Prefix + "/sensor/+/set"
}

// SensorSet is the command topic of one sensor.
func (t Topics) SensorSet(id string) string {
	return t.Prefix + "/sensor/" + id + "/set"
}

// AlarmStatus is the retained alarm status topic.
func (t Topics) AlarmStatus() string {
	return t.Prefix + "/alarm/status"
}

// CameraCat is the retained camera result topic.
func (t Topics) CameraCat() string {
	return t.Prefix + "/camera/cat"
}

// ParseSensorSet extracts the sensor ID from a command topic.
func (t Topics) ParseSensorSet(topic string) (string, error) {
	rest, ok := strings.CutPrefix(topic, t.Prefix+"/sensor/")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}

	id, ok := strings.CutSuffix(rest, "/set")
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}

	return id, nil
}
