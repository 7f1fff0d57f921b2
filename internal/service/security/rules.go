package security

import (
	"context"
	"fmt"
	"slices"

	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/logger"
)

// changeSensorLocked holds the sensor activation rules. The caller must hold mu.
// Unregistered sensors are rejected before any rule runs.
func (e *Engine) changeSensorLocked(ctx context.Context, sensor *domain.Sensor, active bool) error {
	if sensor == nil {
		return ErrNilSensor
	}

	if _, err := e.repo.Sensor(ctx, sensor.ID); err != nil {
		return fmt.Errorf("load sensor %s: %w", sensor.ID, err)
	}

	alarm, err := e.currentAlarmStatus(ctx)
	if err != nil {
		return err
	}

	// While the alarm sounds sensors are only recorded.
	if alarm == domain.AlarmStatusAlarm {
		sensor.Active = active

		return e.updateSensor(ctx, sensor)
	}

	wasActive := sensor.Active

	switch {
	case wasActive && active:
		if alarm == domain.AlarmStatusPendingAlarm {
			if err = e.setAlarmStatusLocked(ctx, domain.AlarmStatusAlarm); err != nil {
				return err
			}
		}

		return e.updateSensor(ctx, sensor)
	case !wasActive && active:
		err = e.sensorActivatedLocked(ctx, alarm)
	case wasActive && !active:
		err = e.sensorDeactivatedLocked(ctx, alarm, sensor.ID)
	}

	if err != nil {
		return err
	}

	sensor.Active = active

	return e.updateSensor(ctx, sensor)
}

// sensorActivatedLocked escalates the alarm when an armed system sees a new activation.
func (e *Engine) sensorActivatedLocked(ctx context.Context, alarm domain.AlarmStatus) error {
	arming, err := e.currentArmingStatus(ctx)
	if err != nil {
		return err
	}

	if arming == domain.ArmingStatusDisarmed {
		return nil
	}

	switch alarm {
	case domain.AlarmStatusNoAlarm:
		return e.setAlarmStatusLocked(ctx, domain.AlarmStatusPendingAlarm)
	case domain.AlarmStatusPendingAlarm:
		return e.setAlarmStatusLocked(ctx, domain.AlarmStatusAlarm)
	case domain.AlarmStatusAlarm:
		return nil
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownAlarmStatus, alarm)
	}
}

// sensorDeactivatedLocked clears a pending alarm once no other sensor is active.
func (e *Engine) sensorDeactivatedLocked(ctx context.Context, alarm domain.AlarmStatus, sensorID string) error {
	switch alarm {
	case domain.AlarmStatusPendingAlarm:
		sensors, err := e.repo.Sensors(ctx)
		if err != nil {
			return fmt.Errorf("load sensors: %w", err)
		}

		othersActive := slices.ContainsFunc(sensors, func(s *domain.Sensor) bool {
			return s.Active && s.ID != sensorID
		})
		if othersActive {
			return nil
		}

		return e.setAlarmStatusLocked(ctx, domain.AlarmStatusNoAlarm)
	case domain.AlarmStatusNoAlarm, domain.AlarmStatusAlarm:
		return nil
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownAlarmStatus, alarm)
	}
}

// catDetectedLocked applies the camera rules for a classification result.
func (e *Engine) catDetectedLocked(ctx context.Context, cat bool) error {
	if cat {
		arming, err := e.currentArmingStatus(ctx)
		if err != nil {
			return err
		}

		if arming == domain.ArmingStatusArmedHome {
			return e.setAlarmStatusLocked(ctx, domain.AlarmStatusAlarm)
		}

		return nil
	}

	sensors, err := e.repo.Sensors(ctx)
	if err != nil {
		return fmt.Errorf("load sensors: %w", err)
	}

	if domain.AnyActive(sensors) {
		return nil
	}

	return e.setAlarmStatusLocked(ctx, domain.AlarmStatusNoAlarm)
}

// resetSensorsLocked deactivates every active sensor; inactive ones are not rewritten.
func (e *Engine) resetSensorsLocked(ctx context.Context) error {
	sensors, err := e.repo.Sensors(ctx)
	if err != nil {
		return fmt.Errorf("load sensors: %w", err)
	}

	for _, sensor := range sensors {
		if !sensor.Active {
			continue
		}

		sensor.Active = false

		if err = e.updateSensor(ctx, sensor); err != nil {
			return err
		}
	}

	return nil
}

// setAlarmStatusLocked is the only place the alarm status is written.
func (e *Engine) setAlarmStatusLocked(ctx context.Context, status domain.AlarmStatus) error {
	if !status.Valid() {
		return fmt.Errorf("set alarm status: %w: %q", domain.ErrUnknownAlarmStatus, status)
	}

	if err := e.repo.SetAlarmStatus(ctx, status); err != nil {
		return fmt.Errorf("persist alarm status: %w", err)
	}

	logger.InfoKV(ctx, "Alarm status changed", "alarm_status", status)

	for _, l := range e.listenersSnapshot() {
		l.AlarmStatusChanged(ctx, status)
	}

	return nil
}

// currentAlarmStatus loads the alarm status and rejects unknown values.
func (e *Engine) currentAlarmStatus(ctx context.Context) (domain.AlarmStatus, error) {
	alarm, err := e.repo.AlarmStatus(ctx)
	if err != nil {
		return "", fmt.Errorf("load alarm status: %w", err)
	}

	if !alarm.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownAlarmStatus, alarm)
	}

	return alarm, nil
}

// currentArmingStatus loads the arming status and rejects unknown values.
func (e *Engine) currentArmingStatus(ctx context.Context) (domain.ArmingStatus, error) {
	arming, err := e.repo.ArmingStatus(ctx)
	if err != nil {
		return "", fmt.Errorf("load arming status: %w", err)
	}

	if !arming.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownArmingStatus, arming)
	}

	return arming, nil
}

func (e *Engine) updateSensor(ctx context.Context, sensor *domain.Sensor) error {
	if err := e.repo.UpdateSensor(ctx, sensor); err != nil {
		return fmt.Errorf("persist sensor %s: %w", sensor.ID, err)
	}

	logger.DebugKV(ctx, "Sensor updated", "sensor_id", sensor.ID, "active", sensor.Active)

	return nil
}

func (e *Engine) notifyCatDetected(ctx context.Context, cat bool) {
	for _, l := range e.listenersSnapshot() {
		l.CatDetected(ctx, cat)
	}
}

// listenersSnapshot copies the listeners registered at the moment of the event.
func (e *Engine) listenersSnapshot() []StatusListener {
	e.listenersMu.RLock()
	defer e.listenersMu.RUnlock()

	return slices.Clone(e.listeners)
}
