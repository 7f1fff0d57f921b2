package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	domain "github.com/oshokin/catpoint/internal/domain/security"
)

const (
	// dirPermissions is the permission mode for the database directory.
	dirPermissions = 0o750

	// busyTimeoutMillis is how long SQLite waits for a lock before failing.
	busyTimeoutMillis = 5000

	// connectionTimeout bounds the connectivity check on open.
	connectionTimeout = 5 * time.Second

	// Keys of the settings table.
	settingAlarmStatus  = "alarm_status"
	settingArmingStatus = "arming_status"
)

// schema is applied on every open; all statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS sensors (
	id     TEXT PRIMARY KEY,
	name   TEXT NOT NULL,
	type   TEXT NOT NULL,
	active INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS settings (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteRepository persists the controller state in an SQLite database.
type SQLiteRepository struct {
	db   *sql.DB
	path string
}

// OpenSQLiteRepository opens (creating if needed) the database at path and
// applies the schema.
func OpenSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	path = filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on&_journal_mode=WAL", path, busyTimeoutMillis)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("verify database connection: %w", err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteRepository{db: db, path: path}, nil
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}

	if err := r.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	return nil
}

// Path returns the filesystem path to the database file.
func (r *SQLiteRepository) Path() string {
	return r.path
}

// Sensors returns every registered sensor.
func (r *SQLiteRepository) Sensors(ctx context.Context) ([]*domain.Sensor, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, type, active FROM sensors`)
	if err != nil {
		return nil, fmt.Errorf("query sensors: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	var result []*domain.Sensor

	for rows.Next() {
		sensor, err := scanSensor(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, sensor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sensors: %w", err)
	}

	domain.SortSensors(result)

	return result, nil
}

// Sensor returns the sensor with the given ID.
func (r *SQLiteRepository) Sensor(ctx context.Context, id string) (*domain.Sensor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, type, active FROM sensors WHERE id = ?`, id)

	sensor, err := scanSensor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSensorNotFound, id)
	}

	return sensor, err
}

// AddSensor inserts the sensor, replacing a row with the same ID.
func (r *SQLiteRepository) AddSensor(ctx context.Context, sensor *domain.Sensor) error {
	if sensor == nil {
		return ErrNilSensor
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sensors (id, name, type, active) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, type = excluded.type, active = excluded.active`,
		sensor.ID, sensor.Name, string(sensor.Type), sensor.Active,
	)
	if err != nil {
		return fmt.Errorf("insert sensor: %w", err)
	}

	return nil
}

// RemoveSensor deletes the sensor row.
func (r *SQLiteRepository) RemoveSensor(ctx context.Context, sensor *domain.Sensor) error {
	if sensor == nil {
		return ErrNilSensor
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM sensors WHERE id = ?`, sensor.ID); err != nil {
		return fmt.Errorf("delete sensor: %w", err)
	}

	return nil
}

// UpdateSensor stores the sensor state.
func (r *SQLiteRepository) UpdateSensor(ctx context.Context, sensor *domain.Sensor) error {
	if sensor == nil {
		return ErrNilSensor
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE sensors SET name = ?, type = ?, active = ? WHERE id = ?`,
		sensor.Name, string(sensor.Type), sensor.Active, sensor.ID,
	)
	if err != nil {
		return fmt.Errorf("update sensor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update sensor: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrSensorNotFound, sensor.ID)
	}

	return nil
}

// AlarmStatus returns the stored alarm status.
func (r *SQLiteRepository) AlarmStatus(ctx context.Context) (domain.AlarmStatus, error) {
	value, err := r.setting(ctx, settingAlarmStatus)
	if err != nil {
		return "", err
	}

	if value == "" {
		return InitialAlarmStatus, nil
	}

	status := domain.AlarmStatus(value)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownAlarmStatus, value)
	}

	return status, nil
}

// SetAlarmStatus stores the alarm status.
func (r *SQLiteRepository) SetAlarmStatus(ctx context.Context, status domain.AlarmStatus) error {
	return r.setSetting(ctx, settingAlarmStatus, string(status))
}

// ArmingStatus returns the stored arming status.
func (r *SQLiteRepository) ArmingStatus(ctx context.Context) (domain.ArmingStatus, error) {
	value, err := r.setting(ctx, settingArmingStatus)
	if err != nil {
		return "", err
	}

	if value == "" {
		return InitialArmingStatus, nil
	}

	status := domain.ArmingStatus(value)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownArmingStatus, value)
	}

	return status, nil
}

// SetArmingStatus stores the arming status.
func (r *SQLiteRepository) SetArmingStatus(ctx context.Context, status domain.ArmingStatus) error {
	return r.setSetting(ctx, settingArmingStatus, string(status))
}

// setting reads a value from the settings table; a missing key yields "".
func (r *SQLiteRepository) setting(ctx context.Context, key string) (string, error) {
	var value string

	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("read setting %s: %w", key, err)
	default:
		return value, nil
	}
}

// setSetting upserts a value in the settings table.
func (r *SQLiteRepository) setSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSensor(row rowScanner) (*domain.Sensor, error) {
	var (
		sensor     domain.Sensor
		sensorType string
	)

	if err := row.Scan(&sensor.ID, &sensor.Name, &sensorType, &sensor.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}

		return nil, fmt.Errorf("scan sensor: %w", err)
	}

	sensor.Type = domain.SensorType(sensorType)

	return &sensor, nil
}
