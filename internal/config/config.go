package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/catpoint/internal/logger"
)

// Config holds the settings shared by the catpoint binaries.
type Config struct {
	// ServerAddress is the gRPC server address for control connections.
	ServerAddress string `yaml:"server_addr"`
	// HTTPAddress enables the HTTP panel API when set (e.g. ":8080").
	HTTPAddress string `yaml:"http_addr,omitempty"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is the minimum level of emitted log messages.
	LogLevel string `yaml:"log_level"`
	// Storage selects where sensors and statuses are kept.
	Storage StorageConfig `yaml:"storage"`
	// MQTT configures the optional sensor bridge.
	MQTT MQTTConfig `yaml:"mqtt,omitempty"`
	// Classifier configures the fake cat detector.
	Classifier ClassifierConfig `yaml:"classifier,omitempty"`
}

// StorageConfig selects the repository backend.
type StorageConfig struct {
	// Driver is one of "memory", "file" or "sqlite".
	Driver string `yaml:"driver"`
	// Path is the state file or database location. Ignored by "memory".
	Path string `yaml:"path,omitempty"`
}

// MQTTConfig holds broker settings. The bridge is disabled when Broker is empty.
type MQTTConfig struct {
	// Broker is the broker URL, e.g. tcp://localhost:1883.
	Broker string `yaml:"broker,omitempty"`
	// ClientID identifies this controller on the broker.
	ClientID string `yaml:"client_id,omitempty"`
	// Username is the optional broker user.
	Username string `yaml:"username,omitempty"`
	// Password is the optional broker password.
	Password string `yaml:"password,omitempty"`
	// TopicPrefix is prepended to every topic.
	TopicPrefix string `yaml:"topic_prefix,omitempty"`
	// QoS is the quality of service used for publishing and subscribing.
	QoS byte `yaml:"qos,omitempty"`
}

// Enabled reports whether a broker is configured.
func (c *MQTTConfig) Enabled() bool {
	return c.Broker != ""
}

// ClassifierConfig configures the fake image classifier.
type ClassifierConfig struct {
	// Seed makes the fake classifier deterministic when non-zero.
	Seed uint64 `yaml:"seed,omitempty"`
	// Always forces every classification result to "cat" or "no cat" when set.
	Always *bool `yaml:"always,omitempty"`
}

// Storage drivers.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "catpoint-settings.yaml"

	// DefaultStateFilename is the default filename of the JSON state file.
	DefaultStateFilename = "catpoint-state.json"

	// DefaultDatabaseFilename is the default filename of the SQLite database.
	DefaultDatabaseFilename = "catpoint.db"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultMQTTClientID is the client identifier used when none is configured.
	DefaultMQTTClientID = "catpoint"

	// DefaultTopicPrefix is the MQTT topic prefix used when none is configured.
	DefaultTopicPrefix = "catpoint"

	// DefaultFilePermissions is the default file permission for config and state files.
	DefaultFilePermissions = 0o600

	// maxQoS is the highest MQTT quality of service level.
	maxQoS = 2
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errUnknownStorageDriver is returned for unsupported storage drivers.
	errUnknownStorageDriver = errors.New("unknown storage driver")
	// errUnknownLogLevel is returned for unparsable log levels.
	errUnknownLogLevel = errors.New("unknown log level")
	// errInvalidQoS is returned for MQTT QoS levels above 2.
	errInvalidQoS = errors.New("mqtt qos must be 0, 1 or 2")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions, the file may carry broker credentials.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.HTTPAddress != "" {
		if _, err := net.ResolveTCPAddr("tcp", settings.HTTPAddress); err != nil {
			return fmt.Errorf("invalid http address: %w", err)
		}
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	if err := validateStorage(&settings.Storage); err != nil {
		return err
	}

	return validateMQTT(&settings.MQTT)
}

// validateStorage normalises the driver name and picks a default path.
func validateStorage(storage *StorageConfig) error {
	storage.Driver = strings.ToLower(strings.TrimSpace(storage.Driver))

	switch storage.Driver {
	case "":
		storage.Driver = StorageFile
		fallthrough
	case StorageFile:
		if storage.Path == "" {
			storage.Path = DefaultStateFilename
		}
	case StorageSQLite:
		if storage.Path == "" {
			storage.Path = DefaultDatabaseFilename
		}
	case StorageMemory:
	default:
		return fmt.Errorf("%w: %q", errUnknownStorageDriver, storage.Driver)
	}

	return nil
}

// validateMQTT checks broker settings when the bridge is enabled.
func validateMQTT(mqtt *MQTTConfig) error {
	if !mqtt.Enabled() {
		return nil
	}

	if _, err := url.ParseRequestURI(mqtt.Broker); err != nil {
		return fmt.Errorf("invalid mqtt broker URI: %w", err)
	}

	if mqtt.QoS > maxQoS {
		return errInvalidQoS
	}

	if mqtt.ClientID == "" {
		mqtt.ClientID = DefaultMQTTClientID
	}

	if mqtt.TopicPrefix == "" {
		mqtt.TopicPrefix = DefaultTopicPrefix
	}

	return nil
}
