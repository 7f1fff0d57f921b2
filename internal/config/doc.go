// Package config defines the settings used by the catpoint binaries and
// provides helpers to load, validate and save them in YAML format.
//
// Validate fills defaults for the timeout, log level, storage path and MQTT
// identifiers, so a minimal file only needs server_addr.
package config
