// Package security contains core domain types of the home security controller.
//
// It defines Sensor (a named, typed device with an active flag), the AlarmStatus
// and ArmingStatus enumerations, Actor (who requested a change) and Snapshot
// (the controller state at a point in time). Presentation metadata for the
// enumerations is kept in a separate lookup so the rules stay free of it.
package security
