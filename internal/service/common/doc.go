// Package common holds helpers shared by the control commands.
//
// It provides a gRPC client wrapper with timeouts that stamps every request
// with the current system actor (hostname/username) for audit purposes.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
