// Package security implements the gRPC transport for the security engine.
//
// The service contract lives in proto/catpoint/v1/security.proto and the
// generated messages in internal/pb/v1. Server translates those messages to
// the domain model and calls into a provided business-service interface.
package security
