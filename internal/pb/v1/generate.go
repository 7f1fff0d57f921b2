// Package catpointv1 holds the generated SecurityService messages and gRPC stubs.
package catpointv1

//go:generate protoc -I ../../../proto --go_out=../../.. --go_opt=module=github.com/oshokin/catpoint --go-grpc_out=../../.. --go-grpc_opt=module=github.com/oshokin/catpoint catpoint/v1/security.proto
