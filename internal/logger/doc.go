// Package logger wraps a zap SugaredLogger for catpoint.
//
// Components never hold a logger; they take it from the context with
// FromContext and scope it with WithName or WithKV, so an engine transition
// logged under a gRPC call carries that call's actor fields.
package logger
