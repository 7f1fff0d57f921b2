package security

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/catpoint/internal/classifier"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/logger"
	"github.com/oshokin/catpoint/internal/repository/state"
)

// invalidArgumentErrors are mapped to codes.InvalidArgument.
//
//nolint:gochecknoglobals // Read-only lookup table.
var invalidArgumentErrors = []error{
	domain.ErrUnknownAlarmStatus,
	domain.ErrUnknownArmingStatus,
	domain.ErrUnknownSensorType,
	domain.ErrEmptySensorName,
	classifier.ErrNilImage,
	classifier.ErrImageTooLarge,
	classifier.ErrUnsupportedImage,
}

// toStatusError converts an engine error into a gRPC status error.
func toStatusError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	for _, target := range invalidArgumentErrors {
		if errors.Is(err, target) {
			return status.Error(codes.InvalidArgument, err.Error())
		}
	}

	switch {
	case errors.Is(err, state.ErrSensorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	logger.ErrorKV(ctx, "Request failed", "error", err)

	return status.Error(codes.Internal, "internal error")
}
