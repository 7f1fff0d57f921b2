package security

import (
	"context"

	domain "github.com/oshokin/catpoint/internal/domain/security"
)

// StatusListener receives alarm status changes and camera results.
//
// Listeners are called synchronously while the engine holds its lock, so they
// must not call back into the engine and should return quickly. They are
// compared with == for registration, so implementations should be pointers.
type StatusListener interface {
	// AlarmStatusChanged is called after every alarm status write.
	AlarmStatusChanged(ctx context.Context, status domain.AlarmStatus)
	// CatDetected is called after every image classification.
	CatDetected(ctx context.Context, cat bool)
}

// SensorStatusListener is an optional capability of a StatusListener.
// It is fired when sensors are added, removed or toggled by a transport so
// listeners can refresh derived display state.
type SensorStatusListener interface {
	SensorStatusChanged(ctx context.Context)
}
