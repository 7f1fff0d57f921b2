package mqtt

import "errors"

var (
	// ErrConnectionFailed is returned when the initial connection attempt fails.
	ErrConnectionFailed = errors.New("mqtt: connection failed")
	// ErrPublishFailed is returned when a publish operation fails.
	ErrPublishFailed = errors.New("mqtt: publish failed")
	// ErrSubscribeFailed is returned when a subscribe operation fails.
	ErrSubscribeFailed = errors.New("mqtt: subscribe failed")
	// ErrInvalidTopic is returned for topics the bridge does not understand.
	ErrInvalidTopic = errors.New("mqtt: invalid topic")
	// ErrInvalidPayload is returned when a message body cannot be decoded.
	ErrInvalidPayload = errors.New("mqtt: invalid payload")
)
