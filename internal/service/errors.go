package service

import "errors"

var (
	// ErrInvalidPayload marks a malformed request body or conversation id.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrForbidden marks an authenticated caller who is not a party to the
	// conversation. Detected before any durable write.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks a conversation or group that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDeliveryUncertain marks a fan-out failure after the message is
	// already durable. The message is stored; only realtime delivery is in
	// question, so callers treat this as degraded success.
	ErrDeliveryUncertain = errors.New("delivery uncertain")
)
