package kafka

import "errors"

var (
	ErrMissingEventType = errors.New("message has no event_type header")
	ErrUnknownEventType = errors.New("no handler registered for event type")
)
