package reconciler

import "errors"

var (
	ErrClosed         = errors.New("reconciler is closed")
	ErrMalformedEvent = errors.New("malformed realtime event")
)
