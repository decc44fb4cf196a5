package constant

import "github.com/pkg/errors"

const (
	EmptyFieldErrMsg     = "must not be empty"
	EventQueueFullErrMsg = "event queue full"
	RateLimitedErrMsg    = "too many requests"
)

var (
	EventQueueFullErr = errors.New(EventQueueFullErrMsg)
)
