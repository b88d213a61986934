package hashlife

import "errors"

// Sentinel errors for the engine's public surface.
var (
	ErrEngineClosed    = errors.New("hashlife: engine is closed")
	ErrNotStarted      = errors.New("hashlife: engine has not been started")
	ErrAlreadyStarted  = errors.New("hashlife: engine already started")
	ErrInvalidBucket   = errors.New("hashlife: bucket count must be positive")
	ErrNilRule         = errors.New("hashlife: rule must not be the zero value")
	ErrMonitorDisabled = errors.New("hashlife: reclaim monitor was not configured")
)
