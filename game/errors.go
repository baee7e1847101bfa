package game

import "errors"

var (
	ErrInvalidDimensions = errors.New("maze dimensions must be odd and at least 5")
	ErrInvalidStep       = errors.New("animation step must be positive")
	ErrInvalidTickPeriod = errors.New("tick period must be positive")
	ErrUnknownDirection  = errors.New("unknown direction")
	ErrNoBindings        = errors.New("no key bindings")
	ErrInvalidKey        = errors.New("invalid key name")
	ErrMalformedLayout   = errors.New("malformed maze layout")
)
