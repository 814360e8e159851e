package config

import (
	"errors"
)

// Sentinel errors. Load and Validate wrap them so callers can use errors.Is.
var (
	// ErrInvalidConfig marks a value outside its allowed range or enumeration.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig marks a file, env or decoding failure.
	ErrLoadConfig = errors.New("load config failed")
)
