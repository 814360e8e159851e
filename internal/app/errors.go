package service

import "errors"

// Sentinel errors returned by the Runner.
var (
	ErrUnknownMode  = errors.New("unknown generation mode")
	ErrNoSegments   = errors.New("no segments to draw from")
	ErrInvalidRange = errors.New("end date before start date")
	ErrEnqueue      = errors.New("chain could not be queued")
)
