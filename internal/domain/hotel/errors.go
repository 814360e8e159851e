package hotel

import "errors"

// Sentinel errors returned by Simulate.
var (
	ErrInvalidRange = errors.New("end date before start date")
	ErrInvalidRooms = errors.New("total rooms must not be negative")
)
