package models

import "errors"

var (
	// ErrInvalidCoordinate is returned when a latitude or longitude is outside its valid range.
	ErrInvalidCoordinate = errors.New("coordinate out of range")

	// ErrInvalidViewport is returned when a focus request carries a non-positive viewport width.
	ErrInvalidViewport = errors.New("viewport width must be positive")
)
