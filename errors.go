package tabulatedintegral

import "errors"

var (
	// ErrInsufficientData is returned when fewer than MinSamples samples are available.
	ErrInsufficientData = errors.New("insufficient data: at least 3 samples are required")

	// ErrInvalidConfiguration is returned when n, h, the rule or the origin are unusable.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
