package application

import "errors"

var (
	// ErrFault is returned when the compute-and-print sequence panics.
	ErrFault = errors.New("unexpected runtime fault")
	// ErrOutput is returned when a result cannot be written.
	ErrOutput = errors.New("write output")
)
