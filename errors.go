package cubeview

import "errors"

// Sentinel errors for the cubeview package.
var (
	// Session errors
	ErrBusy       = errors.New("cubeview: previous batch still in flight")
	ErrNotLoaded  = errors.New("cubeview: state not loaded")
	ErrEmptyBatch = errors.New("cubeview: no moves to submit")

	// Solver errors
	ErrAlreadySolved = errors.New("cubeview: cube already solved")
)
