package schema

import "errors"

var (
	// ErrInvalidCount indicates a flip count outside [MinFlips, MaxFlips].
	ErrInvalidCount = errors.New("invalid flip count")
	// ErrAllocation indicates storage for the flip buffer could not be obtained.
	ErrAllocation = errors.New("memory allocation error")
)
