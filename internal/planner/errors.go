package planner

import "errors"

var (
	// ErrInvalidRange is returned when the end of a date range lies
	// before its start.
	ErrInvalidRange = errors.New("the end of the range must not be before its start")
)
