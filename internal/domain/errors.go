package domain

import "errors"

var (
	// ErrInvalidRoot is returned when the scan root is missing or not a directory.
	ErrInvalidRoot = errors.New("invalid scan root")
	// ErrCycleFound is returned by Workflow.Run only when failing on cycles was requested.
	ErrCycleFound = errors.New("dependency cycle found")
)
