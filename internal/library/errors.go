package library

import "errors"

// Errors for the failure kinds catalog and item operations surface.
// Callers match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrNotFound        = errors.New("not found")
)
