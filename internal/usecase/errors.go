package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnknownVendor         = errors.New("unknown data source")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
