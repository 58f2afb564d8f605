package services

import "errors"

var (
	// ErrNotFound marks an absent row or an empty result the caller asked for.
	ErrNotFound = errors.New("resource not found")
	// ErrUnprocessable marks input that could not be turned into a stored row.
	ErrUnprocessable = errors.New("unprocessable")
)
