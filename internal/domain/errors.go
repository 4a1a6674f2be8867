package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogMalformed is returned when the seed catalog file exists but cannot be parsed
	ErrCatalogMalformed = errors.New("gift catalog file is malformed")

	// ErrCatalogUnavailable is returned when the catalog cannot be read
	ErrCatalogUnavailable = errors.New("gift catalog unavailable")
)
