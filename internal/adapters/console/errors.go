package console

import (
	"errors"
)

// Sentinel error kinds for this package.
var (
	// ErrNoInput means input ended before anything was entered.
	ErrNoInput = errors.New("no input")
	// ErrMalformedInput means an entry could not be parsed after all attempts.
	ErrMalformedInput = errors.New("malformed input")
)
