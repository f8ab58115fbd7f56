package testrand

import "errors"

var (
	// ErrEmptyRange is the panic value used when a supplied range holds no values.
	ErrEmptyRange = errors.New("testrand: empty range")

	// ErrZeroLengthName is the panic value used when a zero-length filename is
	// requested; such a name offers no collision resistance.
	ErrZeroLengthName = errors.New("testrand: zero-length filename")
)
