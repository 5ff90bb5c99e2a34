package domain

import "errors"

// Domain errors represent demo-level failures.
// These are distinct from infrastructure errors such as config file I/O.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownComponent indicates a component name that the vector does not have,
	// e.g. "w" on a three-component vector.
	ErrUnknownComponent = errors.New("unknown vector component")

	// ErrUnsupportedStyle indicates no renderer exists for the requested style.
	ErrUnsupportedStyle = errors.New("unsupported render style")
)
