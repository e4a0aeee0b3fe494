package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrTooManyNodes is returned by FloydWarshall when the graph exceeds
	// the WithMaxNodes gate.
	ErrTooManyNodes = errors.New("matrix: graph too large for all-pairs search")
)
