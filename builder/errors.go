package builder

import "errors"

var (
	// ErrMatrixShape indicates a similarity matrix that is not n×n for n concepts.
	ErrMatrixShape = errors.New("builder: similarity matrix shape mismatch")

	// ErrTooFewVertices indicates a topology size below its minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")
)
