package tensor

import "errors"

// Sentinel errors returned by tensor operations. Callers match them with
// errors.Is; every returned error wraps one of these with the concrete
// offending values for diagnostics.
var (
	// ErrInvalidShape reports a shape containing a negative dimension.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrShapeMismatch reports operand shapes (or a data length and a
	// declared shape) that must agree but do not.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrIndexArity reports a multi-index whose length differs from the
	// tensor's rank.
	ErrIndexArity = errors.New("tensor: wrong number of indices")

	// ErrIndexOutOfBounds reports an index that exceeds its dimension size.
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")

	// ErrRank reports an operand whose rank is unsupported by the
	// operation (matmul requires rank 2).
	ErrRank = errors.New("tensor: unsupported rank")

	// ErrDimensionMismatch reports incompatible dimensions between two
	// operands (matmul inner-dimension agreement).
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")
)
