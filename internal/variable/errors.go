package variable

import "errors"

// Common errors.
var (
	ErrBadDims           = errors.New("invalid dimensions")
	ErrDimNotFound       = errors.New("dimension not found")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrBadSliceBounds    = errors.New("slice bounds out of range")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrNotScalar         = errors.New("variable is not a scalar")
	ErrVariancesMismatch = errors.New("variances mismatch")
)
