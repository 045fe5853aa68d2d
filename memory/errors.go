package memory

import "errors"

// Error kinds returned by the estimators. Callers match them with errors.Is;
// the wrapped message names the offending value.
var (
	ErrUnsupportedPrecision = errors.New("unsupported precision")
	ErrUnsupportedDimension = errors.New("unsupported dimension")
	ErrRankMismatch         = errors.New("rank mismatch")
	ErrNonPositiveExtent    = errors.New("non-positive extent")
	ErrNotSuperCellAligned  = errors.New("extent not aligned to super cell size")
	ErrUnknownAttribute     = errors.New("unknown particle attribute")
	ErrUnknownGenerator     = errors.New("unknown random number generator")
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrOverflow             = errors.New("byte count overflows int64")
)
