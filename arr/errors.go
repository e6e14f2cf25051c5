package arr

import "errors"

// Sentinel errors returned by arr helpers.
var (
	// ErrNegativeSize is returned by Take when asked for a negative number
	// of elements.
	ErrNegativeSize = errors.New("arr: attempt to use negative size")

	// ErrInvalidDigestSize is returned by NewTupleHasher when Size is outside
	// [1, 64].
	ErrInvalidDigestSize = errors.New("arr: digest size must be between 1 and 64 bytes")
)
