package shamir

import "errors"

var (
	// ErrTooFewShares is returned when total < 2 or total < threshold.
	ErrTooFewShares = errors.New("total shares must be at least the threshold and at least 2")

	// ErrTooManyShares is returned when total exceeds the maximum this
	// bit width can index (2^bits - 1).
	ErrTooManyShares = errors.New("total shares exceeds the maximum supported by this bit width")

	// ErrNoShares is returned when Combine is called with no shares.
	ErrNoShares = errors.New("no shares to combine")

	// ErrPaddingMarkerNotFound is returned when the reconstructed bit
	// stream contains no set bit at all, meaning the padding marker
	// could not be located: the shares are damaged or disagree.
	ErrPaddingMarkerNotFound = errors.New("padding marker not found in reconstructed data")
)
