package lightcurve

import "errors"

var (
	// ErrNonPositiveSegment means the requested segment duration is not a
	// positive number of seconds.
	ErrNonPositiveSegment = errors.New("segment duration must be > 0 seconds")

	// ErrNonPositiveDT means the sampling interval derived from the time
	// series is not positive.
	ErrNonPositiveDT = errors.New("sampling interval must be > 0")

	// ErrNotPowerOfTwo means the computed bins-per-segment count is not a
	// power of two, which the FFT requires.
	ErrNotPowerOfTwo = errors.New("bins per segment must be a power of two")
)
