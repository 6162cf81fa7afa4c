package powerspec

import "errors"

var (
	// ErrNoSegments means the time series is shorter than one full segment,
	// so there is nothing to average.
	ErrNoSegments = errors.New("no full segments in time series")

	// ErrZeroMeanRate means the whole-curve mean count rate is not positive,
	// which cannot be normalized against.
	ErrZeroMeanRate = errors.New("mean count rate must be > 0")
)
