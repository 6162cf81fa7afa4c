package lightcurve

import (
	"fmt"
	"math"
)

// PowerOfTwo reports whether n is a positive integer power of two. 1 counts.
func PowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// SegmentBins computes the number of samples per segment for the given
// segment duration in seconds and sampling interval: seconds * round(1/dt).
//
// The count must be a power of two for the FFT. That also makes it even, so
// the one-sided spectrum of a segment has nBins/2 + 1 bins.
func SegmentBins(seconds int, dt float64) (int, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNonPositiveSegment, seconds)
	}
	if dt <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrNonPositiveDT, dt)
	}
	nBins := seconds * int(math.Round(1/dt))
	if !PowerOfTwo(nBins) {
		return 0, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, nBins)
	}
	return nBins, nil
}

// Segmenter walks a time series in non-overlapping windows of a fixed
// number of samples. A trailing remainder shorter than one window is
// dropped. The walk is single-use; the segment count is not known up front.
type Segmenter struct {
	ts    *TimeSeries
	nBins int
	pos   int
}

// NewSegmenter creates a segmenter yielding windows of nBins samples.
func NewSegmenter(ts *TimeSeries, nBins int) *Segmenter {
	return &Segmenter{ts: ts, nBins: nBins}
}

// Next returns the rate values of the next full segment, or false when
// fewer than nBins samples remain. The returned slice aliases the series.
func (s *Segmenter) Next() ([]float64, bool) {
	if s.nBins <= 0 || s.pos+s.nBins > s.ts.Len() {
		return nil, false
	}
	seg := s.ts.Slice(s.pos, s.pos+s.nBins)
	s.pos += s.nBins
	return seg, true
}
