package lightcurve

// TimeSeries is an ordered sequence of uniformly spaced (timestamp, rate)
// samples. Timestamps are in seconds, rates in counts per second.
type TimeSeries struct {
	Times []float64
	Rates []float64
}

// Len returns the number of samples.
func (ts *TimeSeries) Len() int { return len(ts.Rates) }

// DT returns the sampling interval in seconds, derived from the first two
// timestamps only. Returns 0 for series shorter than two samples.
func (ts *TimeSeries) DT() float64 {
	if len(ts.Times) < 2 {
		return 0
	}
	return ts.Times[1] - ts.Times[0]
}

// Slice returns the rate values in [i, j). The returned slice aliases the
// underlying storage and must not be mutated by the caller.
func (ts *TimeSeries) Slice(i, j int) []float64 {
	return ts.Rates[i:j]
}
