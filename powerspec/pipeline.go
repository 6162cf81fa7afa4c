package powerspec

import (
	"runtime"
	"sync"

	"github.com/jldirac/power-spectra/lightcurve"
)

// Compute runs the full averaging pipeline over a light curve: segment into
// non-overlapping windows of the given duration, periodogram per segment,
// fold across segments, freeze, normalize.
//
// The sampling interval is derived from the first two timestamps. Parameter
// validation errors surface before any segment is transformed; a series
// shorter than one segment yields ErrNoSegments.
func Compute(ts *lightcurve.TimeSeries, seconds int, opts ...Option) (*AveragedSpectrum, *NormalizedSpectrum, error) {
	cfg := ApplyOptions(opts...)

	dt := ts.DT()
	nBins, err := lightcurve.SegmentBins(seconds, dt)
	if err != nil {
		return nil, nil, err
	}

	seg := lightcurve.NewSegmenter(ts, nBins)

	var acc *Accumulator
	if cfg.Workers == 1 {
		acc, err = reduceSerial(seg, nBins)
	} else {
		acc, err = reduceParallel(seg, nBins, cfg.Workers)
	}
	if err != nil {
		return nil, nil, err
	}

	avg, err := acc.Average(dt)
	if err != nil {
		return nil, nil, err
	}

	norm, err := Normalize(avg)
	if err != nil {
		return nil, nil, err
	}
	return avg, norm, nil
}

func reduceSerial(seg *lightcurve.Segmenter, nBins int) (*Accumulator, error) {
	comp, err := NewComputer(nBins)
	if err != nil {
		return nil, err
	}

	acc := NewAccumulator(nBins)
	for {
		rates, ok := seg.Next()
		if !ok {
			break
		}
		meanRate, power, err := comp.Periodogram(rates)
		if err != nil {
			return nil, err
		}
		acc.Add(meanRate, power)
	}
	return acc, nil
}

// reduceParallel fans segments out to a worker pool. Each worker owns one
// Computer and one partial Accumulator; partials are merged after all
// workers drain. Merge order only perturbs the last few floating-point
// bits of the sums.
func reduceParallel(seg *lightcurve.Segmenter, nBins, workers int) (*Accumulator, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	segments := make(chan []float64, workers)
	partials := make([]*Accumulator, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			comp, err := NewComputer(nBins)
			if err != nil {
				errs[w] = err
				drain(segments)
				return
			}

			acc := NewAccumulator(nBins)
			for rates := range segments {
				meanRate, power, err := comp.Periodogram(rates)
				if err != nil {
					errs[w] = err
					drain(segments)
					return
				}
				acc.Add(meanRate, power)
			}
			partials[w] = acc
		}(w)
	}

	for {
		rates, ok := seg.Next()
		if !ok {
			break
		}
		segments <- rates
	}
	close(segments)
	wg.Wait()

	acc := NewAccumulator(nBins)
	for w := range partials {
		if errs[w] != nil {
			return nil, errs[w]
		}
		if partials[w] != nil {
			acc.Merge(partials[w])
		}
	}
	return acc, nil
}

// drain consumes remaining segments so the producer never blocks after a
// worker fails.
func drain(segments <-chan []float64) {
	for range segments {
	}
}
