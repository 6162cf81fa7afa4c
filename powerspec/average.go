package powerspec

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Accumulator folds per-segment periodograms into running sums. The fold is
// associative and commutative, so partial accumulators built on different
// goroutines may be merged in any order; results then differ only by
// floating-point summation error.
type Accumulator struct {
	sumPower []float64
	sumRate  float64
	n        int
}

// NewAccumulator creates an accumulator for periodograms of nBins bins.
func NewAccumulator(nBins int) *Accumulator {
	return &Accumulator{sumPower: make([]float64, nBins)}
}

// Add folds one segment's mean rate and raw power into the accumulator.
// power must have the bin count the accumulator was created for.
func (a *Accumulator) Add(meanRate float64, power []float64) {
	vecmath.AddBlockInPlace(a.sumPower, power)
	a.sumRate += meanRate
	a.n++
}

// Merge folds another accumulator into a. Both must have been created for
// the same bin count.
func (a *Accumulator) Merge(other *Accumulator) {
	vecmath.AddBlockInPlace(a.sumPower, other.sumPower)
	a.sumRate += other.sumRate
	a.n += other.n
}

// NumSegments returns the number of segments folded in so far.
func (a *Accumulator) NumSegments() int { return a.n }

// AveragedSpectrum is the frozen cross-segment average: the one-sided
// frequency grid, averaged raw power, analytic error on the mean power, and
// the run metadata needed for normalization and output headers.
type AveragedSpectrum struct {
	Freq     []float64
	Power    []float64
	ErrPower []float64

	MeanRate    float64
	NumSegments int
	DT          float64
	NBins       int
}

// Average freezes the accumulator into an AveragedSpectrum for the given
// sampling interval. It returns ErrNoSegments when nothing was folded in.
//
// Only the L = nBins/2 + 1 non-negative-frequency bins are kept, through
// and including the Nyquist bin. The bin count is a power of two and hence
// even, so this index rule is exact and never searched for at run time.
// Bin k maps to frequency k/(dt*nBins) Hz. The error on the mean power is
// power[k]/sqrt(numSegments*L).
func (a *Accumulator) Average(dt float64) (*AveragedSpectrum, error) {
	if a.n == 0 {
		return nil, ErrNoSegments
	}

	nBins := len(a.sumPower)
	bins := nBins/2 + 1

	avg := &AveragedSpectrum{
		Freq:        make([]float64, bins),
		Power:       make([]float64, bins),
		ErrPower:    make([]float64, bins),
		MeanRate:    a.sumRate / float64(a.n),
		NumSegments: a.n,
		DT:          dt,
		NBins:       nBins,
	}

	vecmath.ScaleBlock(avg.Power, a.sumPower[:bins], 1/float64(a.n))
	vecmath.ScaleBlock(avg.ErrPower, avg.Power, 1/math.Sqrt(float64(a.n)*float64(bins)))

	df := 1 / (dt * float64(nBins))
	for k := range avg.Freq {
		avg.Freq[k] = float64(k) * df
	}

	return avg, nil
}
