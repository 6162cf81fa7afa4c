// Package rebin compresses one-sided power spectra in frequency space by
// merging consecutive bins into geometrically widening groups, trading
// frequency resolution for reduced per-bin noise at high frequency.
package rebin

import (
	"errors"
	"fmt"
	"math"
)

// ErrRebinConst means the rebin constant is below 1.0.
var ErrRebinConst = errors.New("rebin constant must be >= 1.0")

// Bin is one geometrically rebinned frequency bin.
type Bin struct {
	Freq  float64
	Power float64
	Err   float64
}

// Rebinner lazily merges consecutive bins of a one-sided spectrum into
// geometrically widening groups. Each step groups original indices
// [prevM, currentM); consecutive groups share no index and leave no gap
// between them.
//
// The group width grows by the rebin constant each step. The fractional
// width is converted to an integer index increment with math.Round, i.e.
// round half away from zero; this rule is load-bearing for the exact group
// boundaries and is pinned by the package tests.
//
// Index bookkeeping follows the classic averaged-periodogram convention:
// the first group is the single 0 Hz bin passed through untouched, groups
// of width one are never averaged (averaging a lone bin against the next
// frequency would bias the lowest bins), and trailing indices that the last
// full geometric step cannot reach are dropped. The loop condition alone
// governs termination; there is no special-cased tail.
type Rebinner struct {
	freq  []float64
	power []float64
	errs  []float64

	c         float64
	prevM     int
	currentM  int
	realIndex float64
}

// New creates a Rebinner over a one-sided spectrum. freq, power, and errs
// must have equal length; c must be at least 1.0. A constant of exactly 1.0
// (or just above) degenerates to bin-for-bin passthrough.
func New(freq, power, errs []float64, c float64) (*Rebinner, error) {
	if c < 1.0 {
		return nil, fmt.Errorf("%w: %g", ErrRebinConst, c)
	}
	if len(power) != len(freq) || len(errs) != len(freq) {
		return nil, fmt.Errorf("rebin: length mismatch: freq=%d power=%d err=%d",
			len(freq), len(power), len(errs))
	}
	return &Rebinner{
		freq:      freq,
		power:     power,
		errs:      errs,
		c:         c,
		prevM:     0,
		currentM:  1,
		realIndex: 1.0,
	}, nil
}

// Next emits the next rebinned bin, or false once the spectrum is
// exhausted. A spectrum of one bin or fewer yields no output at all.
//
// A group of width w spanning [prevM, currentM) gets the arithmetic mean
// power, the mean frequency freq[prevM] + (freq[currentM]-freq[prevM])/w,
// and the propagated error sqrt(sum(err^2))/w. Width-one groups pass their
// bin through unchanged.
func (r *Rebinner) Next() (Bin, bool) {
	if r.currentM >= len(r.freq) {
		return Bin{}, false
	}

	width := r.currentM - r.prevM

	var bin Bin
	if width == 1 {
		bin.Freq = r.freq[r.prevM]
		bin.Power = r.power[r.prevM]
	} else {
		sum := 0.0
		for k := r.prevM; k < r.currentM; k++ {
			sum += r.power[k]
		}
		bin.Power = sum / float64(width)
		bin.Freq = r.freq[r.prevM] + (r.freq[r.currentM]-r.freq[r.prevM])/float64(width)
	}

	errSq := 0.0
	for k := r.prevM; k < r.currentM; k++ {
		errSq += r.errs[k] * r.errs[k]
	}
	bin.Err = math.Sqrt(errSq) / float64(width)

	r.prevM = r.currentM
	r.realIndex *= r.c
	r.currentM += int(math.Round(r.realIndex))

	return bin, true
}

// Geometric rebins a whole spectrum eagerly and returns the emitted bins.
// The result may be empty for very short spectra; that is not an error.
func Geometric(freq, power, errs []float64, c float64) ([]Bin, error) {
	r, err := New(freq, power, errs, c)
	if err != nil {
		return nil, err
	}

	var bins []Bin
	for {
		b, ok := r.Next()
		if !ok {
			return bins, nil
		}
		bins = append(bins, b)
	}
}
