package powerspec

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Computer turns light-curve segments into raw periodograms. It owns an FFT
// plan and scratch buffers sized for one segment, so it is cheap to reuse
// across many segments but must not be shared between goroutines.
type Computer struct {
	nBins int
	plan  *algofft.Plan[complex128]

	in  []complex128
	out []complex128
	re  []float64
	im  []float64
}

// NewComputer creates a periodogram computer for segments of nBins samples.
func NewComputer(nBins int) (*Computer, error) {
	if nBins <= 0 {
		return nil, fmt.Errorf("powerspec: segment bins must be > 0: %d", nBins)
	}
	plan, err := algofft.NewPlan64(nBins)
	if err != nil {
		return nil, fmt.Errorf("powerspec: create FFT plan: %w", err)
	}
	return &Computer{
		nBins: nBins,
		plan:  plan,
		in:    make([]complex128, nBins),
		out:   make([]complex128, nBins),
		re:    make([]float64, nBins),
		im:    make([]float64, nBins),
	}, nil
}

// NBins returns the segment length the computer was built for.
func (c *Computer) NBins() int { return c.nBins }

// Periodogram computes the raw periodogram of one segment: the segment mean
// is subtracted, the residual is Fourier transformed, and |X[k]|^2 is
// returned for all nBins DFT bins along with the segment mean rate.
//
// Demeaning removes the spike at 0 Hz, so power[0] is zero up to rounding.
// The function has no side effects beyond the computer's scratch buffers;
// the returned power slice is freshly allocated.
func (c *Computer) Periodogram(rates []float64) (meanRate float64, power []float64, err error) {
	if len(rates) != c.nBins {
		return 0, nil, fmt.Errorf("powerspec: segment length %d, want %d", len(rates), c.nBins)
	}

	for _, v := range rates {
		meanRate += v
	}
	meanRate /= float64(c.nBins)

	for i, v := range rates {
		c.in[i] = complex(v-meanRate, 0)
	}

	if err := c.plan.Forward(c.out, c.in); err != nil {
		return 0, nil, fmt.Errorf("powerspec: forward FFT: %w", err)
	}

	for i, x := range c.out {
		c.re[i] = real(x)
		c.im[i] = imag(x)
	}

	power = make([]float64, c.nBins)
	vecmath.Power(power, c.re, c.im)

	return meanRate, power, nil
}
