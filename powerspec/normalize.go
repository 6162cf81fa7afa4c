package powerspec

import "fmt"

// NormalizedSpectrum is a read-only view over an AveragedSpectrum in
// physical units: Leahy-normalized power, fractional-rms power, and the
// error on the fractional-rms power. Freq aliases the averaged spectrum.
type NormalizedSpectrum struct {
	Freq   []float64
	Leahy  []float64
	Rms    []float64
	RmsErr []float64
}

// Normalize converts averaged raw power to Leahy and fractional-rms units.
//
// With r the whole-curve mean rate and n the bins per segment:
//
//	leahy[k]  = 2*power[k]*dt/n / r
//	rms[k]    = 2*power[k]*dt/n / r^2 - 2/r
//	rmsErr[k] = 2*errPower[k]*dt/n / r^2
//
// The 2*dt/n factor and the Poisson noise-floor subtraction 2/r are exact
// normalization conventions. Pure Poisson noise has Leahy power 2 per bin.
//
// Returns ErrZeroMeanRate when the mean rate is not positive.
func Normalize(avg *AveragedSpectrum) (*NormalizedSpectrum, error) {
	if avg.MeanRate <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrZeroMeanRate, avg.MeanRate)
	}

	bins := len(avg.Power)
	norm := &NormalizedSpectrum{
		Freq:   avg.Freq,
		Leahy:  make([]float64, bins),
		Rms:    make([]float64, bins),
		RmsErr: make([]float64, bins),
	}

	scale := 2 * avg.DT / float64(avg.NBins)
	r := avg.MeanRate
	noise := 2 / r
	for k := 0; k < bins; k++ {
		norm.Leahy[k] = scale * avg.Power[k] / r
		norm.Rms[k] = scale*avg.Power[k]/(r*r) - noise
		norm.RmsErr[k] = scale * avg.ErrPower[k] / (r * r)
	}
	return norm, nil
}
