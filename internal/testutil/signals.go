package testutil

import (
	"math"

	"github.com/jldirac/power-spectra/lightcurve"
)

// ConstantCurve builds a light curve with a constant count rate, sampled
// every dt seconds starting at t = 0.
func ConstantCurve(rate, dt float64, samples int) *lightcurve.TimeSeries {
	ts := &lightcurve.TimeSeries{
		Times: make([]float64, samples),
		Rates: make([]float64, samples),
	}
	for i := range ts.Rates {
		ts.Times[i] = float64(i) * dt
		ts.Rates[i] = rate
	}
	return ts
}

// SinusoidCurve builds a light curve whose rate is a constant base plus a
// sinusoid landing exactly on DFT bin k of an nBins-sample segment:
//
//	rate[i] = base + amplitude * sin(2*pi*k*i/nBins)
//
// The sinusoid period divides the segment length, so every segment of the
// curve carries the same coherent signal.
func SinusoidCurve(base, amplitude float64, k, nBins int, dt float64, samples int) *lightcurve.TimeSeries {
	ts := &lightcurve.TimeSeries{
		Times: make([]float64, samples),
		Rates: make([]float64, samples),
	}
	step := 2 * math.Pi * float64(k) / float64(nBins)
	for i := range ts.Rates {
		ts.Times[i] = float64(i) * dt
		ts.Rates[i] = base + amplitude*math.Sin(step*float64(i))
	}
	return ts
}
