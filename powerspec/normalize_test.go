package powerspec

import (
	"errors"
	"testing"

	"github.com/jldirac/power-spectra/internal/testutil"
)

func testAveraged(meanRate float64) *AveragedSpectrum {
	avg := &AveragedSpectrum{
		Freq:        []float64{0, 0.0625, 0.125, 0.1875, 0.25, 0.3125, 0.375, 0.4375, 0.5},
		Power:       []float64{0, 120, 340, 6400, 90, 55, 30, 20, 10},
		ErrPower:    make([]float64, 9),
		MeanRate:    meanRate,
		NumSegments: 8,
		DT:          1.0,
		NBins:       16,
	}
	for k := range avg.ErrPower {
		avg.ErrPower[k] = avg.Power[k] / 8.48528137423857 // sqrt(8*9)
	}
	return avg
}

func TestNormalizeFormulas(t *testing.T) {
	avg := testAveraged(100)
	norm, err := Normalize(avg)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	r := avg.MeanRate
	scale := 2 * avg.DT / float64(avg.NBins)
	for k := range avg.Power {
		testutil.RequireNearlyEqual(t, norm.Leahy[k], scale*avg.Power[k]/r, 1e-12)
		testutil.RequireNearlyEqual(t, norm.Rms[k], scale*avg.Power[k]/(r*r)-2/r, 1e-12)
		testutil.RequireNearlyEqual(t, norm.RmsErr[k], scale*avg.ErrPower[k]/(r*r), 1e-12)
	}
}

func TestNormalizeLeahyRmsIdentity(t *testing.T) {
	// rms[k] = leahy[k]/r - 2/r must hold bin for bin.
	avg := testAveraged(100)
	norm, err := Normalize(avg)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	r := avg.MeanRate
	for k := range norm.Rms {
		testutil.RequireNearlyEqual(t, norm.Rms[k], norm.Leahy[k]/r-2/r, 1e-10)
	}
}

func TestNormalizeZeroPowerHitsNoiseFloor(t *testing.T) {
	// A bin with zero averaged power normalizes to exactly -2/r.
	avg := testAveraged(50)
	norm, err := Normalize(avg)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	testutil.RequireNearlyEqual(t, norm.Rms[0], -2.0/50, 1e-12)
}

func TestNormalizeZeroMeanRate(t *testing.T) {
	for _, r := range []float64{0, -5} {
		if _, err := Normalize(testAveraged(r)); !errors.Is(err, ErrZeroMeanRate) {
			t.Fatalf("mean rate %v: err = %v, want ErrZeroMeanRate", r, err)
		}
	}
}
