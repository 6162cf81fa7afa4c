package powerspec

import (
	"errors"
	"math"
	"testing"

	"github.com/jldirac/power-spectra/internal/testutil"
	"github.com/jldirac/power-spectra/lightcurve"
	"github.com/jldirac/power-spectra/rebin"
)

func TestComputeSinusoidEndToEnd(t *testing.T) {
	const (
		nBins    = 16
		segments = 8
		bin      = 3
	)
	ts := testutil.SinusoidCurve(100, 10, bin, nBins, 1.0, segments*nBins)

	avg, norm, err := Compute(ts, nBins)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if avg.NumSegments != segments {
		t.Fatalf("NumSegments = %d, want %d", avg.NumSegments, segments)
	}
	testutil.RequireNearlyEqual(t, avg.MeanRate, 100, 1e-9)
	if len(norm.Rms) != nBins/2+1 {
		t.Fatalf("one-sided length = %d, want %d", len(norm.Rms), nBins/2+1)
	}
	testutil.RequireFinite(t, norm.Rms)

	// The injected sinusoid dominates: peak at bin 3, 2*A^2*n/4... worked
	// through the rms normalization: 2*(A*n/2)^2*dt/n / r^2 - 2/r = 0.06.
	peak := norm.Rms[bin]
	testutil.RequireNearlyEqual(t, peak, 0.06, 1e-9)

	// Every other non-DC bin sits on the Poisson noise floor -2/r, within
	// a small fraction of the peak.
	floor := -2.0 / avg.MeanRate
	for k := 1; k < len(norm.Rms); k++ {
		if k == bin {
			continue
		}
		if d := math.Abs(norm.Rms[k] - floor); d > 0.05*peak {
			t.Fatalf("rms[%d] = %v, off the noise floor %v by %v", k, norm.Rms[k], floor, d)
		}
	}

	// Geometric rebinning at 1.5 compresses the 8 non-DC bins.
	bins, err := rebin.Geometric(norm.Freq, norm.Rms, norm.RmsErr, 1.5)
	if err != nil {
		t.Fatalf("Geometric error: %v", err)
	}
	if len(bins) == 0 || len(bins) >= nBins/2 {
		t.Fatalf("rebinned entries = %d, want 0 < n < %d", len(bins), nBins/2)
	}
}

func TestComputeSerialMatchesParallel(t *testing.T) {
	const nBins = 32
	ts := testutil.SinusoidCurve(200, 15, 5, nBins, 0.5, 20*nBins)

	_, serial, err := Compute(ts, 16)
	if err != nil {
		t.Fatalf("Compute serial error: %v", err)
	}
	_, parallel, err := Compute(ts, 16, WithWorkers(4))
	if err != nil {
		t.Fatalf("Compute parallel error: %v", err)
	}

	// Worker merge order is nondeterministic; only the last few bits of
	// the float sums may move.
	testutil.RequireSliceNearlyEqual(t, parallel.Rms, serial.Rms, 1e-10)
	testutil.RequireSliceNearlyEqual(t, parallel.RmsErr, serial.RmsErr, 1e-10)
	testutil.RequireSliceNearlyEqual(t, parallel.Leahy, serial.Leahy, 1e-10)
}

func TestComputeWorkersPerCPU(t *testing.T) {
	ts := testutil.SinusoidCurve(100, 10, 3, 16, 1.0, 8*16)
	avg, _, err := Compute(ts, 16, WithWorkers(0))
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if avg.NumSegments != 8 {
		t.Fatalf("NumSegments = %d, want 8", avg.NumSegments)
	}
}

func TestComputeValidation(t *testing.T) {
	ts := testutil.ConstantCurve(100, 1.0, 64)

	if _, _, err := Compute(ts, 0); !errors.Is(err, lightcurve.ErrNonPositiveSegment) {
		t.Fatalf("err = %v, want ErrNonPositiveSegment", err)
	}
	if _, _, err := Compute(ts, 3); !errors.Is(err, lightcurve.ErrNotPowerOfTwo) {
		t.Fatalf("err = %v, want ErrNotPowerOfTwo", err)
	}

	// A one-sample series has no derivable dt.
	one := &lightcurve.TimeSeries{Times: []float64{0}, Rates: []float64{100}}
	if _, _, err := Compute(one, 16); !errors.Is(err, lightcurve.ErrNonPositiveDT) {
		t.Fatalf("err = %v, want ErrNonPositiveDT", err)
	}
}

func TestComputeInsufficientData(t *testing.T) {
	// Fifteen samples cannot fill one 16-bin segment.
	ts := testutil.ConstantCurve(100, 1.0, 15)
	if _, _, err := Compute(ts, 16); !errors.Is(err, ErrNoSegments) {
		t.Fatalf("err = %v, want ErrNoSegments", err)
	}
}

func TestComputeZeroMeanRate(t *testing.T) {
	ts := testutil.ConstantCurve(0, 1.0, 64)
	if _, _, err := Compute(ts, 16); !errors.Is(err, ErrZeroMeanRate) {
		t.Fatalf("err = %v, want ErrZeroMeanRate", err)
	}
}
