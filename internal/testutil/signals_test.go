package testutil

import (
	"math"
	"testing"
)

func TestConstantCurve(t *testing.T) {
	ts := ConstantCurve(100, 0.5, 8)
	if ts.Len() != 8 {
		t.Fatalf("len = %d, want 8", ts.Len())
	}
	if ts.DT() != 0.5 {
		t.Fatalf("dt = %v, want 0.5", ts.DT())
	}
	for i, v := range ts.Rates {
		if v != 100 {
			t.Fatalf("rate[%d] = %v, want 100", i, v)
		}
	}
}

func TestSinusoidCurvePeriodicity(t *testing.T) {
	// A sinusoid on bin 3 of a 16-sample segment must repeat every 16
	// samples, so consecutive segments are identical.
	ts := SinusoidCurve(100, 10, 3, 16, 1.0, 32)
	for i := 0; i < 16; i++ {
		if math.Abs(ts.Rates[i]-ts.Rates[i+16]) > 1e-12 {
			t.Fatalf("segment mismatch at %d: %v vs %v", i, ts.Rates[i], ts.Rates[i+16])
		}
	}
}

func TestSinusoidCurveRange(t *testing.T) {
	ts := SinusoidCurve(100, 10, 3, 16, 1.0, 64)
	for i, v := range ts.Rates {
		if v < 90 || v > 110 {
			t.Fatalf("rate[%d] = %v out of [90, 110]", i, v)
		}
	}
}
