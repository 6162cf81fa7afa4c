// Package powerspec computes averaged power spectral densities of
// evenly-sampled count-rate light curves.
//
// The pipeline splits a light curve into non-overlapping power-of-two
// segments, computes one raw periodogram per segment (demean, FFT, squared
// magnitude), folds the periodograms into a cross-segment average, and
// normalizes the average to Leahy and fractional-rms units with analytic
// error bars. The fold is associative and commutative, so segments may be
// processed on a worker pool and partial sums merged in any order.
package powerspec
