// Package lightcurve models evenly-sampled photon count-rate time series.
//
// The package provides the time-series data model, a plain-text table
// reader, and the segmenter that walks a series in fixed-width,
// non-overlapping windows for spectral analysis.
package lightcurve
