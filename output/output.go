// Package output writes power-spectrum tables as plain text, one row per
// frequency bin with '#'-prefixed header metadata.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jldirac/power-spectra/powerspec"
	"github.com/jldirac/power-spectra/rebin"
)

// Meta describes the run that produced a spectrum, for table headers.
type Meta struct {
	Source      string
	DT          float64
	NBins       int
	NumSegments int
	MeanRate    float64
	RebinConst  float64
}

// Duration returns the total light-curve time covered by the averaged
// segments, in seconds.
func (m Meta) Duration() float64 {
	return float64(m.NumSegments) * float64(m.NBins) * m.DT
}

// WriteSpectrum writes the unbinned fractional-rms spectrum table: header
// metadata, then one "frequency  rms power  rms error" row per bin, eight
// decimal digits, tab separated.
func WriteSpectrum(w io.Writer, spec *powerspec.NormalizedSpectrum, meta Meta) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#\t\tPower spectrum\n")
	fmt.Fprintf(bw, "# Data: %s\n", meta.Source)
	fmt.Fprintf(bw, "# Time bin size = %.12f seconds\n", meta.DT)
	fmt.Fprintf(bw, "# Number of bins per segment = %d\n", meta.NBins)
	fmt.Fprintf(bw, "# Number of segments per light curve = %d\n", meta.NumSegments)
	fmt.Fprintf(bw, "# Duration of light curve used = %d seconds\n", int(meta.Duration()))
	fmt.Fprintf(bw, "# Mean count rate = %.8f, over whole light curve\n", meta.MeanRate)
	fmt.Fprintf(bw, "# \n")
	fmt.Fprintf(bw, "# Column 1: Frequency in Hz\n")
	fmt.Fprintf(bw, "# Column 2: Fractional rms normalized mean power\n")
	fmt.Fprintf(bw, "# Column 3: Fractional rms normalized error on the mean power\n")
	fmt.Fprintf(bw, "# \n")

	for k := range spec.Freq {
		fmt.Fprintf(bw, "%.8f\t%.8f\t%.8f\n", spec.Freq[k], spec.Rms[k], spec.RmsErr[k])
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("output: write spectrum: %w", err)
	}
	return nil
}

// WriteRebinned writes the geometrically rebinned spectrum table. The
// header names the rebin constant and the unbinned table the rows were
// derived from.
func WriteRebinned(w io.Writer, bins []rebin.Bin, unbinnedName string, meta Meta) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#\t\tPower spectrum\n")
	fmt.Fprintf(bw, "# Data: %s\n", meta.Source)
	fmt.Fprintf(bw, "# Geometrically re-binned in frequency at (%f * previous bin size)\n", meta.RebinConst)
	fmt.Fprintf(bw, "# Corresponding un-binned output file: %s\n", unbinnedName)
	fmt.Fprintf(bw, "# Original time bin size = %.12f seconds\n", meta.DT)
	fmt.Fprintf(bw, "# Duration of light curve used = %d seconds\n", int(meta.Duration()))
	fmt.Fprintf(bw, "# Mean count rate = %.8f, over whole light curve\n", meta.MeanRate)
	fmt.Fprintf(bw, "# \n")
	fmt.Fprintf(bw, "# Column 1: Frequency in Hz\n")
	fmt.Fprintf(bw, "# Column 2: Fractional rms normalized mean power\n")
	fmt.Fprintf(bw, "# Column 3: Error in fractional rms normalized mean power\n")
	fmt.Fprintf(bw, "# \n")

	for _, b := range bins {
		fmt.Fprintf(bw, "%.8f\t%.8f\t%.8f\n", b.Freq, b.Power, b.Err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("output: write rebinned spectrum: %w", err)
	}
	return nil
}

// WriteSpectrumFile writes the unbinned table to the named file.
func WriteSpectrumFile(path string, spec *powerspec.NormalizedSpectrum, meta Meta) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := WriteSpectrum(f, spec, meta); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", path, err)
	}
	return nil
}

// WriteRebinnedFile writes the rebinned table to the named file, naming
// unbinnedPath in its header.
func WriteRebinnedFile(path string, bins []rebin.Bin, unbinnedPath string, meta Meta) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := WriteRebinned(f, bins, unbinnedPath, meta); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", path, err)
	}
	return nil
}
