// Command powerspec computes an averaged power spectral density from an
// evenly-sampled count-rate light curve and writes two plain-text tables:
// the unbinned fractional-rms spectrum and a geometrically rebinned one.
//
// Usage:
//
//	powerspec [flags] <datafile> <outfile> <rebinned-outfile> <seconds> <rebin-const>
//
// datafile is a two-column (timestamp, rate) text table. seconds is the
// segment duration, a positive integer power of two. rebin-const is the
// geometric rebinning constant, at least 1.0.
//
// Examples:
//
//	powerspec curve.txt psd.txt psd_rb.txt 16 1.03
//	powerspec -workers 4 curve.txt psd.txt psd_rb.txt 64 1.5
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jldirac/power-spectra/lightcurve"
	"github.com/jldirac/power-spectra/output"
	"github.com/jldirac/power-spectra/powerspec"
	"github.com/jldirac/power-spectra/rebin"
)

type args struct {
	datafile        string
	outfile         string
	rebinnedOutfile string
	seconds         int
	rebinConst      float64
	workers         int
}

func main() {
	workers := flag.Int("workers", 1, "periodogram worker goroutines (0 = one per CPU)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: powerspec [flags] <datafile> <outfile> <rebinned-outfile> <seconds> <rebin-const>\n\n")
		fmt.Fprintf(os.Stderr, "Computes an averaged power spectrum of a light curve and writes the\n")
		fmt.Fprintf(os.Stderr, "unbinned and geometrically rebinned tables.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  powerspec curve.txt psd.txt psd_rb.txt 16 1.03\n")
		fmt.Fprintf(os.Stderr, "  powerspec -workers 4 curve.txt psd.txt psd_rb.txt 64 1.5\n")
	}
	flag.Parse()

	a, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	a.workers = *workers

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(a, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "time"
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// parseArgs validates the positional parameters. Everything checkable
// without reading the data file is rejected here, before any I/O.
func parseArgs(positional []string) (args, error) {
	if len(positional) != 5 {
		return args{}, fmt.Errorf("want 5 positional arguments, got %d", len(positional))
	}

	seconds, err := strconv.Atoi(positional[3])
	if err != nil {
		return args{}, fmt.Errorf("bad seconds %q: %w", positional[3], err)
	}
	if seconds <= 0 {
		return args{}, fmt.Errorf("%w: %d", lightcurve.ErrNonPositiveSegment, seconds)
	}
	if !lightcurve.PowerOfTwo(seconds) {
		return args{}, fmt.Errorf("segment duration must be a power of two seconds: %d", seconds)
	}

	rebinConst, err := strconv.ParseFloat(positional[4], 64)
	if err != nil {
		return args{}, fmt.Errorf("bad rebin constant %q: %w", positional[4], err)
	}
	if rebinConst < 1.0 {
		return args{}, fmt.Errorf("%w: %g", rebin.ErrRebinConst, rebinConst)
	}

	return args{
		datafile:        positional[0],
		outfile:         positional[1],
		rebinnedOutfile: positional[2],
		seconds:         seconds,
		rebinConst:      rebinConst,
	}, nil
}

func run(a args, logger *zap.Logger) error {
	logger.Info("reading light curve", zap.String("datafile", a.datafile))

	ts, err := lightcurve.ReadFile(a.datafile)
	if err != nil {
		return err
	}
	logger.Info("light curve read",
		zap.Int("samples", ts.Len()),
		zap.Float64("dt", ts.DT()),
	)

	avg, norm, err := powerspec.Compute(ts, a.seconds, powerspec.WithWorkers(a.workers))
	if err != nil {
		return err
	}
	logger.Info("power spectrum averaged",
		zap.Int("segments", avg.NumSegments),
		zap.Int("bins_per_segment", avg.NBins),
		zap.Float64("mean_rate", avg.MeanRate),
	)

	bins, err := rebin.Geometric(norm.Freq, norm.Rms, norm.RmsErr, a.rebinConst)
	if err != nil {
		return err
	}
	logger.Info("spectrum rebinned",
		zap.Float64("rebin_const", a.rebinConst),
		zap.Int("bins", len(bins)),
	)

	meta := output.Meta{
		Source:      a.datafile,
		DT:          avg.DT,
		NBins:       avg.NBins,
		NumSegments: avg.NumSegments,
		MeanRate:    avg.MeanRate,
		RebinConst:  a.rebinConst,
	}
	if err := output.WriteSpectrumFile(a.outfile, norm, meta); err != nil {
		return err
	}
	if err := output.WriteRebinnedFile(a.rebinnedOutfile, bins, a.outfile, meta); err != nil {
		return err
	}

	logger.Info("output written",
		zap.String("outfile", a.outfile),
		zap.String("rebinned_outfile", a.rebinnedOutfile),
	)
	return nil
}
