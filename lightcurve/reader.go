package lightcurve

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadTable reads a two-column (timestamp, rate) table from r. Columns may
// be separated by whitespace or commas. Blank lines and lines starting with
// '#' are skipped; columns beyond the second are ignored.
//
// Parse and I/O errors are returned with line context and never masked.
func ReadTable(r io.Reader) (*TimeSeries, error) {
	ts := &TimeSeries{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if len(fields) < 2 {
			return nil, fmt.Errorf("lightcurve: line %d: want 2 columns, got %d", lineNo, len(fields))
		}

		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("lightcurve: line %d: bad timestamp %q: %w", lineNo, fields[0], err)
		}
		rate, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("lightcurve: line %d: bad rate %q: %w", lineNo, fields[1], err)
		}

		ts.Times = append(ts.Times, t)
		ts.Rates = append(ts.Rates, rate)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lightcurve: read: %w", err)
	}
	return ts, nil
}

// ReadFile reads a light-curve table from the named file.
func ReadFile(path string) (*TimeSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lightcurve: %w", err)
	}
	defer f.Close()

	ts, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}
