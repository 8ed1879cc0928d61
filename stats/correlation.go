// Package stats computes time-step correlation matrices between correlators.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/latticecorr/timeslice"
)

// CorrelationOptions holds options for Correlate.
type CorrelationOptions struct {
	MaxTime   int // Matrix dimension (default: 16)
	CapLength int // Leading samples used per time index (default: 400)
}

// DefaultCorrelationOptions returns the default correlation options.
func DefaultCorrelationOptions() *CorrelationOptions {
	return &CorrelationOptions{
		MaxTime:   16,
		CapLength: 400,
	}
}

// Pearson returns the Pearson correlation coefficient of x and y.
// It returns NaN when the lengths differ, fewer than two pairs are
// available, or either input has zero variance.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return math.NaN()
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return math.NaN()
	}

	r := stat.Correlation(x, y, nil)
	// Rounding can push |r| marginally past 1.
	return math.Max(-1, math.Min(1, r))
}

// Correlate builds the MaxTime x MaxTime matrix whose (i, j) cell is the
// Pearson coefficient between rows.At(i) and cols.At(j), each truncated to
// CapLength leading values. Cells whose truncated inputs differ in length or
// have fewer than two values are NaN. Time indices beyond a TimeSlices'
// range count as empty.
func Correlate(rows, cols *timeslice.TimeSlices, opts *CorrelationOptions) (*CorrelationMatrix, error) {
	if rows == nil || cols == nil {
		return nil, errors.New("correlate: time slices must not be nil")
	}
	if opts == nil {
		opts = DefaultCorrelationOptions()
	}
	if opts.MaxTime <= 0 {
		return nil, errors.New("correlate: max time must be positive")
	}
	if opts.CapLength <= 0 {
		return nil, errors.New("correlate: cap length must be positive")
	}

	m := newCorrelationMatrix(rows.Label(), cols.Label(), opts.MaxTime, opts.CapLength)
	for i := 0; i < opts.MaxTime; i++ {
		x := capValues(rows.At(i), opts.CapLength)
		for j := 0; j < opts.MaxTime; j++ {
			y := capValues(cols.At(j), opts.CapLength)
			m.data.Set(i, j, Pearson(x, y))
		}
	}

	return m, nil
}

func capValues(values []float64, n int) []float64 {
	if len(values) > n {
		return values[:n]
	}
	return values
}
