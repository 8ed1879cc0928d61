package timeslice

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the sample distribution at one time index.
type Summary struct {
	T      int
	N      int
	Mean   float64
	Std    float64 // sample standard deviation (n-1)
	StdErr float64 // Std / sqrt(N)
	Min    float64
	Max    float64
	Median float64
}

// Summarize computes the summary at time t. Indices with no values yield
// N=0 and NaN statistics.
func (ts *TimeSlices) Summarize(t int) Summary {
	values := ts.At(t)
	s := Summary{T: t, N: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.StdErr, s.Min, s.Max, s.Median = nan, nan, nan, nan, nan, nan
		return s
	}

	s.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
		s.StdErr = stat.StdErr(s.Std, float64(len(values)))
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		s.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		s.Median = sorted[n/2]
	}

	return s
}

// Summaries returns the summary for every time index.
func (ts *TimeSlices) Summaries() []Summary {
	out := make([]Summary, ts.MaxTime())
	for t := range out {
		out[t] = ts.Summarize(t)
	}
	return out
}

// Means returns the per-time-index mean, NaN where an index is empty.
func (ts *TimeSlices) Means() []float64 {
	out := make([]float64, ts.MaxTime())
	for t := range out {
		if v := ts.At(t); len(v) > 0 {
			out[t] = stat.Mean(v, nil)
		} else {
			out[t] = math.NaN()
		}
	}
	return out
}
