package timeslice

import (
	"errors"
	"fmt"

	"github.com/sartorproj/latticecorr/gpl"
)

// ErrLabelNotFound is returned when transposing a label the collection does
// not know. Callers treat it as a missing result.
var ErrLabelNotFound = errors.New("label not found")

// TimeSlices holds, for each time index 0..MaxTime()-1, the values observed
// at that index across all samples of one label.
type TimeSlices struct {
	label  string
	values [][]float64
}

// New builds TimeSlices from already grouped values. values[t] is the sample
// list at time t.
func New(label string, values [][]float64) *TimeSlices {
	vs := make([][]float64, len(values))
	for t, v := range values {
		vs[t] = make([]float64, len(v))
		copy(vs[t], v)
	}
	return &TimeSlices{label: label, values: vs}
}

// Transpose collects, for t in [0, maxTime), the t-th value of every sequence
// under label that is long enough, in sequence order.
func Transpose(c *gpl.Collection, label string, maxTime int) (*TimeSlices, error) {
	seqs, ok := c.Sequences(label)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLabelNotFound, label)
	}
	if maxTime < 0 {
		maxTime = 0
	}

	values := make([][]float64, maxTime)
	for t := 0; t < maxTime; t++ {
		values[t] = make([]float64, 0, len(seqs))
		for _, s := range seqs {
			if len(s) > t {
				values[t] = append(values[t], s[t])
			}
		}
	}

	return &TimeSlices{label: label, values: values}, nil
}

// Label returns the label the slices were built from.
func (ts *TimeSlices) Label() string {
	return ts.label
}

// MaxTime returns the number of time indices.
func (ts *TimeSlices) MaxTime() int {
	return len(ts.values)
}

// At returns the values at time t, or nil if t is out of range.
// The returned slice must not be modified.
func (ts *TimeSlices) At(t int) []float64 {
	if t < 0 || t >= len(ts.values) {
		return nil
	}
	return ts.values[t]
}

// Len returns the number of values at time t.
func (ts *TimeSlices) Len(t int) int {
	return len(ts.At(t))
}
