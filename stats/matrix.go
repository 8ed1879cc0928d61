package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CorrelationMatrix is a square grid of correlation coefficients between the
// time indices of a row label and a column label. NaN marks cells that could
// not be computed.
type CorrelationMatrix struct {
	rowLabel  string
	colLabel  string
	capLength int
	data      *mat.Dense
}

func newCorrelationMatrix(rowLabel, colLabel string, size, capLength int) *CorrelationMatrix {
	return &CorrelationMatrix{
		rowLabel:  rowLabel,
		colLabel:  colLabel,
		capLength: capLength,
		data:      mat.NewDense(size, size, nil),
	}
}

// Size returns the matrix dimension.
func (m *CorrelationMatrix) Size() int {
	r, _ := m.data.Dims()
	return r
}

// At returns cell (i, j). It panics if i or j is out of range.
func (m *CorrelationMatrix) At(i, j int) float64 {
	return m.data.At(i, j)
}

// RowLabel returns the label whose time steps index the rows.
func (m *CorrelationMatrix) RowLabel() string {
	return m.rowLabel
}

// ColLabel returns the label whose time steps index the columns.
func (m *CorrelationMatrix) ColLabel() string {
	return m.colLabel
}

// CapLength returns the per-index sample cap used to build the matrix.
func (m *CorrelationMatrix) CapLength() int {
	return m.capLength
}

// Dense returns a copy of the underlying matrix.
func (m *CorrelationMatrix) Dense() *mat.Dense {
	return mat.DenseCopyOf(m.data)
}

// Computable returns the number of non-NaN cells.
func (m *CorrelationMatrix) Computable() int {
	n := 0
	for _, v := range m.data.RawMatrix().Data {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Range returns the smallest and largest non-NaN coefficients, or NaN, NaN
// if no cell is computable.
func (m *CorrelationMatrix) Range() (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, v := range m.data.RawMatrix().Data {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return min, max
}

// Format renders the matrix as aligned text.
func (m *CorrelationMatrix) Format() string {
	return fmt.Sprintf("%.4f", mat.Formatted(m.data, mat.Squeeze()))
}
