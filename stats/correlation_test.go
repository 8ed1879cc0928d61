package stats

import (
	"math"
	"strings"
	"testing"

	"github.com/sartorproj/latticecorr/timeslice"
)

func TestPearson(t *testing.T) {
	tests := []struct {
		name     string
		x, y     []float64
		expected float64
		nan      bool
	}{
		{"identical", []float64{1, 2, 4, 8}, []float64{1, 2, 4, 8}, 1, false},
		{"negated", []float64{1, 2, 3}, []float64{-1, -2, -3}, -1, false},
		{"scaled", []float64{1, 2, 3}, []float64{10, 20, 30}, 1, false},
		{"uncorrelated", []float64{1, 2, 3, 4}, []float64{1, -1, -1, 1}, 0, false},
		{"constant x", []float64{5, 5, 5}, []float64{1, 2, 3}, 0, true},
		{"constant y", []float64{1, 2, 3}, []float64{5, 5, 5}, 0, true},
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, 0, true},
		{"single pair", []float64{1}, []float64{2}, 0, true},
		{"empty", nil, nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Pearson(tt.x, tt.y)
			if tt.nan {
				if !math.IsNaN(r) {
					t.Errorf("Expected NaN, got %f", r)
				}
				return
			}
			if math.Abs(r-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, r)
			}
		})
	}
}

func TestPearsonBounded(t *testing.T) {
	x := make([]float64, 200)
	y := make([]float64, 200)
	for i := range x {
		x[i] = math.Sin(float64(i) / 7)
		y[i] = 0.5*x[i] + math.Cos(float64(i)/3)/4
	}

	r := Pearson(x, y)
	if r < -1 || r > 1 {
		t.Errorf("Coefficient out of range: %f", r)
	}
	t.Logf("Pearson(sin, mixed) = %f", r)
}

func TestCorrelateShape(t *testing.T) {
	rows := timeslice.New("A", [][]float64{{1, 2, 3}, {2, 4, 7}, {1, 1, 1}})
	cols := timeslice.New("B", [][]float64{{3, 2, 1}, {1, 2}})

	m, err := Correlate(rows, cols, &CorrelationOptions{MaxTime: 4, CapLength: 400})
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	if m.Size() != 4 {
		t.Fatalf("Expected 4x4 matrix, got %d", m.Size())
	}
	if m.RowLabel() != "A" || m.ColLabel() != "B" {
		t.Errorf("Unexpected labels %s, %s", m.RowLabel(), m.ColLabel())
	}

	if math.Abs(m.At(0, 0)+1) > 1e-9 {
		t.Errorf("Expected -1 at (0,0), got %f", m.At(0, 0))
	}
	// Length mismatch.
	if !math.IsNaN(m.At(0, 1)) {
		t.Errorf("Expected NaN at (0,1), got %f", m.At(0, 1))
	}
	// Constant row input.
	if !math.IsNaN(m.At(2, 0)) {
		t.Errorf("Expected NaN at (2,0), got %f", m.At(2, 0))
	}
	// Beyond both ranges.
	for i := 0; i < 4; i++ {
		if !math.IsNaN(m.At(3, i)) || !math.IsNaN(m.At(i, 3)) {
			t.Errorf("Expected NaN on row/column 3 at %d", i)
		}
	}

	if m.Computable() != 2 {
		t.Errorf("Expected 2 computable cells, got %d", m.Computable())
	}
}

func TestCorrelateSelf(t *testing.T) {
	ts := timeslice.New("A", [][]float64{{1, 2, 3, 5}, {2, 3, 5, 8}, {0.5, 0.1, 0.9, 0.3}})

	m, err := Correlate(ts, ts, &CorrelationOptions{MaxTime: 3, CapLength: 400})
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if math.Abs(m.At(i, i)-1) > 1e-9 {
			t.Errorf("Expected 1 on the diagonal at %d, got %f", i, m.At(i, i))
		}
		for j := 0; j < 3; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > 1e-12 {
				t.Errorf("Self-correlation not symmetric at (%d,%d)", i, j)
			}
		}
	}
}

func TestCorrelateCapLength(t *testing.T) {
	// Five row samples against three column samples: only comparable once
	// both are capped to three.
	rows := timeslice.New("A", [][]float64{{1, 2, 3, 9, -4}})
	cols := timeslice.New("B", [][]float64{{2, 4, 6}})

	uncapped, err := Correlate(rows, cols, &CorrelationOptions{MaxTime: 1, CapLength: 400})
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	if !math.IsNaN(uncapped.At(0, 0)) {
		t.Errorf("Expected NaN without effective cap, got %f", uncapped.At(0, 0))
	}

	capped, err := Correlate(rows, cols, &CorrelationOptions{MaxTime: 1, CapLength: 3})
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	if math.Abs(capped.At(0, 0)-1) > 1e-9 {
		t.Errorf("Expected 1 with cap 3, got %f", capped.At(0, 0))
	}
	if capped.CapLength() != 3 {
		t.Errorf("Expected cap length 3, got %d", capped.CapLength())
	}
}

func TestCorrelateInvalidOptions(t *testing.T) {
	ts := timeslice.New("A", [][]float64{{1, 2}})

	if _, err := Correlate(ts, ts, &CorrelationOptions{MaxTime: 0, CapLength: 10}); err == nil {
		t.Error("Expected error for zero max time")
	}
	if _, err := Correlate(ts, ts, &CorrelationOptions{MaxTime: 1, CapLength: 0}); err == nil {
		t.Error("Expected error for zero cap length")
	}
	if _, err := Correlate(nil, ts, nil); err == nil {
		t.Error("Expected error for nil rows")
	}
}

func TestDefaultCorrelationOptions(t *testing.T) {
	opts := DefaultCorrelationOptions()
	if opts.MaxTime != 16 {
		t.Errorf("Expected default max time 16, got %d", opts.MaxTime)
	}
	if opts.CapLength != 400 {
		t.Errorf("Expected default cap length 400, got %d", opts.CapLength)
	}
}

func TestMatrixRangeAndFormat(t *testing.T) {
	rows := timeslice.New("A", [][]float64{{1, 2, 3}, {3, 1, 2}})
	cols := timeslice.New("B", [][]float64{{1, 2, 3}, {5, 5, 5}})

	m, err := Correlate(rows, cols, &CorrelationOptions{MaxTime: 2, CapLength: 400})
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	lo, hi := m.Range()
	if math.Abs(hi-1) > 1e-9 {
		t.Errorf("Expected max 1, got %f", hi)
	}
	if math.Abs(lo+0.5) > 1e-9 {
		t.Errorf("Expected min -0.5, got %f", lo)
	}

	text := m.Format()
	if !strings.Contains(text, "NaN") {
		t.Errorf("Expected NaN in formatted matrix:\n%s", text)
	}

	d := m.Dense()
	d.Set(0, 0, 42)
	if m.At(0, 0) == 42 {
		t.Error("Dense should return a copy")
	}
}

func TestMatrixRangeAllNaN(t *testing.T) {
	ts := timeslice.New("A", [][]float64{{1}})
	m, err := Correlate(ts, ts, &CorrelationOptions{MaxTime: 1, CapLength: 5})
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	lo, hi := m.Range()
	if !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("Expected NaN range, got %f %f", lo, hi)
	}
}
