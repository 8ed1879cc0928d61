package heatmap

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/sartorproj/latticecorr/stats"
	"github.com/sartorproj/latticecorr/timeslice"
)

func testMatrix(t *testing.T) *stats.CorrelationMatrix {
	t.Helper()
	rows := timeslice.New("2pt_A", [][]float64{{1, 2, 3}, {3, 1, 2}, {4, 4, 4}})
	cols := timeslice.New("3pt_B", [][]float64{{1, 2, 3}, {2, 1, 3}, {1, 2}})
	m, err := stats.Correlate(rows, cols, &stats.CorrelationOptions{MaxTime: 3, CapLength: 400})
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	return m
}

func TestTitle(t *testing.T) {
	got := Title("A", "B")
	want := "Correlation Matrix between time steps of A and B"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if XLabel("B") != "Time Steps of B" || YLabel("A") != "Time Steps of A" {
		t.Error("Unexpected axis captions")
	}
}

func TestCoolColormap(t *testing.T) {
	lo := cool(0)
	hi := cool(1)
	if lo.R != 0 || lo.G != 255 || lo.B != 255 {
		t.Errorf("Expected cyan at 0, got %+v", lo)
	}
	if hi.R != 255 || hi.G != 0 || hi.B != 255 {
		t.Errorf("Expected magenta at 1, got %+v", hi)
	}
	if hex(hi) != "#ff00ff" {
		t.Errorf("Expected #ff00ff, got %s", hex(hi))
	}
}

func TestScale(t *testing.T) {
	m := testMatrix(t)

	fixed := newScale(m, true)
	if fixed.min != -1 || fixed.max != 1 {
		t.Errorf("Expected fixed [-1, 1], got [%f, %f]", fixed.min, fixed.max)
	}

	data := newScale(m, false)
	lo, hi := m.Range()
	if data.min != lo || data.max != hi {
		t.Errorf("Expected data range [%f, %f], got [%f, %f]", lo, hi, data.min, data.max)
	}

	flat := scale{min: 0.3, max: 0.3}
	if flat.norm(0.3) != 0.5 {
		t.Errorf("Expected midpoint for degenerate scale, got %f", flat.norm(0.3))
	}
	if fixed.norm(5) != 1 || fixed.norm(-5) != 0 {
		t.Error("Expected clamping to [0, 1]")
	}
}

func TestRenderPNG(t *testing.T) {
	m := testMatrix(t)
	opts := DefaultOptions()

	var buf bytes.Buffer
	if err := RenderPNG(&buf, m, opts); err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}

	b := img.Bounds()
	grid := m.Size() * opts.CellSize
	if b.Dy() < marginTop+grid+marginBottom {
		t.Errorf("Image too short: %d", b.Dy())
	}
	if b.Dx() < marginLeft+grid {
		t.Errorf("Image too narrow: %d", b.Dx())
	}

	// Cell (0,0) is a perfect correlation and takes the top colour.
	r, g, bl, _ := img.At(marginLeft+opts.CellSize/2, marginTop+opts.CellSize/2).RGBA()
	if r>>8 != 255 || g>>8 != 0 || bl>>8 != 255 {
		t.Errorf("Expected magenta at cell (0,0), got %d %d %d", r>>8, g>>8, bl>>8)
	}

	// Row 3 is constant, so its cells stay blank.
	r, g, bl, _ = img.At(marginLeft+opts.CellSize/2, marginTop+2*opts.CellSize+opts.CellSize/2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || bl>>8 != 255 {
		t.Errorf("Expected white NaN cell, got %d %d %d", r>>8, g>>8, bl>>8)
	}
}

func TestRenderNilMatrix(t *testing.T) {
	if _, err := Render(nil, nil); err == nil {
		t.Error("Expected error for nil matrix")
	}
}

func TestRenderTerminal(t *testing.T) {
	m := testMatrix(t)
	out := RenderTerminal(m, nil)

	if !strings.Contains(out, Title("2pt_A", "3pt_B")) {
		t.Errorf("Expected title in output:\n%s", out)
	}
	if !strings.Contains(out, "··") {
		t.Errorf("Expected NaN marker in output:\n%s", out)
	}
	// Title, two axis lines, blank, header, three rows, blank, legend.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Errorf("Expected 10 lines, got %d:\n%s", len(lines), out)
	}
}

func TestSparkline(t *testing.T) {
	out := Sparkline([]float64{1, 0.5, 0.25, math.NaN(), 0.125}, 10, 2)
	if out == "" {
		t.Error("Expected sparkline output")
	}

	empty := Sparkline([]float64{math.NaN()}, 10, 2)
	if !strings.Contains(empty, "no data") {
		t.Errorf("Expected no data marker, got %q", empty)
	}
}
