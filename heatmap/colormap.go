package heatmap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/sartorproj/latticecorr/stats"
)

// Options controls heatmap rendering.
type Options struct {
	CellSize   int  // Pixel size of one PNG cell (default: 32)
	FixedScale bool // Scale colours over [-1, 1] instead of the data range
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() *Options {
	return &Options{
		CellSize: 32,
	}
}

// Title returns the heading used for a matrix between two labels.
func Title(rowLabel, colLabel string) string {
	return fmt.Sprintf("Correlation Matrix between time steps of %s and %s", rowLabel, colLabel)
}

// XLabel returns the horizontal axis caption.
func XLabel(colLabel string) string {
	return "Time Steps of " + colLabel
}

// YLabel returns the vertical axis caption.
func YLabel(rowLabel string) string {
	return "Time Steps of " + rowLabel
}

// scale maps coefficients onto [0, 1] for colouring.
type scale struct {
	min, max float64
}

func newScale(m *stats.CorrelationMatrix, fixed bool) scale {
	if fixed {
		return scale{min: -1, max: 1}
	}
	lo, hi := m.Range()
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return scale{min: -1, max: 1}
	}
	return scale{min: lo, max: hi}
}

func (s scale) norm(v float64) float64 {
	if s.max <= s.min {
		return 0.5
	}
	t := (v - s.min) / (s.max - s.min)
	return math.Max(0, math.Min(1, t))
}

// cool is the cyan-to-magenta colour map.
func cool(t float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(255 * t)),
		G: uint8(math.Round(255 * (1 - t))),
		B: 255,
		A: 255,
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
