// Package config provides configuration loading for latticecorr.
//
// Configuration is read from an optional YAML file and then overridden by
// LATTICECORR_* environment variables. Command-line flags are applied on top
// by the caller.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultLabels are the correlator identifiers of the scalar qsqmax dataset.
var DefaultLabels = []string{
	"2pt_D_gold_msml5_fine.ll",
	"2pt_D_nongold_msml5_fine.ll",
	"2pt_msml5_fine_K_zeromom.ll",
	"localtempvec_pmax_3pt_T16_msml5_fine.ll",
	"localtempvec_pmax_3pt_T19_msml5_fine.ll",
	"localtempvec_pmax_3pt_T22_msml5_fine.ll",
	"localtempvec_pmax_3pt_T25_msml5_fine.ll",
}

// Config holds the complete latticecorr configuration.
type Config struct {
	Data     DataConfig     `koanf:"data"`
	Analysis AnalysisConfig `koanf:"analysis"`
	Output   OutputConfig   `koanf:"output"`
	Log      LogConfig      `koanf:"log"`
}

// DataConfig describes the input file.
type DataConfig struct {
	File   string   `koanf:"file"`   // Path to the .gpl file
	Labels []string `koanf:"labels"` // Known labels, in display order
}

// AnalysisConfig selects what to correlate.
type AnalysisConfig struct {
	RowLabel  string `koanf:"row_label"`  // Label on the heatmap's vertical axis
	ColLabel  string `koanf:"col_label"`  // Label on the heatmap's horizontal axis
	MaxTime   int    `koanf:"max_time"`   // Time steps per axis; 0 infers from data
	CapLength int    `koanf:"cap_length"` // Samples used per time step
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Path       string `koanf:"path"`        // PNG destination
	CellSize   int    `koanf:"cell_size"`   // PNG cell size in pixels
	FixedScale bool   `koanf:"fixed_scale"` // Colour scale over [-1, 1]
	Terminal   bool   `koanf:"terminal"`    // Also print a terminal heatmap
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			File:   "2pt-3pt-qsqmax-scalar.gpl",
			Labels: slices.Clone(DefaultLabels),
		},
		Analysis: AnalysisConfig{
			RowLabel:  DefaultLabels[1],
			ColLabel:  DefaultLabels[5],
			MaxTime:   16,
			CapLength: 400,
		},
		Output: OutputConfig{
			Path:     "heatmap.png",
			CellSize: 32,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration.
//
// Returns an error if:
//   - the data file or label set is empty
//   - max time is negative, or cap length is not positive
//   - the log format is not json or console
//
// Row and column labels outside the label set are not rejected here; they
// surface as a missing result when the analysis runs.
func (c *Config) Validate() error {
	if c.Data.File == "" {
		return errors.New("data file is required")
	}
	if len(c.Data.Labels) == 0 {
		return errors.New("at least one label is required")
	}
	if c.Analysis.RowLabel == "" || c.Analysis.ColLabel == "" {
		return errors.New("row and column labels are required")
	}
	if c.Analysis.MaxTime < 0 {
		return fmt.Errorf("invalid max time: %d (must be >= 0)", c.Analysis.MaxTime)
	}
	if c.Analysis.CapLength <= 0 {
		return fmt.Errorf("invalid cap length: %d (must be > 0)", c.Analysis.CapLength)
	}
	if c.Output.CellSize < 0 {
		return fmt.Errorf("invalid cell size: %d", c.Output.CellSize)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log format must be 'json' or 'console', got %q", c.Log.Format)
	}
	return nil
}
