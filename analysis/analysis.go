// Package analysis wires loading, transposition and correlation into one run.
package analysis

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sartorproj/latticecorr/config"
	"github.com/sartorproj/latticecorr/gpl"
	"github.com/sartorproj/latticecorr/stats"
	"github.com/sartorproj/latticecorr/timeslice"
)

// Result holds everything produced by a run.
type Result struct {
	Collection *gpl.Collection
	Rows       *timeslice.TimeSlices
	Cols       *timeslice.TimeSlices
	Matrix     *stats.CorrelationMatrix
	MaxTime    int
}

// Analyzer runs the load, transpose and correlate pipeline.
type Analyzer struct {
	logger *zap.Logger
}

// New creates an Analyzer. A nil logger disables logging.
func New(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

// Load reads and parses the configured data file. A failure here is fatal
// for the run.
func (a *Analyzer) Load(cfg *config.Config) (*gpl.Collection, error) {
	coll, err := gpl.LoadFile(cfg.Data.File, cfg.Data.Labels)
	if err != nil {
		return nil, err
	}

	st := coll.Stats()
	a.logger.Info("parsed data file",
		zap.String("file", cfg.Data.File),
		zap.Int("tokens", st.Tokens),
		zap.Int("occurrences", st.Labels),
		zap.Int("values", st.Values),
		zap.Int("discarded", st.Discarded),
	)
	for _, label := range coll.Labels() {
		a.logger.Debug("label samples",
			zap.String("label", label),
			zap.Int("samples", coll.Count(label)),
			zap.Int("min_len", coll.MinLen(label)),
			zap.Int("max_len", coll.MaxLen(label)),
		)
	}
	return coll, nil
}

// Run loads the data and correlates the configured row and column labels.
func (a *Analyzer) Run(cfg *config.Config) (*Result, error) {
	coll, err := a.Load(cfg)
	if err != nil {
		return nil, err
	}
	return a.Correlate(coll, cfg.Analysis)
}

// Correlate builds the correlation matrix for an already loaded collection.
// An unknown row or column label is logged and returned as
// timeslice.ErrLabelNotFound.
func (a *Analyzer) Correlate(coll *gpl.Collection, opts config.AnalysisConfig) (*Result, error) {
	for _, label := range []string{opts.RowLabel, opts.ColLabel} {
		if !coll.Has(label) {
			a.logger.Warn("label not found", zap.String("label", label), zap.Strings("known", coll.Labels()))
			return nil, fmt.Errorf("%w: %s", timeslice.ErrLabelNotFound, label)
		}
	}

	maxTime := opts.MaxTime
	if maxTime == 0 {
		maxTime = InferMaxTime(coll, opts.RowLabel, opts.ColLabel)
		a.logger.Info("inferred max time", zap.Int("max_time", maxTime))
	}
	if maxTime <= 0 {
		return nil, fmt.Errorf("no data to correlate for %s and %s", opts.RowLabel, opts.ColLabel)
	}

	rows, err := timeslice.Transpose(coll, opts.RowLabel, maxTime)
	if err != nil {
		return nil, err
	}
	cols, err := timeslice.Transpose(coll, opts.ColLabel, maxTime)
	if err != nil {
		return nil, err
	}

	m, err := stats.Correlate(rows, cols, &stats.CorrelationOptions{
		MaxTime:   maxTime,
		CapLength: opts.CapLength,
	})
	if err != nil {
		return nil, err
	}

	lo, hi := m.Range()
	a.logger.Info("correlation matrix computed",
		zap.String("row_label", m.RowLabel()),
		zap.String("col_label", m.ColLabel()),
		zap.Int("size", m.Size()),
		zap.Int("cap_length", m.CapLength()),
		zap.Int("computable", m.Computable()),
		zap.Float64("min", lo),
		zap.Float64("max", hi),
	)

	return &Result{
		Collection: coll,
		Rows:       rows,
		Cols:       cols,
		Matrix:     m,
		MaxTime:    maxTime,
	}, nil
}

// InferMaxTime returns the smaller of the longest sequence lengths under the
// two labels.
func InferMaxTime(coll *gpl.Collection, rowLabel, colLabel string) int {
	return min(coll.MaxLen(rowLabel), coll.MaxLen(colLabel))
}
