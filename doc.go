// Package latticecorr correlates the time steps of lattice QCD correlators.
//
// A .gpl file holds many samples (one per gauge configuration) of several
// two-point and three-point correlators, each introduced by its label. The
// library parses those samples, regroups them by time step, and computes the
// Pearson correlation between every time step of one correlator and every
// time step of another, ready to be drawn as a heatmap.
//
// # Quick Start
//
//	labels := []string{"2pt_D_nongold_msml5_fine.ll", "localtempvec_pmax_3pt_T22_msml5_fine.ll"}
//	coll, err := gpl.LoadFile("2pt-3pt-qsqmax-scalar.gpl", labels)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, _ := timeslice.Transpose(coll, labels[0], 16)
//	cols, _ := timeslice.Transpose(coll, labels[1], 16)
//	m, _ := stats.Correlate(rows, cols, stats.DefaultCorrelationOptions())
//
//	f, _ := os.Create("heatmap.png")
//	defer f.Close()
//	heatmap.RenderPNG(f, m, heatmap.DefaultOptions())
//
// # Packages
//
//   - gpl: label-delimited parsing of correlator files
//   - timeslice: regrouping samples by time step, per-step summaries
//   - stats: Pearson correlation matrices
//   - heatmap: PNG and terminal rendering
//   - analysis: the load, transpose, correlate pipeline
//   - config: YAML and environment configuration
//   - logging: zap logger construction
//
// The latticecorr command in cmd/latticecorr exposes the pipeline on the
// command line.
package latticecorr
