// Package timeslice regroups per-sample sequences by time index.
//
// A parsed label holds one sequence per gauge configuration. For correlation
// work the data is needed the other way round: for each time step t, every
// configuration's value at t.
//
//	coll, _ := gpl.LoadFile(path, labels)
//	ts, err := timeslice.Transpose(coll, "2pt_D_gold_msml5_fine.ll", 16)
//	if errors.Is(err, timeslice.ErrLabelNotFound) {
//	    // missing result, not fatal
//	}
//	values := ts.At(3) // all samples at t=3, in sample order
//
// Sequences shorter than t+1 do not contribute at t; nothing is padded.
//
// # Summaries
//
// Per-time-index statistics over the samples:
//
//	for _, s := range ts.Summaries() {
//	    fmt.Printf("t=%d n=%d mean=%.4g ± %.2g\n", s.T, s.N, s.Mean, s.StdErr)
//	}
package timeslice
